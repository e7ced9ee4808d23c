package csg

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Producer builds a part from scratch. Producers take no arguments so
// external tooling (demo listings, batch export) can discover and build
// parts by name alone.
type Producer func() (*Solid, error)

// Registry maps part names to producers. It backs discovery and export
// tooling: register every part a session can build, then enumerate or
// produce them by name.
type Registry struct {
	producers map[string]Producer
}

// NewRegistry creates an empty part registry.
func NewRegistry() *Registry {
	return &Registry{producers: make(map[string]Producer)}
}

// Register adds a producer under the given name.
// Registering a name twice is an error.
func (r *Registry) Register(name string, p Producer) error {
	if name == "" {
		return fmt.Errorf("csg: part name must not be empty")
	}
	if p == nil {
		return fmt.Errorf("csg: producer for %q must not be nil", name)
	}
	if _, exists := r.producers[name]; exists {
		return fmt.Errorf("csg: part %q already registered", name)
	}
	r.producers[name] = p
	Logger().Info("registered part", "name", name)
	return nil
}

// Names returns the registered part names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.producers))
	for name := range r.producers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Produce builds a fresh solid for the named part. Each call returns an
// independent solid. Contract-violation panics inside the producer are
// captured and returned as errors so declarative part definitions fail
// cleanly.
func (r *Registry) Produce(name string) (*Solid, error) {
	p, ok := r.producers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPart, name)
	}
	return capture(p)
}

// capture runs a producer, converting a contract-violation panic into an
// error.
func capture(p Producer) (s *Solid, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("csg: part construction failed: %v", r)
		}
	}()
	return p()
}

// PartDef is the YAML definition of a declarative primitive part:
//
//	flange:
//	  type: cylinder
//	  radius: 20
//	  height: 4
//	  color: steelblue
//
// Fields irrelevant to the chosen type are ignored.
type PartDef struct {
	Type      string     `yaml:"type"`
	Size      [3]float64 `yaml:"size,omitempty"` // cube: width, height, depth
	Radius    float64    `yaml:"radius,omitempty"`
	TopRadius *float64   `yaml:"topRadius,omitempty"`
	Height    float64    `yaml:"height,omitempty"`
	Sides     int        `yaml:"sides,omitempty"`
	Angle     float64    `yaml:"angle,omitempty"` // sweep; 0 means full
	Color     string     `yaml:"color,omitempty"`
}

// LoadDefs parses a YAML document of name → PartDef entries and registers
// a producer for each. Every definition must name a type; dimension
// validation happens at produce time, not load time, so one bad dimension
// does not block the rest of the file.
func (r *Registry) LoadDefs(data []byte) error {
	var defs map[string]PartDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return fmt.Errorf("csg: parsing part definitions: %w", err)
	}

	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := defs[name]
		if def.Type == "" {
			return fmt.Errorf("csg: part definition %q has no type", name)
		}
		if err := r.Register(name, def.producer()); err != nil {
			return err
		}
	}
	return nil
}

// producer builds the construction closure for a definition.
func (d PartDef) producer() Producer {
	return func() (*Solid, error) {
		var opts []Option
		if d.Angle > 0 {
			opts = append(opts, WithAngle(d.Angle))
		}
		if d.TopRadius != nil {
			opts = append(opts, WithTopRadius(*d.TopRadius))
		}
		if d.Color != "" {
			c, err := Named(d.Color)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithColor(c))
		}

		switch d.Type {
		case "cube":
			return Cube(d.Size[0], d.Size[1], d.Size[2], opts...), nil
		case "cylinder":
			return Cylinder(d.Radius, d.Height, opts...), nil
		case "cone":
			return Cone(d.Radius, d.Height, opts...), nil
		case "sphere":
			return Sphere(d.Radius, opts...), nil
		case "prism":
			return Prism(d.Sides, d.Radius, d.Height, opts...), nil
		default:
			return nil, fmt.Errorf("csg: unknown part type %q", d.Type)
		}
	}
}
