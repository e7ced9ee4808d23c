// Command csgdemo builds demo parts and exports them as binary STL.
//
// Parts come from the built-in demo catalog plus any YAML part
// definitions named by the "parts" config key. Settings are resolved
// through viper: flags override config-file values, which override
// defaults.
//
//	csgdemo --list
//	csgdemo --part flange --output flange.stl
//	csgdemo --config demo.yaml --part my-part
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	csg "github.com/SegmentController/csg-builder-sub000"
	"github.com/SegmentController/csg-builder-sub000/cmd/internal/demo"
	"github.com/SegmentController/csg-builder-sub000/stl"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "csgdemo:", err)
		os.Exit(1)
	}
}

func run() error {
	v := viper.New()
	v.SetDefault("part", "flange")
	v.SetDefault("output", "")
	v.SetDefault("verbose", false)

	flags := parseFlags()
	if flags.config != "" {
		v.SetConfigFile(flags.config)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	flags.overlay(v)

	if v.GetBool("verbose") {
		csg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	reg := csg.NewRegistry()
	if err := demo.Register(reg); err != nil {
		return err
	}
	if partsFile := v.GetString("parts"); partsFile != "" {
		data, err := os.ReadFile(partsFile)
		if err != nil {
			return fmt.Errorf("reading parts file: %w", err)
		}
		if err := reg.LoadDefs(data); err != nil {
			return err
		}
	}

	if flags.list {
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
		return nil
	}

	part := v.GetString("part")
	solid, err := reg.Produce(part)
	if err != nil {
		return err
	}

	output := v.GetString("output")
	if output == "" {
		output = part + ".stl"
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()

	buffer := solid.VertexBuffer()
	if err := stl.Write(f, buffer); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d triangles, %d bytes)\n", output, len(buffer)/9, stl.Size(len(buffer)/9))
	return nil
}

// cliFlags holds command-line settings that overlay the viper config.
type cliFlags struct {
	config  string
	part    string
	output  string
	list    bool
	verbose bool
}

func parseFlags() *cliFlags {
	f := &cliFlags{}
	flag.StringVar(&f.config, "config", "", "config file with demo settings")
	flag.StringVar(&f.part, "part", "", "part name to build")
	flag.StringVar(&f.output, "output", "", "output STL file (default <part>.stl)")
	flag.BoolVar(&f.list, "list", false, "list available parts and exit")
	flag.BoolVar(&f.verbose, "verbose", false, "enable debug logging")
	flag.Parse()
	return f
}

// overlay pushes explicitly set flags on top of the config values.
func (f *cliFlags) overlay(v *viper.Viper) {
	if f.part != "" {
		v.Set("part", f.part)
	}
	if f.output != "" {
		v.Set("output", f.output)
	}
	if f.verbose {
		v.Set("verbose", true)
	}
}
