// Command csgview renders a demo part in an interactive raylib window.
//
// The part is built once, centered, and drawn with per-triangle flat
// shading under an orbiting camera. Pick a part from the demo catalog:
//
//	csgview flange
//	csgview vase
package main

import (
	"fmt"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	csg "github.com/SegmentController/csg-builder-sub000"
	"github.com/SegmentController/csg-builder-sub000/cmd/internal/demo"
)

const (
	windowWidth  = 1280
	windowHeight = 800
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "csgview:", err)
		os.Exit(1)
	}
}

func run() error {
	reg := csg.NewRegistry()
	if err := demo.Register(reg); err != nil {
		return err
	}

	name := "flange"
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	solid, err := reg.Produce(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "available parts:")
		for _, n := range reg.Names() {
			fmt.Fprintln(os.Stderr, " ", n)
		}
		return err
	}
	solid.Center()

	tris := shadedTriangles(solid)
	radius := boundingRadius(solid)

	rl.InitWindow(windowWidth, windowHeight, "csgview - "+name)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{
		Position:   rl.NewVector3(float32(radius*2.2), float32(radius*1.4), float32(radius*2.2)),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	for !rl.WindowShouldClose() {
		rl.UpdateCamera(&camera, rl.CameraOrbital)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(24, 26, 30, 255))

		rl.BeginMode3D(camera)
		for _, t := range tris {
			rl.DrawTriangle3D(t.a, t.b, t.c, t.color)
		}
		rl.DrawGrid(20, float32(radius)/5)
		rl.EndMode3D()

		rl.DrawText(name, 16, 16, 24, rl.RayWhite)
		rl.DrawText(fmt.Sprintf("%d triangles", len(tris)), 16, 48, 18, rl.Gray)
		rl.EndDrawing()
	}
	return nil
}

// shadedTriangle is one display triangle with its flat-shaded color.
type shadedTriangle struct {
	a, b, c rl.Vector3
	color   rl.Color
}

// shadedTriangles converts the solid's vertex buffer into display
// triangles, shading each by its face normal against a fixed light.
func shadedTriangles(s *csg.Solid) []shadedTriangle {
	buffer := s.VertexBuffer()
	base := s.Color()

	// Normalized key light, roughly over the viewer's shoulder.
	lx, ly, lz := normalize3(0.4, 0.8, 0.5)

	tris := make([]shadedTriangle, 0, len(buffer)/9)
	for i := 0; i+9 <= len(buffer); i += 9 {
		ax, ay, az := buffer[i], buffer[i+1], buffer[i+2]
		bx, by, bz := buffer[i+3], buffer[i+4], buffer[i+5]
		cx, cy, cz := buffer[i+6], buffer[i+7], buffer[i+8]

		ux, uy, uz := bx-ax, by-ay, bz-az
		vx, vy, vz := cx-ax, cy-ay, cz-az

		tris = append(tris, shadedTriangle{
			a:     rl.NewVector3(float32(ax), float32(ay), float32(az)),
			b:     rl.NewVector3(float32(bx), float32(by), float32(bz)),
			c:     rl.NewVector3(float32(cx), float32(cy), float32(cz)),
			color: shade(base, ux, uy, uz, vx, vy, vz, lx, ly, lz),
		})
	}
	return tris
}

// shade scales the base color by the lambertian term of the face normal
// against the light direction, with a floor so back faces stay visible.
func shade(base csg.RGBA, ux, uy, uz, vx, vy, vz, lx, ly, lz float64) rl.Color {
	nx := uy*vz - uz*vy
	ny := uz*vx - ux*vz
	nz := ux*vy - uy*vx
	nx, ny, nz = normalize3(nx, ny, nz)

	lambert := nx*lx + ny*ly + nz*lz
	intensity := 0.25 + 0.75*math.Max(0, lambert)

	return rl.NewColor(
		byte(math.Min(base.R*intensity, 1)*255),
		byte(math.Min(base.G*intensity, 1)*255),
		byte(math.Min(base.B*intensity, 1)*255),
		byte(math.Min(base.A, 1)*255),
	)
}

// boundingRadius returns the distance from the origin to the farthest
// bounding-box corner, used to frame the camera.
func boundingRadius(s *csg.Solid) float64 {
	b := s.Bounds()
	r := 0.0
	for _, v := range [2]float64{math.Abs(b.Min.X), math.Abs(b.Max.X)} {
		r = math.Max(r, v)
	}
	for _, v := range [2]float64{math.Abs(b.Min.Y), math.Abs(b.Max.Y)} {
		r = math.Max(r, v)
	}
	for _, v := range [2]float64{math.Abs(b.Min.Z), math.Abs(b.Max.Z)} {
		r = math.Max(r, v)
	}
	if r == 0 {
		return 1
	}
	return r * math.Sqrt2
}

func normalize3(x, y, z float64) (float64, float64, float64) {
	n := math.Sqrt(x*x + y*y + z*z)
	if n == 0 {
		return 0, 1, 0
	}
	return x / n, y / n, z / n
}
