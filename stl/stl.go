// Package stl encodes flattened vertex buffers as binary STL.
//
// The layout is the classic one: an 80-byte header, a little-endian
// uint32 triangle count, then 50 bytes per triangle — twelve float32s (a
// zeroed normal followed by three vertices) and two reserved bytes.
// Normals are left zero; STL consumers recompute them from the winding.
//
// Buffers use the modeling convention of Y up, while STL viewers expect
// Z up, so vertices are remapped (x, y, z) → (x, −z, y) on the way out.
package stl

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	headerSize   = 80
	triangleSize = 50
)

// defaultHeader fills the start of the 80-byte header; the rest is zero.
const defaultHeader = "binary STL"

// Write encodes the vertex buffer — consecutive x, y, z triples, nine
// values per triangle — as binary STL. Empty buffers and buffers whose
// length is not divisible by 9 are rejected.
func Write(w io.Writer, buffer []float64) error {
	if len(buffer) == 0 {
		return fmt.Errorf("stl: empty vertex buffer")
	}
	if len(buffer)%9 != 0 {
		return fmt.Errorf("stl: vertex buffer length %d not divisible by 9", len(buffer))
	}

	var header [headerSize]byte
	copy(header[:], defaultHeader)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("stl: writing header: %w", err)
	}

	count := len(buffer) / 9
	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(count))
	if _, err := w.Write(countBuf[:]); err != nil {
		return fmt.Errorf("stl: writing triangle count: %w", err)
	}

	var tri [triangleSize]byte
	for i := 0; i < count; i++ {
		// Bytes 0..11 stay zero: the normal is left for the consumer.
		off := 12
		for k := 0; k < 3; k++ {
			o := i*9 + k*3
			x, y, z := buffer[o], buffer[o+1], buffer[o+2]
			// Axis remap: modeling Y-up to STL Z-up.
			putFloat32(tri[off:], float32(x))
			putFloat32(tri[off+4:], float32(-z))
			putFloat32(tri[off+8:], float32(y))
			off += 12
		}
		// Bytes 48..49 stay zero: attribute byte count.
		if _, err := w.Write(tri[:]); err != nil {
			return fmt.Errorf("stl: writing triangle %d: %w", i, err)
		}
	}
	return nil
}

// Size returns the encoded size in bytes of a buffer with n triangles.
func Size(n int) int {
	return headerSize + 4 + n*triangleSize
}

func putFloat32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}
