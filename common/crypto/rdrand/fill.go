package rdrand

import (
	"encoding/binary"
	"fmt"

	"github.com/oasisprotocol/rdrand/common/errors"
)

// PartialFillError is the error returned when a buffer could only be
// partially filled.
//
// The first Filled elements of the destination hold valid random values.
// The contents of the remaining elements are undefined and must not be
// relied upon.
type PartialFillError struct {
	// Filled is the number of leading elements that were populated.
	Filled int
	// Err is the reason the fill stopped.
	Err error
}

func (e *PartialFillError) Error() string {
	return fmt.Sprintf("rdrand: buffer partially filled (%d elements): %v", e.Filled, e.Err)
}

func (e *PartialFillError) Unwrap() error {
	return e.Err
}

func fill[T uint8 | uint16 | uint32 | uint64 | int32](dst []T, next func() (T, error)) (int, error) {
	for i := range dst {
		v, err := next()
		if err != nil {
			return i, &PartialFillError{Filled: i, Err: err}
		}
		dst[i] = v
	}
	return len(dst), nil
}

// Fill8 fills dst with 8-bit random values, returning the number of
// elements filled. On failure the elements past that count are undefined.
func (g *Generator) Fill8(dst []uint8) (int, error) {
	return fill(dst, g.Uint8)
}

// Fill16 fills dst with 16-bit random values, returning the number of
// elements filled. On failure the elements past that count are undefined.
func (g *Generator) Fill16(dst []uint16) (int, error) {
	return fill(dst, g.Uint16)
}

// Fill32 fills dst with 32-bit random values, returning the number of
// elements filled. On failure the elements past that count are undefined.
func (g *Generator) Fill32(dst []uint32) (int, error) {
	return fill(dst, g.Uint32)
}

// Fill64 fills dst with 64-bit random values, returning the number of
// elements filled. On failure the elements past that count are undefined.
func (g *Generator) Fill64(dst []uint64) (int, error) {
	return fill(dst, g.Uint64)
}

// FillRange fills dst with values drawn by Range(min, max), returning the
// number of elements filled. On failure the elements past that count are
// undefined.
func (g *Generator) FillRange(dst []int32, min, max int32) (int, error) {
	return fill(dst, func() (int32, error) {
		return g.Range(min, max)
	})
}

// Bytes fills dst with random bytes using as few hardware requests as
// possible: one 64-bit request per whole 8 byte word, then one 8-bit
// request per remaining byte. It returns the number of leading bytes
// filled; on failure the remainder of dst is undefined.
func (g *Generator) Bytes(dst []byte) (int, error) {
	words := len(dst) / 8
	for i := 0; i < words; i++ {
		v, err := g.Uint64()
		if err != nil {
			return i * 8, &PartialFillError{Filled: i * 8, Err: err}
		}
		binary.LittleEndian.PutUint64(dst[i*8:], v)
	}

	off := words * 8
	n, err := g.Fill8(dst[off:])
	if err != nil {
		return off + n, &PartialFillError{Filled: off + n, Err: errors.Unwrap(err)}
	}
	return len(dst), nil
}

// Read implements io.Reader, filling p as Bytes does.
func (g *Generator) Read(p []byte) (int, error) {
	return g.Bytes(p)
}
