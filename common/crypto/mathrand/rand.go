// Package mathrand implements a math/rand.Source64 backed by an entropy
// io.Reader such as an rdrand.Generator.
package mathrand

import (
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
)

var _ rand.Source64 = (*RngAdapter)(nil)

// RngAdapter is a math/rand.Source64 that draws from an io.Reader.
//
// math/rand provides no way to report errors, so a failed read panics.
type RngAdapter struct {
	sync.Mutex

	r   io.Reader
	buf [8]byte
}

// Int63 returns a non-negative random 63-bit integer as an int64.
func (a *RngAdapter) Int63() int64 {
	return int64(a.Uint64() & (1<<63 - 1))
}

// Uint64 returns a random 64-bit value as a uint64.
func (a *RngAdapter) Uint64() uint64 {
	a.Lock()
	defer a.Unlock()

	if _, err := io.ReadFull(a.r, a.buf[:]); err != nil {
		panic("mathrand: failed to read entropy: " + err.Error())
	}
	return binary.LittleEndian.Uint64(a.buf[:])
}

// Seed panics, the adapter can not be seeded.
func (a *RngAdapter) Seed(int64) {
	panic("mathrand: Seed is not supported")
}

// New creates a new adapter drawing entropy from r.
func New(r io.Reader) *RngAdapter {
	return &RngAdapter{r: r}
}
