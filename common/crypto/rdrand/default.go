package rdrand

import (
	"io"
	"sync"
)

var (
	defaultGenerator *Generator
	defaultOnce      sync.Once

	// Reader is a global, shared io.Reader over the default Generator.
	Reader io.Reader = defaultReader{}
)

type defaultReader struct{}

func (defaultReader) Read(p []byte) (int, error) {
	return Default().Read(p)
}

// Default returns the process-wide Generator backed by HardwareSource.
func Default() *Generator {
	defaultOnce.Do(func() {
		// New can only fail on invalid options.
		defaultGenerator, _ = New(HardwareSource{})
	})
	return defaultGenerator
}

// CheckSupport returns ErrNotSupported iff the CPU lacks RDRAND.
func CheckSupport() error {
	return Default().CheckSupport()
}

// SetRetryLimit sets the retry limit of the default Generator.
func SetRetryLimit(k int) error {
	return Default().SetRetryLimit(k)
}

// Uint8 returns 8 random bits from the default Generator.
func Uint8() (uint8, error) {
	return Default().Uint8()
}

// Uint16 returns 16 random bits from the default Generator.
func Uint16() (uint16, error) {
	return Default().Uint16()
}

// Uint32 returns 32 random bits from the default Generator.
func Uint32() (uint32, error) {
	return Default().Uint32()
}

// Uint64 returns 64 random bits from the default Generator.
func Uint64() (uint64, error) {
	return Default().Uint64()
}

// Range returns a uniform value in the closed interval [min, max] from the
// default Generator.
func Range(min, max int32) (int32, error) {
	return Default().Range(min, max)
}

// Fill8 fills dst from the default Generator.
func Fill8(dst []uint8) (int, error) {
	return Default().Fill8(dst)
}

// Fill16 fills dst from the default Generator.
func Fill16(dst []uint16) (int, error) {
	return Default().Fill16(dst)
}

// Fill32 fills dst from the default Generator.
func Fill32(dst []uint32) (int, error) {
	return Default().Fill32(dst)
}

// Fill64 fills dst from the default Generator.
func Fill64(dst []uint64) (int, error) {
	return Default().Fill64(dst)
}

// FillRange fills dst with values in [min, max] from the default Generator.
func FillRange(dst []int32, min, max int32) (int, error) {
	return Default().FillRange(dst, min, max)
}

// Bytes fills dst with random bytes from the default Generator.
func Bytes(dst []byte) (int, error) {
	return Default().Bytes(dst)
}

// Seed returns a reseed-guaranteed value from the default Generator.
func Seed() (uint64, error) {
	return Default().Seed()
}

// SeedBlocks returns n reseed-guaranteed values from the default Generator.
func SeedBlocks(n int) ([]uint64, error) {
	return Default().SeedBlocks(n)
}
