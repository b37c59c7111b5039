package rdrand

import "fmt"

// Width is the bit width of a single hardware random number request.
type Width uint8

const (
	// Width8 requests 8 random bits.
	Width8 Width = 8
	// Width16 requests 16 random bits.
	Width16 Width = 16
	// Width32 requests 32 random bits.
	Width32 Width = 32
	// Width64 requests 64 random bits.
	Width64 Width = 64
)

// String returns the string representation of a Width.
func (w Width) String() string {
	switch w {
	case Width8, Width16, Width32, Width64:
		return fmt.Sprintf("%d", uint8(w))
	default:
		return fmt.Sprintf("[invalid width: %d]", uint8(w))
	}
}

// Source is an unreliable source of hardware random bits.
//
// Implementations must be safe for concurrent use.
type Source interface {
	// Supported returns true iff the source is usable on this machine.
	Supported() bool

	// Step performs a single request for w random bits, returning the
	// bits zero-extended to 64 bits. A false return means that this
	// particular request failed and may be retried.
	Step(w Width) (uint64, bool)
}
