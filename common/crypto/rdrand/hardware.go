package rdrand

// HardwareSource is a Source backed by the RDRAND instruction.
type HardwareSource struct{}

// Supported returns true iff the CPU implements RDRAND.
func (HardwareSource) Supported() bool {
	return hasRDRAND()
}

// Step executes RDRAND once at the requested width.
//
// There is no 8-bit form of the instruction, so 8-bit requests use the
// 16-bit form and keep the low byte.
func (HardwareSource) Step(w Width) (uint64, bool) {
	switch w {
	case Width8:
		v, ok := rdrand16()
		return uint64(uint8(v)), ok
	case Width16:
		v, ok := rdrand16()
		return uint64(v), ok
	case Width32:
		v, ok := rdrand32()
		return uint64(v), ok
	case Width64:
		return rdrand64()
	default:
		return 0, false
	}
}
