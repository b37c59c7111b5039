package rdrand

import "golang.org/x/sys/cpu"

func hasRDRAND() bool {
	return cpu.X86.HasRDRAND
}

// Implemented in hardware_amd64.s.
func rdrand16() (v uint16, ok bool)

func rdrand32() (v uint32, ok bool)

func rdrand64() (v uint64, ok bool)
