//go:build !amd64

package rdrand

func hasRDRAND() bool {
	return false
}

func rdrand16() (uint16, bool) {
	return 0, false
}

func rdrand32() (uint32, bool) {
	return 0, false
}

func rdrand64() (uint64, bool) {
	return 0, false
}
