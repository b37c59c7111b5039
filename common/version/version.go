// Package version implements software versioning.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
)

// VersionUndefined represents an undefined version.
const VersionUndefined = "0.0-unset"

// Version is a software version.
type Version struct {
	Major uint16
	Minor uint16
	Patch uint16
}

// ToU64 returns the version as platform-dependent uint64.
func (v Version) ToU64() uint64 {
	return (uint64(v.Major) << 32) | (uint64(v.Minor) << 16) | (uint64(v.Patch))
}

// FromU64 returns the version from platform-dependent uint64.
func FromU64(v uint64) Version {
	return Version{
		Major: uint16((v >> 32) & 0xffff),
		Minor: uint16((v >> 16) & 0xffff),
		Patch: uint16(v & 0xffff),
	}
}

// String returns the version as a string.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

var (
	// SoftwareVersion represents the software version, set by the linker
	// or derived from the Go modules version of the main module.
	SoftwareVersion = VersionUndefined

	// Toolchain is the version of the Go compiler/standard library.
	Toolchain = strings.TrimPrefix(runtime.Version(), "go")
)

// Versions contains all known versions.
var Versions = struct {
	Software  string
	Toolchain string
}{}

// ConvertGoModulesVersion converts a Go modules compatible version
// (v0.YYMM.P) to a calendar version (YY.M[.P]).
func ConvertGoModulesVersion(goModVersion string) string {
	if !strings.HasPrefix(goModVersion, "v0.") {
		return VersionUndefined
	}
	split := strings.Split(strings.TrimPrefix(goModVersion, "v0."), ".")
	if len(split) != 2 || len(split[0]) != 4 {
		return VersionUndefined
	}

	year, err := strconv.ParseUint(split[0][:2], 10, 16)
	if err != nil {
		return VersionUndefined
	}
	minor, err := strconv.ParseUint(split[0][2:], 10, 16)
	if err != nil {
		return VersionUndefined
	}
	patch, err := strconv.ParseUint(split[1], 10, 16)
	if err != nil {
		return VersionUndefined
	}

	if patch == 0 {
		return fmt.Sprintf("%d.%d", year, minor)
	}
	return fmt.Sprintf("%d.%d.%d", year, minor, patch)
}

func init() {
	if SoftwareVersion == VersionUndefined {
		if bi, ok := debug.ReadBuildInfo(); ok {
			SoftwareVersion = ConvertGoModulesVersion(bi.Main.Version)
		}
	}
	Versions.Software = SoftwareVersion
	Versions.Toolchain = Toolchain
}
