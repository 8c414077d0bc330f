// Package version provides VSS schema version parsing and comparison.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the VSS version of the embedded vehicle schema.
const Current = "3.0"

// SchemaVersion represents a parsed "major.minor" VSS version.
type SchemaVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string. An optional "v" prefix and
// a trailing ".patch" component are accepted and ignored.
func Parse(s string) (SchemaVersion, error) {
	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return SchemaVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return SchemaVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return SchemaVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	if len(parts) == 3 {
		if _, err := strconv.ParseUint(parts[2], 10, 16); err != nil {
			return SchemaVersion{}, fmt.Errorf("invalid version %q: bad patch component", s)
		}
	}

	return SchemaVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) SchemaVersion {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version as "major.minor".
func (v SchemaVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compare returns -1, 0 or +1 depending on whether v is older than,
// equal to, or newer than other.
func (v SchemaVersion) Compare(other SchemaVersion) int {
	switch {
	case v.Major != other.Major:
		return cmpUint(v.Major, other.Major)
	default:
		return cmpUint(v.Minor, other.Minor)
	}
}

func cmpUint(a, b uint16) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Compatible returns true if the other version has the same major version.
func (v SchemaVersion) Compatible(other SchemaVersion) bool {
	return v.Major == other.Major
}

// CanRead reports whether data written against other can be restored into a
// tree of version v: same major version and other not newer than v.
func (v SchemaVersion) CanRead(other SchemaVersion) bool {
	return v.Compatible(other) && other.Compare(v) <= 0
}

// CheckReadable returns an error unless data written against schema version
// written can be restored into a tree of schema version target. An empty
// target stands for Current.
func CheckReadable(target, written string) error {
	if target == "" {
		target = Current
	}
	tv, err := Parse(target)
	if err != nil {
		return err
	}
	wv, err := Parse(written)
	if err != nil {
		return err
	}
	if !tv.CanRead(wv) {
		return fmt.Errorf("schema version %s cannot read data written by %s", tv, wv)
	}
	return nil
}
