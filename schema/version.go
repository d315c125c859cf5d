package schema

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

const snapshotSuffix = "-SNAPSHOT"

// Version is the format version of a schema document.
type Version struct {
	Major    int
	Minor    int
	Patch    int
	Snapshot bool
}

// ParseVersion parses "major[.minor[.patch]][-SNAPSHOT]". Missing or
// non-numeric parts are zero.
func ParseVersion(s string) Version {
	var v Version
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutSuffix(strings.ToUpper(s), snapshotSuffix); ok {
		v.Snapshot = true
		s = s[:len(rest)]
	}
	parts := strings.SplitN(s, ".", 3)
	nums := []*int{&v.Major, &v.Minor, &v.Patch}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			continue
		}
		*nums[i] = n
	}
	return v
}

// IsZero reports whether v is the zero version.
func (v Version) IsZero() bool {
	return v == Version{}
}

// String formats the version as "01.02", "01.02.03" or "01.02-SNAPSHOT".
func (v Version) String() string {
	s := fmt.Sprintf("%02d.%02d", v.Major, v.Minor)
	if v.Patch > 0 {
		s += fmt.Sprintf(".%02d", v.Patch)
	}
	if v.Snapshot {
		s += snapshotSuffix
	}
	return s
}

// Compare returns -1, 0 or +1. A snapshot sorts after the release with the
// same numbers.
func (v Version) Compare(o Version) int {
	if c := cmp.Compare(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, o.Minor); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Patch, o.Patch); c != 0 {
		return c
	}
	switch {
	case v.Snapshot == o.Snapshot:
		return 0
	case v.Snapshot:
		return 1
	default:
		return -1
	}
}
