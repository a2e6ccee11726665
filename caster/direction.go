package caster

import (
	"reflect"
	"strings"
)

//go:generate go tool stringer -type=DirectionEnum -output=direction_string.go

// DirectionEnum is the conversion direction deduced from the provenance
// of a (source, destination) type pair.
type DirectionEnum int

const (
	DirectionNone DirectionEnum = iota
	DirectionLocalToUTC
	DirectionUTCToLocal

	// DirectionTotal is a constant that represents the total number of directions defined
	DirectionTotal = int(iota)
)

// ProvenanceEnum classifies a record type by where its timestamp values
// live: wall clock in the configured zone, or absolute UTC instants.
type ProvenanceEnum int

const (
	ProvenanceUnknown ProvenanceEnum = iota
	ProvenanceLocal
	ProvenanceUTC
)

// String returns a human-readable provenance name.
func (p ProvenanceEnum) String() string {
	switch p {
	case ProvenanceLocal:
		return "local"
	case ProvenanceUTC:
		return "utc"
	default:
		return "unknown"
	}
}

// Markers decide type provenance from import-path segments. A type whose
// package path contains the Local segment holds wall-clock values; the
// UTC segment marks absolute instants. A path matching both segments is
// ambiguous and classifies as unknown.
type Markers struct {
	Local string
	UTC   string
}

// DefaultMarkers returns the conventional data/domain split.
func DefaultMarkers() Markers {
	return Markers{Local: "data", UTC: "domain"}
}

// Provenance classifies t by its package path.
func (m Markers) Provenance(t reflect.Type) ProvenanceEnum {
	local := hasPathSegment(t.PkgPath(), m.Local)
	utc := hasPathSegment(t.PkgPath(), m.UTC)

	switch {
	case local == utc:
		return ProvenanceUnknown
	case local:
		return ProvenanceLocal
	default:
		return ProvenanceUTC
	}
}

// Direction picks the conversion direction for a src->dst mapping.
// Same-provenance and unclassifiable pairs yield DirectionNone, which
// the engine treats as "touch nothing".
func (m Markers) Direction(src, dst reflect.Type) DirectionEnum {
	from, to := m.Provenance(src), m.Provenance(dst)

	switch {
	case from == ProvenanceLocal && to == ProvenanceUTC:
		return DirectionLocalToUTC
	case from == ProvenanceUTC && to == ProvenanceLocal:
		return DirectionUTCToLocal
	default:
		return DirectionNone
	}
}

func hasPathSegment(pkgPath, segment string) bool {
	if segment == "" {
		return false
	}

	for _, part := range strings.Split(pkgPath, "/") {
		if part == segment {
			return true
		}
	}

	return false
}
