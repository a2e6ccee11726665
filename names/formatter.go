// Package names provides the display-name formatting capability consumed
// by mapping resolvers. The mapping core only ever sees the interface.
package names

import "strings"

// Formatter builds a display name from a person's name parts.
type Formatter interface {
	FormatFullName(first, last string) string
}

// Simple joins the parts as "First Last", dropping empty parts.
type Simple struct{}

func (Simple) FormatFullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

// LastFirst joins the parts as "Last, First", dropping empty parts.
type LastFirst struct{}

func (LastFirst) FormatFullName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return last + ", " + first
	}
}
