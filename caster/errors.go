package caster

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotAStruct        = errors.New("mapping endpoint is not a struct type")
	ErrNotAPointer       = errors.New("conversion destination is not a non-nil struct pointer")
	ErrDuplicatePair     = errors.New("type pair is already registered")
	ErrAlreadyBuilt      = errors.New("registry is already built")
	ErrNotBuilt          = errors.New("registry is not built")
	ErrUnknownPair       = errors.New("type pair is not registered")
	ErrResolverNotAFunc  = errors.New("resolver is not a function")
	ErrResolverSignature = errors.New("resolver must be func(Src) T or func(Src) (T, error)")
)

// Issue is one configuration defect found while compiling the registry.
type Issue struct {
	Code     string
	TypePair string
	Field    string
	Message  string
}

// String renders the issue as "code pair field: message".
func (i Issue) String() string {
	parts := []string{i.Code}
	if i.TypePair != "" {
		parts = append(parts, i.TypePair)
	}
	if i.Field != "" {
		parts = append(parts, i.Field)
	}

	return strings.Join(parts, " ") + ": " + i.Message
}

// ConfigError aggregates every configuration defect so a misconfigured
// registry fails once, at build time, with the complete list.
type ConfigError struct {
	Issues []Issue
}

func (e *ConfigError) Error() string {
	lines := make([]string, 0, len(e.Issues)+1)
	lines = append(lines, fmt.Sprintf("registry configuration failed with %d issue(s)", len(e.Issues)))
	for _, issue := range e.Issues {
		lines = append(lines, "  "+issue.String())
	}

	return strings.Join(lines, "\n")
}
