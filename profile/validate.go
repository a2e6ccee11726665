package profile

import (
	"fmt"

	"tzcaster/caster"
	"tzcaster/internal/common"
)

// Validate performs structural validation of a profile before binding.
// Every defect is collected into one *caster.ConfigError so a broken
// profile fails with the complete list.
func Validate(p *Profile) error {
	var issues []caster.Issue

	if p == nil {
		issues = append(issues, caster.Issue{Code: "profile_is_nil", Message: "profile is nil"})
		return &caster.ConfigError{Issues: issues}
	}

	if p.Zone == "" {
		issues = append(issues, caster.Issue{Code: "missing_zone", Message: "profile declares no zone"})
	}

	if (p.Markers.Local == "") != (p.Markers.UTC == "") {
		issues = append(issues, caster.Issue{
			Code:    "partial_markers",
			Message: "markers must set both local and utc, or neither",
		})
	} else if p.Markers.Local != "" && p.Markers.Local == p.Markers.UTC {
		issues = append(issues, caster.Issue{
			Code:    "ambiguous_markers",
			Message: fmt.Sprintf("local and utc markers are both %q", p.Markers.Local),
		})
	}

	if common.IsEmpty(p.Pairs) {
		issues = append(issues, caster.Issue{Code: "no_pairs", Message: "profile declares no pairs"})
	}

	seen := map[string]struct{}{}

	for i := range p.Pairs {
		pair := &p.Pairs[i]

		if pair.Source == "" || pair.Target == "" {
			issues = append(issues, caster.Issue{
				Code: "incomplete_pair", TypePair: pair.String(),
				Message: "pair must name both source and target",
			})

			continue
		}

		if _, dup := seen[pair.String()]; dup {
			issues = append(issues, caster.Issue{
				Code: "duplicate_pair", TypePair: pair.String(),
				Message: "pair is declared twice",
			})
		}

		seen[pair.String()] = struct{}{}
	}

	if len(issues) > 0 {
		return &caster.ConfigError{Issues: issues}
	}

	return nil
}
