package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzcaster/caster"
)

func issueCodes(t *testing.T, err error) []string {
	t.Helper()

	var cfgErr *caster.ConfigError
	require.ErrorAs(t, err, &cfgErr)

	codes := make([]string, len(cfgErr.Issues))
	for i, issue := range cfgErr.Issues {
		codes[i] = issue.Code
	}

	return codes
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid profile", func(t *testing.T) {
		t.Parallel()

		p, err := Parse([]byte(sampleYAML))
		require.NoError(t, err)
		assert.NoError(t, Validate(p))
	})

	t.Run("nil profile", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, issueCodes(t, Validate(nil)), "profile_is_nil")
	})

	t.Run("all defects reported at once", func(t *testing.T) {
		t.Parallel()

		p := &Profile{
			Markers: Markers{Local: "data"},
			Pairs: []Pair{
				{Source: "data.Person", Target: "domain.Person"},
				{Source: "data.Person", Target: "domain.Person"},
				{Source: "data.Appointment"},
			},
		}

		codes := issueCodes(t, Validate(p))
		assert.Equal(t, []string{"missing_zone", "partial_markers", "duplicate_pair", "incomplete_pair"}, codes)
	})

	t.Run("no pairs", func(t *testing.T) {
		t.Parallel()

		p := &Profile{Zone: "America/Chicago"}
		assert.Contains(t, issueCodes(t, Validate(p)), "no_pairs")
	})

	t.Run("ambiguous markers", func(t *testing.T) {
		t.Parallel()

		p := &Profile{
			Zone:    "America/Chicago",
			Markers: Markers{Local: "x", UTC: "x"},
			Pairs:   []Pair{{Source: "a", Target: "b"}},
		}
		assert.Contains(t, issueCodes(t, Validate(p)), "ambiguous_markers")
	})
}
