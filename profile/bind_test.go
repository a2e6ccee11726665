package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzcaster/caster"
	"tzcaster/data"
	"tzcaster/domain"
	"tzcaster/names"
)

func fixtureTypes() TypeSet {
	return TypeSet{
		"data.Person":        data.Person{},
		"domain.Person":      domain.Person{},
		"data.Appointment":   data.Appointment{},
		"domain.Appointment": domain.Appointment{},
	}
}

func fixtureResolvers() Resolvers {
	f := names.Simple{}

	return Resolvers{
		"domain.Person.FullName": func(p data.Person) string {
			return f.FormatFullName(p.FirstName, p.LastName)
		},
	}
}

func TestBind(t *testing.T) {
	t.Parallel()

	p, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	reg, err := Bind(p, fixtureTypes(), fixtureResolvers())
	require.NoError(t, err)
	require.Len(t, reg.Mappings(), 3)

	got, err := caster.ConvertTo[domain.Person](reg, data.Person{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		CreatedTime: time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", got.FullName)
	assert.True(t, got.CreatedTime.Equal(time.Date(2024, time.January, 15, 16, 0, 0, 0, time.UTC)))
}

func TestBindErrors(t *testing.T) {
	t.Parallel()

	t.Run("invalid profile", func(t *testing.T) {
		t.Parallel()

		_, err := Bind(&Profile{}, fixtureTypes(), nil)
		var cfgErr *caster.ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("unknown zone", func(t *testing.T) {
		t.Parallel()

		p := &Profile{
			Zone:  "Nowhere/City",
			Pairs: []Pair{{Source: "data.Person", Target: "domain.Person"}},
		}
		_, err := Bind(p, fixtureTypes(), nil)
		assert.Error(t, err)
	})

	t.Run("unknown type name", func(t *testing.T) {
		t.Parallel()

		p := &Profile{
			Zone:  "America/Chicago",
			Pairs: []Pair{{Source: "data.Ghost", Target: "domain.Person"}},
		}
		_, err := Bind(p, fixtureTypes(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data.Ghost")
	})

	t.Run("missing resolver", func(t *testing.T) {
		t.Parallel()

		p := &Profile{
			Zone: "America/Chicago",
			Pairs: []Pair{{
				Source:    "data.Person",
				Target:    "domain.Person",
				Resolvers: []string{"FullName"},
			}},
		}
		_, err := Bind(p, fixtureTypes(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "domain.Person.FullName")
	})

	t.Run("unsatisfied destination surfaces as config error", func(t *testing.T) {
		t.Parallel()

		// FullName has neither source nor resolver nor ignore entry
		p := &Profile{
			Zone:  "America/Chicago",
			Pairs: []Pair{{Source: "data.Person", Target: "domain.Person"}},
		}
		_, err := Bind(p, fixtureTypes(), nil)

		var cfgErr *caster.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		require.Len(t, cfgErr.Issues, 1)
		assert.Equal(t, "missing_source", cfgErr.Issues[0].Code)
		assert.Equal(t, "FullName", cfgErr.Issues[0].Field)
	})
}
