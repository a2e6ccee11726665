package caster_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tzcaster/caster"
	"tzcaster/data"
	"tzcaster/domain"
)

func TestProvenance(t *testing.T) {
	t.Parallel()
	m := caster.DefaultMarkers()

	assert.Equal(t, caster.ProvenanceLocal, m.Provenance(reflect.TypeFor[data.Person]()))
	assert.Equal(t, caster.ProvenanceUTC, m.Provenance(reflect.TypeFor[domain.Person]()))
	assert.Equal(t, caster.ProvenanceUnknown, m.Provenance(reflect.TypeFor[time.Time]()))

	// ambiguous markers classify nothing
	both := caster.Markers{Local: "data", UTC: "data"}
	assert.Equal(t, caster.ProvenanceUnknown, both.Provenance(reflect.TypeFor[data.Person]()))
}

func TestDirection(t *testing.T) {
	t.Parallel()

	m := caster.DefaultMarkers()
	local := reflect.TypeFor[data.Appointment]()
	utc := reflect.TypeFor[domain.Appointment]()

	t.Run("local to utc", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, caster.DirectionLocalToUTC, m.Direction(local, utc))
	})

	t.Run("utc to local", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, caster.DirectionUTCToLocal, m.Direction(utc, local))
	})

	t.Run("symmetry", func(t *testing.T) {
		t.Parallel()

		if m.Direction(local, utc) == caster.DirectionLocalToUTC {
			assert.Equal(t, caster.DirectionUTCToLocal, m.Direction(utc, local))
		}
	})

	t.Run("same provenance", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, caster.DirectionNone, m.Direction(local, local))
		assert.Equal(t, caster.DirectionNone, m.Direction(utc, utc))
		assert.Equal(t, caster.DirectionNone,
			m.Direction(reflect.TypeFor[data.Person](), reflect.TypeFor[data.Appointment]()))
	})

	t.Run("unclassified endpoint", func(t *testing.T) {
		t.Parallel()

		unknown := reflect.TypeFor[time.Time]()
		assert.Equal(t, caster.DirectionNone, m.Direction(unknown, utc))
		assert.Equal(t, caster.DirectionNone, m.Direction(local, unknown))
	})
}

func ExampleMarkers_Direction() {
	m := caster.DefaultMarkers()

	fmt.Println(m.Direction(reflect.TypeFor[data.Person](), reflect.TypeFor[domain.Person]()))
	fmt.Println(m.Direction(reflect.TypeFor[domain.Person](), reflect.TypeFor[data.Person]()))
	fmt.Println(m.Direction(reflect.TypeFor[data.Person](), reflect.TypeFor[data.Person]()))

	// Output:
	// DirectionLocalToUTC
	// DirectionUTCToLocal
	// DirectionNone
}
