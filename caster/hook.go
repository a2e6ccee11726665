package caster

import (
	"reflect"
	"strings"
	"time"

	"tzcaster/zone"
)

// Hook inspects or rewrites the destination value after the copy plan and
// resolvers have fully populated it. Hooks are attached explicitly at
// registration; nothing runs implicitly.
type Hook func(dst reflect.Value)

// timestampHook builds the post-copy hook that rezones eligible
// destination timestamp fields in place.
//
// Skipped fields: names in the passthrough set (case-insensitive), nil
// pointers, and zero time values, which stand for "absent". Everything
// else is reinterpreted per direction: LocalToUTC strips whatever zone
// the copied value carries and reads it as wall clock; UTCToLocal forces
// the value to UTC and rewrites it as wall clock in the configured zone.
func timestampHook(direction DirectionEnum, stamps []FieldDescriptor, passthrough map[string]struct{}, h *zone.Handle) Hook {
	if direction == DirectionNone || len(stamps) == 0 {
		return nil
	}

	return func(dst reflect.Value) {
		for _, fd := range stamps {
			if _, skip := passthrough[strings.ToLower(fd.Name)]; skip {
				continue
			}

			fv := dst.Field(fd.Index)

			var t time.Time
			if fd.Pointer {
				if fv.IsNil() {
					continue
				}
				t = fv.Elem().Interface().(time.Time)
			} else {
				t = fv.Interface().(time.Time)
			}

			if t.IsZero() {
				continue
			}

			var converted time.Time
			switch direction {
			case DirectionLocalToUTC:
				converted = h.ToUTC(t)
			case DirectionUTCToLocal:
				converted = h.ToLocal(t)
			}

			if fd.Pointer {
				// Fresh allocation: the copy plan copied the pointer itself,
				// so writing through it would rewrite the source's value.
				fv.Set(reflect.ValueOf(&converted))
			} else {
				fv.Set(reflect.ValueOf(converted))
			}
		}
	}
}
