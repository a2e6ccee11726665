package caster

import (
	"reflect"
	"time"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	timePtrType = reflect.TypeOf(&time.Time{})
)

// FieldDescriptor locates one timestamp field inside a struct type. The
// table of descriptors is built once per registered pair, so conversions
// never rediscover fields reflectively.
type FieldDescriptor struct {
	Name    string
	Index   int
	Pointer bool // declared as *time.Time rather than time.Time
}

// TimestampFields builds the descriptor table for struct type t, in
// declaration order. Only exported, non-embedded fields declared exactly
// as time.Time or *time.Time qualify; collections, nested structs and
// named time wrappers never do.
func TimestampFields(t reflect.Type) []FieldDescriptor {
	var out []FieldDescriptor

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}

		switch f.Type {
		case timeType:
			out = append(out, FieldDescriptor{Name: f.Name, Index: i})
		case timePtrType:
			out = append(out, FieldDescriptor{Name: f.Name, Index: i, Pointer: true})
		}
	}

	return out
}
