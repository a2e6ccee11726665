package caster

import "reflect"

// copyStep moves one field: the source field at Src is assigned to the
// destination field at Dst. Steps carry plain field indexes because both
// endpoints are flat struct types.
type copyStep struct {
	Src, Dst int
}

// buildCopyPlan pairs every exported destination field with the source
// field of the same name and identical type. Unmatched destination fields
// are simply absent from the plan; registry validation decides whether
// that is acceptable.
func buildCopyPlan(src, dst reflect.Type) []copyStep {
	var plan []copyStep

	for i := 0; i < dst.NumField(); i++ {
		df := dst.Field(i)
		if !df.IsExported() || df.Anonymous {
			continue
		}

		sf, ok := src.FieldByName(df.Name)
		if !ok || len(sf.Index) != 1 || sf.Type != df.Type {
			continue
		}

		plan = append(plan, copyStep{Src: sf.Index[0], Dst: i})
	}

	return plan
}

// runCopyPlan populates dst from src. It runs to completion before any
// post-copy hook sees the destination.
func runCopyPlan(plan []copyStep, src, dst reflect.Value) {
	for _, step := range plan {
		dst.Field(step.Dst).Set(src.Field(step.Src))
	}
}
