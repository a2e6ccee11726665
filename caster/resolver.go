package caster

import (
	"fmt"
	"reflect"
)

// resolver computes one destination field from the whole source record.
// It covers fields the copy plan cannot reach, like display names built
// from several source fields.
type resolver struct {
	field  string
	dstIdx int
	fn     reflect.Value
	hasErr bool
}

// parseResolver inspects the provided function and returns a resolver if
// it has a recognizable shape.
//
// Supported interfaces:
//   - func(src Src) T
//   - func(src Src) (T, error)
//
// with Src the registered source type and T assignable to the
// destination field.
func parseResolver(fn any, src, fieldType reflect.Type) (resolver, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return resolver{}, ErrResolverNotAFunc
	}

	ft := fnVal.Type()
	if ft.NumIn() != 1 || ft.In(0) != src {
		return resolver{}, fmt.Errorf("%w: want input %s", ErrResolverSignature, src)
	}

	res := resolver{fn: fnVal}

	switch ft.NumOut() {
	default:
		return resolver{}, ErrResolverSignature

	case 1:

	case 2:
		if !isError(ft.Out(1)) {
			return resolver{}, ErrResolverSignature
		}

		res.hasErr = true
	}

	if !ft.Out(0).AssignableTo(fieldType) {
		return resolver{}, fmt.Errorf("%w: output %s is not assignable to %s",
			ErrResolverSignature, ft.Out(0), fieldType)
	}

	return res, nil
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	terr := reflect.TypeOf((*error)(nil)).Elem()

	return t.Implements(terr)
}
