package elm

import (
	"fmt"
	"reflect"
)

// mergeInto copies every non-zero exported field of partial onto dst.
// The merge is shallow: struct-typed fields are replaced whole, never
// merged recursively. Unexported fields do not participate.
func mergeInto[S any](dst, partial *S) {
	dv := reflect.ValueOf(dst).Elem()
	pv := reflect.ValueOf(partial).Elem()
	t := pv.Type()
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		f := pv.Field(i)
		if f.IsZero() {
			continue
		}
		dv.Field(i).Set(f)
	}
}

// isZeroPartial reports whether every exported field of partial is zero,
// meaning the partial carries no changes.
func isZeroPartial[S any](partial *S) bool {
	v := reflect.ValueOf(partial).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		if !v.Field(i).IsZero() {
			return false
		}
	}
	return true
}

// cloneModel returns a shallow copy of m.
func cloneModel[S any](m *S) *S {
	c := *m
	return &c
}

// validateModelType rejects non-struct model types up front so the merge
// never has to.
func validateModelType[S any]() error {
	var s S
	if reflect.TypeOf(&s).Elem().Kind() != reflect.Struct {
		return fmt.Errorf("elm: model type %s must be a struct", reflect.TypeOf(&s).Elem())
	}
	return nil
}
