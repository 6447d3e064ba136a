// Package verify provides runtime type verification for untyped values such
// as decoded JSON documents. It offers three families of helpers: Assert*
// functions that fail fast with a *TypeVerificationError, As* conversions
// that coerce on a best-effort basis, and Is* guards that only answer yes or no.
package verify

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined stands for a value that is absent, as opposed to one that is
// present and null (nil).
var Undefined any = undefined{}

// Lookup returns obj[key], or Undefined when the key is missing.
func Lookup(obj map[string]any, key string) any {
	v, ok := obj[key]
	if !ok {
		return Undefined
	}
	return v
}

// TypeVerificationError reports a value that did not have the expected type.
type TypeVerificationError struct {
	ExpectedType string
	ActualValue  any
	PropertyPath string
	Message      string
}

func (e *TypeVerificationError) Error() string {
	return e.Message
}

func newTypeError(expected string, actual any, path string) *TypeVerificationError {
	msg := fmt.Sprintf("Expected %s, but received %s", expected, TypeName(actual))
	if path != "" {
		msg += fmt.Sprintf(" for '%s'", path)
	}
	return &TypeVerificationError{
		ExpectedType: expected,
		ActualValue:  actual,
		PropertyPath: path,
		Message:      msg,
	}
}

// TypeName returns the runtime category of value: "undefined", "null",
// "array", "Date", "object", "string", "number", "boolean", or the reflect
// kind name for anything else. Non-finite floats are reported as "NaN",
// "Infinity" or "-Infinity", and named string and bool types by type name.
func TypeName(value any) string {
	if _, ok := value.(undefined); ok {
		return "undefined"
	}
	if value == nil {
		return "null"
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "null"
		}
		return TypeName(rv.Elem().Interface())
	}

	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return "Invalid Date"
		}
		return "Date"
	case string:
		return "string"
	case bool:
		return "boolean"
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Func:
		return "function"
	case reflect.String, reflect.Bool:
		// Named kinds such as models.Hemisphere are not accepted by the
		// string and boolean guards, so they are reported by type.
		return rv.Type().String()
	}

	if f, ok := toFloat(rv); ok {
		if !isFinite(f) {
			return formatNumber(f)
		}
		return "number"
	}
	return rv.Kind().String()
}

func toFloat(rv reflect.Value) (float64, bool) {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	}
	return 0, false
}

// Number reports value as a float64 when it is any Go numeric type holding
// a finite value. NaN and ±Inf have no JSON encoding and are rejected.
func Number(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, isFinite(n)
	case int:
		return float64(n), true
	case nil:
		return 0, false
	}

	rv := reflect.ValueOf(value)
	f, ok := toFloat(rv)
	if !ok || !isFinite(f) {
		return 0, false
	}
	return f, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func validDate(value any) (time.Time, bool) {
	switch d := value.(type) {
	case time.Time:
		return d, !d.IsZero()
	case *time.Time:
		if d == nil {
			return time.Time{}, false
		}
		return *d, !d.IsZero()
	}
	return time.Time{}, false
}
