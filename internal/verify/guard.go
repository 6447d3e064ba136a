package verify

import "reflect"

// Guard is a predicate over an untyped value. Guards never panic.
type Guard func(value any) bool

func IsDefined(value any) bool {
	_, isUndefined := value.(undefined)
	return !isUndefined
}

func IsPresent(value any) bool {
	return IsDefined(value) && value != nil
}

func IsString(value any) bool {
	_, ok := value.(string)
	return ok
}

func IsNumber(value any) bool {
	_, ok := Number(value)
	return ok
}

func IsBoolean(value any) bool {
	_, ok := value.(bool)
	return ok
}

func IsObject(value any) bool {
	obj, ok := value.(map[string]any)
	return ok && obj != nil
}

func IsArray(value any) bool {
	if _, ok := value.([]any); ok {
		return true
	}
	if value == nil {
		return false
	}
	kind := reflect.TypeOf(value).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

func IsDate(value any) bool {
	_, ok := validDate(value)
	return ok
}

// IsOneOf accepts values of type T equal to one of allowed.
func IsOneOf[T comparable](allowed ...T) Guard {
	return func(value any) bool {
		v, ok := value.(T)
		if !ok {
			return false
		}
		for _, a := range allowed {
			if v == a {
				return true
			}
		}
		return false
	}
}

// IsOptional also accepts Undefined.
func IsOptional(guard Guard) Guard {
	return func(value any) bool {
		return !IsDefined(value) || guard(value)
	}
}

// IsNullable also accepts nil.
func IsNullable(guard Guard) Guard {
	return func(value any) bool {
		return value == nil || guard(value)
	}
}

func IsOptionalOrNullable(guard Guard) Guard {
	return func(value any) bool {
		return !IsPresent(value) || guard(value)
	}
}

// IsArrayOf accepts arrays whose every element passes guard. An empty
// array passes.
func IsArrayOf(guard Guard) Guard {
	return func(value any) bool {
		if items, ok := value.([]any); ok {
			for _, item := range items {
				if !guard(item) {
					return false
				}
			}
			return true
		}
		if !IsArray(value) {
			return false
		}
		rv := reflect.ValueOf(value)
		for i := 0; i < rv.Len(); i++ {
			if !guard(rv.Index(i).Interface()) {
				return false
			}
		}
		return true
	}
}

// IsObjectWithProperties accepts objects where every schema key passes its
// guard. Missing keys are checked as Undefined, so IsOptional guards allow
// them. Evaluation stops at the first failing key.
func IsObjectWithProperties(schema map[string]Guard) Guard {
	return func(value any) bool {
		obj, ok := value.(map[string]any)
		if !ok || obj == nil {
			return false
		}
		for key, guard := range schema {
			if !guard(Lookup(obj, key)) {
				return false
			}
		}
		return true
	}
}
