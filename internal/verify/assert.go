package verify

import "time"

// AssertDefined fails when value is Undefined. Null passes.
func AssertDefined(value any, path string) error {
	if !IsDefined(value) {
		return newTypeError("defined value", value, path)
	}
	return nil
}

// AssertPresent fails when value is Undefined or nil.
func AssertPresent(value any, path string) error {
	if !IsPresent(value) {
		return newTypeError("non-null value", value, path)
	}
	return nil
}

func AssertString(value any, path string) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", newTypeError("string", value, path)
	}
	return s, nil
}

// AssertNumber accepts any Go numeric type holding a finite value.
func AssertNumber(value any, path string) (float64, error) {
	n, ok := Number(value)
	if !ok {
		return 0, newTypeError("number", value, path)
	}
	return n, nil
}

func AssertBoolean(value any, path string) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, newTypeError("boolean", value, path)
	}
	return b, nil
}

// AssertObject accepts decoded JSON objects. Arrays, dates and null are rejected.
func AssertObject(value any, path string) (map[string]any, error) {
	obj, ok := value.(map[string]any)
	if !ok || obj == nil {
		return nil, newTypeError("object", value, path)
	}
	return obj, nil
}

// AssertDate accepts a non-zero time.Time.
func AssertDate(value any, path string) (time.Time, error) {
	d, ok := validDate(value)
	if !ok {
		return time.Time{}, newTypeError("Date", value, path)
	}
	return d, nil
}

// AssertType fails with expectedType in the message when guard rejects value.
func AssertType(value any, guard Guard, expectedType string, path string) error {
	if !guard(value) {
		return newTypeError(expectedType, value, path)
	}
	return nil
}
