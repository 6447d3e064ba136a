package verify

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// AsString stringifies strings, numbers and booleans.
func AsString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	}

	n, ok := numberIncludingNaN(value)
	if !ok {
		return "", false
	}
	return formatNumber(n), true
}

// AsNumber accepts numbers and numeric strings. Empty strings and NaN yield
// false. "Infinity" with an optional sign is the only spelling of an infinite
// string; forms like "inf" are rejected.
func AsNumber(value any) (float64, bool) {
	if s, ok := value.(string); ok {
		return parseNumber(strings.TrimSpace(s))
	}
	n, ok := numberIncludingNaN(value)
	if !ok || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

func parseNumber(s string) (float64, bool) {
	switch s {
	case "":
		return 0, false
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	if strings.Contains(strings.ToLower(s), "inf") {
		return 0, false
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// out-of-range literals such as "1e400" overflow to ±Inf
		if errors.Is(err, strconv.ErrRange) && math.IsInf(n, 0) {
			return n, true
		}
		return 0, false
	}
	if math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// AsBoolean does not coerce: only a bool converts.
func AsBoolean(value any) (bool, bool) {
	b, ok := value.(bool)
	return b, ok
}

// AsDate does not coerce: only a valid time.Time converts.
func AsDate(value any) (time.Time, bool) {
	return validDate(value)
}

func numberIncludingNaN(value any) (float64, bool) {
	if f, ok := value.(float64); ok {
		return f, true
	}
	if f, ok := value.(float32); ok {
		return float64(f), true
	}
	return Number(value)
}

func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n != 0 && (math.Abs(n) >= 1e21 || math.Abs(n) < 1e-6):
		return exponentForm(n)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// exponentForm writes n as 1.5e-7 or 1e+21: no zero padding in the exponent
// and an explicit sign.
func exponentForm(n float64) string {
	s := strconv.FormatFloat(n, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
