package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToNumber coerces a raw cell value to a non-negative measure.
// Empty/absent input yields 0. String input is stripped of every character
// outside digits and a single decimal point before parsing; anything that
// still fails to parse yields 0. Never returns NaN or Inf.
func ToNumber(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		return sanitizeNumber(v)
	case float32:
		return sanitizeNumber(float64(v))
	case int:
		return sanitizeNumber(float64(v))
	case int64:
		return sanitizeNumber(float64(v))
	case string:
		cleaned := cleanNumericString(v)
		if cleaned == "" {
			return 0
		}
		n, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return sanitizeNumber(n)
	default:
		return 0
	}
}

// ToText coerces a raw cell value to a trimmed string.
// Empty/absent input yields the supplied fallback.
func ToText(raw any, fallback string) string {
	if raw == nil {
		return fallback
	}
	var s string
	switch v := raw.(type) {
	case string:
		s = v
	default:
		s = fmt.Sprint(v)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}

// ToFloat parses a strict float from a raw cell value. Unlike ToNumber it
// does not scrub the input; a non-numeric value is a failure, not a zero.
// Used for coordinates, where a silent 0 would be a real position.
func ToFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// cleanNumericString keeps digits and the first decimal point only.
// Handles inputs like "1,200원" or "500 EA".
func cleanNumericString(s string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "." {
		return ""
	}
	return cleaned
}

func sanitizeNumber(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}
