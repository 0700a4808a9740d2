package chart

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cast"
)

// ToNumber coerces a raw cell value to a float64.
// Numbers pass through; strings yield their leading decimal prefix
// ("3.5abc" is 3.5); anything else, and any non-finite result, is 0.
func ToNumber(v interface{}) float64 {
	var f float64
	switch x := v.(type) {
	case string:
		f = leadingFloat(x)
	case json.Number:
		f = leadingFloat(x.String())
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		f = cast.ToFloat64(x)
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Label renders a raw cell value as display text.
func Label(v interface{}) string {
	if v == nil {
		return ""
	}
	return cast.ToString(v)
}

// leadingFloat parses the longest decimal prefix of s after leading space.
func leadingFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}

	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return f
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
