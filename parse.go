package mandel

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the set of types ParsePair can produce.
type Number interface {
	constraints.Integer | constraints.Float
}

// ParsePair splits s at the first sep and parses both halves as T,
// e.g. "640x480" with 'x' or "-1.2,0.35" with ','.
//
// It reports false if sep is missing or if either half is not a valid T.
// Surrounding whitespace is not accepted, and text following the first sep
// belongs to the right half even if it contains sep again.
func ParsePair[T Number](s string, sep rune) (T, T, bool) {
	left, right, found := strings.Cut(s, string(sep))
	if !found {
		return 0, 0, false
	}

	l, ok := parseNumber[T](left)
	if !ok {
		return 0, 0, false
	}
	r, ok := parseNumber[T](right)
	if !ok {
		return 0, 0, false
	}
	return l, r, true
}

// parseNumber parses s with the strconv rule matching T's kind and size.
func parseNumber[T Number](s string) (T, bool) {
	t := reflect.TypeFor[T]()

	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		// ParseFloat also takes hexadecimal mantissas; only decimal is valid here.
		if strings.ContainsAny(s, "xX") {
			return 0, false
		}
		// Overflow yields ±Inf together with ErrRange; keep the infinity.
		v, err := strconv.ParseFloat(s, t.Bits())
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return T(v), true

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(s, 10, t.Bits())
		if err != nil {
			return 0, false
		}
		return T(v), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		// ParseUint takes no sign at all; a single leading '+' is allowed.
		if len(s) > 1 && s[0] == '+' && s[1] != '+' && s[1] != '-' {
			s = s[1:]
		}
		v, err := strconv.ParseUint(s, 10, t.Bits())
		if err != nil {
			return 0, false
		}
		return T(v), true
	}

	return 0, false
}

// ParseComplex parses "re,im" into a complex number.
func ParseComplex(s string) (complex128, bool) {
	re, im, ok := ParsePair[float64](s, ',')
	if !ok {
		return 0, false
	}
	return complex(re, im), true
}

// FormatComplex is the inverse of ParseComplex.
func FormatComplex(c complex128) string {
	return strconv.FormatFloat(real(c), 'g', -1, 64) + "," + strconv.FormatFloat(imag(c), 'g', -1, 64)
}

// ParseBounds parses "WxH". Both dimensions must be positive and
// W*H must fit in an int.
func ParseBounds(s string) (Bounds, bool) {
	w, h, ok := ParsePair[int](s, 'x')
	if !ok || w <= 0 || h <= 0 || w > math.MaxInt/h {
		return Bounds{}, false
	}
	return Bounds{Width: w, Height: h}, true
}
