package grammar

import "github.com/go-urlcore/urlcore/internal/constraints"

// Len returns the number of code units in s, regardless of width.
func Len[T constraints.Codeunit](s T) int {
	switch v := any(s).(type) {
	case string:
		return len(v)
	case []byte:
		return len(v)
	case []uint16:
		return len(v)
	}
	return 0
}

// UnitAt returns the raw code unit value at position i. Delimiter scanning
// in the parser only ever tests for ASCII values, so callers can compare
// the result directly against byte literals ('/', ':', ...) regardless of
// whether s is narrow or wide.
func UnitAt[T constraints.Codeunit](s T, i int) uint32 {
	switch v := any(s).(type) {
	case string:
		return uint32(v[i])
	case []byte:
		return uint32(v[i])
	case []uint16:
		return uint32(v[i])
	}
	return 0
}

// Sub returns s[begin:end] narrowed to the same width as s, for handing a
// sub-range back into a width-generic function such as DecodeComponent.
func Sub[T constraints.Codeunit](s T, begin, end int) T {
	switch v := any(s).(type) {
	case string:
		return any(v[begin:end]).(T) //nolint:forcetypeassert
	case []byte:
		return any(v[begin:end]).(T) //nolint:forcetypeassert
	case []uint16:
		return any(v[begin:end]).(T) //nolint:forcetypeassert
	}
	var zero T
	return zero
}

// ASCIIBytes narrows s to a plain byte slice, assuming every code unit is
// ASCII (value < 0x80). Used only for scheme names, which the scheme
// canonicalizer validates as ASCII-only, so it is unsafe to call on a
// component that might carry escaped or raw non-ASCII content.
func ASCIIBytes[T constraints.Codeunit](s T) []byte {
	switch v := any(s).(type) {
	case string:
		return []byte(v)
	case []byte:
		return v
	case []uint16:
		out := make([]byte, len(v))
		for i, u := range v {
			out[i] = byte(u)
		}
		return out
	}
	return nil
}
