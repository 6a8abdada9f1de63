package grammar

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/go-urlcore/urlcore/internal/constraints"
)

// ReplacementChar is substituted for any code point that cannot be decoded.
const ReplacementChar rune = 0xFFFD

// ReadUTF8Char decodes one code point from s starting at i. It returns the
// code point, the index just past the bytes it consumed, and false if the
// sequence was malformed — in which case it still returns the replacement
// character and advances by one byte so the caller can keep scanning.
func ReadUTF8Char(s []byte, i int) (r rune, next int, ok bool) {
	if i >= len(s) {
		return ReplacementChar, i, false
	}
	r, size := utf8.DecodeRune(s[i:])
	if r == utf8.RuneError && size <= 1 {
		return ReplacementChar, i + 1, false
	}
	return r, i + size, true
}

// ReadUTF16Char decodes one code point from s starting at i, combining
// surrogate pairs. It returns the code point, the index just past the
// code units it consumed, and false on an unpaired surrogate.
func ReadUTF16Char(s []uint16, i int) (r rune, next int, ok bool) {
	if i >= len(s) {
		return ReplacementChar, i, false
	}
	u := rune(s[i])
	if !utf16.IsSurrogate(u) {
		return u, i + 1, true
	}
	if i+1 < len(s) {
		if dec := utf16.DecodeRune(u, rune(s[i+1])); dec != utf8.RuneError {
			return dec, i + 2, true
		}
	}
	return ReplacementChar, i + 1, false
}

// AppendUTF8Value writes r to out encoded as UTF-8.
func AppendUTF8Value(r rune, out *[]byte) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	*out = append(*out, buf[:n]...)
}

// AppendUTF16Value writes r to out encoded as UTF-16.
func AppendUTF16Value(r rune, out *[]uint16) {
	r1, r2 := utf16.EncodeRune(r)
	if r1 == utf8.RuneError && r2 == utf8.RuneError {
		*out = append(*out, uint16(r))
		return
	}
	*out = append(*out, uint16(r1), uint16(r2))
}

// DecodeComponent walks every code point of s — a narrow (string/[]byte,
// UTF-8) or wide ([]uint16, UTF-16) sequence — calling each for every
// decoded code point. It returns false if any code point was malformed,
// in which case the replacement character was passed to each in its place
// but decoding continued to the end of s.
func DecodeComponent[T constraints.Codeunit](s T, each func(r rune)) (ok bool) {
	ok = true
	switch v := any(s).(type) {
	case string:
		b := []byte(v)
		for i := 0; i < len(b); {
			r, next, valid := ReadUTF8Char(b, i)
			ok = ok && valid
			each(r)
			i = next
		}
	case []byte:
		for i := 0; i < len(v); {
			r, next, valid := ReadUTF8Char(v, i)
			ok = ok && valid
			each(r)
			i = next
		}
	case []uint16:
		for i := 0; i < len(v); {
			r, next, valid := ReadUTF16Char(v, i)
			ok = ok && valid
			each(r)
			i = next
		}
	}
	return ok
}
