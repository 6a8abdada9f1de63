package grammar

const upperhex = "0123456789ABCDEF"

// DecodeEscaped reads a "%HH" escape starting at s[i] ('%' itself at i).
// On success it returns the decoded byte and the index just past the two
// hex digits. On failure (missing or non-hex digits) it returns ok=false
// and i unchanged, so the caller can fall back to emitting '%' literally.
func DecodeEscaped(s []byte, i int) (b byte, next int, ok bool) {
	if i+2 >= len(s) || s[i] != '%' {
		return 0, i, false
	}
	hi, ok1 := DecodeHexDigit(s[i+1])
	lo, ok2 := DecodeHexDigit(s[i+2])
	if !ok1 || !ok2 {
		return 0, i, false
	}
	return hi<<4 | lo, i + 3, true
}

// AppendEscapedChar writes "%HH" with uppercase hex digits for b.
func AppendEscapedChar(b byte, out *[]byte) {
	*out = append(*out, '%', upperhex[b>>4], upperhex[b&0x0f])
}

// AppendInvalidNarrowString copies s into out, percent-escaping control
// characters, spaces, DEL, and every non-ASCII byte (each byte of a UTF-8
// sequence is escaped on its own), and copying the rest verbatim. Used
// for components the parser could not fully validate.
func AppendInvalidNarrowString(s []byte, out *[]byte) {
	for _, b := range s {
		switch {
		case b <= 0x20 || b >= 0x7f:
			AppendEscapedChar(b, out)
		default:
			*out = append(*out, b)
		}
	}
}
