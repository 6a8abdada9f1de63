package grammar_test

import (
	"testing"

	"github.com/go-urlcore/urlcore/internal/grammar"
)

func TestEscapeRoundTrip(t *testing.T) {
	t.Parallel()

	for b := 0; b < 256; b++ {
		b := byte(b)
		var buf []byte
		grammar.AppendEscapedChar(b, &buf)

		got, next, ok := grammar.DecodeEscaped(buf, 0)
		if !ok {
			t.Fatalf("DecodeEscaped(%q) returned ok=false", buf)
		}
		if next != 3 {
			t.Errorf("DecodeEscaped(%q) next = %d, want 3", buf, next)
		}
		if got != b {
			t.Errorf("DecodeEscaped(AppendEscapedChar(%d)) = %d, want %d", b, got, b)
		}
	}
}

func TestDecodeEscapedRejectsShortOrNonHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
	}{
		{"truncated after percent", "%"},
		{"truncated after one digit", "%A"},
		{"non-hex first digit", "%G0"},
		{"non-hex second digit", "%0G"},
		{"not a percent at all", "abc"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			_, next, ok := grammar.DecodeEscaped([]byte(c.in), 0)
			if ok {
				t.Fatalf("DecodeEscaped(%q) ok = true, want false", c.in)
			}
			if next != 0 {
				t.Errorf("DecodeEscaped(%q) next = %d, want 0 (unchanged)", c.in, next)
			}
		})
	}
}

func TestHexDigitRoundTrip(t *testing.T) {
	t.Parallel()

	for v := byte(0); v < 16; v++ {
		upper := "0123456789ABCDEF"[v]
		lower := "0123456789abcdef"[v]

		got, ok := grammar.DecodeHexDigit(upper)
		if !ok || got != v {
			t.Errorf("DecodeHexDigit(%q) = %d, %v; want %d, true", upper, got, ok, v)
		}
		got, ok = grammar.DecodeHexDigit(lower)
		if !ok || got != v {
			t.Errorf("DecodeHexDigit(%q) = %d, %v; want %d, true", lower, got, ok, v)
		}
	}
}
