package urlcore

import (
	"github.com/go-urlcore/urlcore/internal/constraints"
	"github.com/go-urlcore/urlcore/internal/grammar"
)

// PortUnspecified is returned by ParsePort for an absent or empty port
// component.
const PortUnspecified = -1

// PortInvalid is returned by ParsePort when the port component is not
// all decimal digits, or the numeric value overflows 16 bits.
const PortInvalid = -2

// ParsePort parses comp within spec as a decimal port number. Leading
// zeros are stripped before the digit-run length check, so
// "00000000000000000000080" still parses to 80.
func ParsePort[T constraints.Codeunit](spec T, comp Component) int {
	if comp.Len <= 0 {
		return PortUnspecified
	}
	begin, end := comp.Begin, comp.End()
	for begin < end-1 && grammar.UnitAt(spec, begin) == '0' {
		begin++
	}
	if end-begin > 5 {
		return PortInvalid
	}
	val := 0
	for i := begin; i < end; i++ {
		c := grammar.UnitAt(spec, i)
		if c > 0x7f {
			return PortInvalid
		}
		d, ok := grammar.DecDigitValue(byte(c))
		if !ok {
			return PortInvalid
		}
		val = val*10 + int(d)
	}
	if val > 65535 {
		return PortInvalid
	}
	return val
}
