package urlcore

import (
	"strconv"
	"strings"

	"github.com/go-urlcore/urlcore/internal/grammar"
)

// findIPv4Components splits host on '.' into at most four components,
// tolerating a single trailing empty component ("1.2.3.4."). Any other
// empty component, more than four components, or a component
// containing a byte outside the IPV4 class fails.
func findIPv4Components(host string) ([]string, bool) {
	if host == "" {
		return nil, false
	}
	parts := strings.Split(host, ".")
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 || len(parts) > 4 {
		return nil, false
	}
	for _, p := range parts {
		if p == "" {
			return nil, false
		}
		for i := 0; i < len(p); i++ {
			if !grammar.IsIPv4Char(p[i]) {
				return nil, false
			}
		}
	}
	return parts, true
}

// ipv4ComponentToNumber parses one dotted-decimal component, choosing
// its base the way a C-style integer literal would: "0x"/"0X" selects
// base 16, a leading '0' with more than one digit selects base 8,
// otherwise base 10. The result is truncated to 32 bits.
func ipv4ComponentToNumber(c string) (uint32, bool) {
	base := 10
	digits := c
	switch {
	case len(c) >= 2 && c[0] == '0' && (c[1] == 'x' || c[1] == 'X'):
		base = 16
		digits = c[2:]
	case len(c) > 1 && c[0] == '0':
		base = 8
		digits = c[1:]
	}
	if len(digits) == 0 || len(digits) > 16 {
		return 0, false
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// assembleIPv4 combines 1-4 numeric components into a 32-bit address
// using the historical inet_aton packing rules: with N components, the
// last absorbs (4-N+1) octets and the earlier ones are each truncated
// to a single octet.
func assembleIPv4(nums []uint32) uint32 {
	var addr uint32
	for i := 0; i < len(nums)-1; i++ {
		addr = addr<<8 | (nums[i] & 0xff)
	}
	last := nums[len(nums)-1]
	shift := uint(8 * (4 - len(nums) + 1))
	if shift >= 32 {
		shift = 0
	}
	mask := uint32(1)<<shift - 1
	if shift == 0 {
		mask = 0xffffffff
	}
	addr = addr<<shift | (last & mask)
	return addr
}

// canonicalizeIPv4 attempts to parse host as an IPv4 literal and, on
// success, writes its canonical dotted-decimal rendering to out.
func canonicalizeIPv4(host string, out *CanonOutput) bool {
	parts, ok := findIPv4Components(host)
	if !ok {
		return false
	}
	nums := make([]uint32, len(parts))
	for i, p := range parts {
		n, ok := ipv4ComponentToNumber(p)
		if !ok {
			return false
		}
		nums[i] = n
	}
	addr := assembleIPv4(nums)

	out.WriteString(strconv.Itoa(int(addr >> 24 & 0xff)))
	out.WriteByte('.')
	out.WriteString(strconv.Itoa(int(addr >> 16 & 0xff)))
	out.WriteByte('.')
	out.WriteString(strconv.Itoa(int(addr >> 8 & 0xff)))
	out.WriteByte('.')
	out.WriteString(strconv.Itoa(int(addr & 0xff)))
	return true
}
