package urlcore

import "strconv"

// defaultPortForScheme returns the well-known port a standard scheme
// implies, or -1 if it has none (or isn't one of the schemes this
// module special-cases).
func defaultPortForScheme(scheme string) int {
	switch scheme {
	case "http":
		return 80
	case "https":
		return 443
	case "ftp":
		return 21
	case "gopher":
		return 70
	default:
		return -1
	}
}

// canonicalizePort parses comp as a decimal port number and renders it
// without leading zeros. An empty port, or one equal to scheme's
// default port, is omitted entirely (no ":port" is written and the
// returned component is invalid).
func canonicalizePort(spec string, comp Component, scheme string, out *CanonOutput) (Component, bool) {
	if comp.Len <= 0 {
		return InvalidComponent, true
	}

	port := ParsePort(spec, comp)
	if port == PortInvalid {
		return InvalidComponent, false
	}
	if port == PortUnspecified || port == defaultPortForScheme(scheme) {
		return InvalidComponent, true
	}

	out.WriteByte(':')
	begin := out.Len()
	out.WriteString(strconv.Itoa(port))
	return MakeRange(begin, out.Len()), true
}
