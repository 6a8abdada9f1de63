package urlcore

// Component is a half-open range (Begin, Len) over an input character
// sequence. Len == -1 denotes "not present", distinct from "present but
// empty" (Len == 0). Begin is always a valid index even when Len < 0.
type Component struct {
	Begin int
	Len   int
}

// InvalidComponent is the zero value for an absent component: begin at
// offset 0, length -1.
var InvalidComponent = Component{Begin: 0, Len: -1}

// End returns Begin + max(Len, 0).
func (c Component) End() int {
	if c.Len < 0 {
		return c.Begin
	}
	return c.Begin + c.Len
}

// IsValid reports whether c is present (Len >= 0).
func (c Component) IsValid() bool { return c.Len >= 0 }

// IsNonEmpty reports whether c is present and non-empty.
func (c Component) IsNonEmpty() bool { return c.Len > 0 }

// MakeRange returns a Component spanning [begin, end).
func MakeRange(begin, end int) Component {
	return Component{Begin: begin, Len: end - begin}
}
