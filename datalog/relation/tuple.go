package relation

import "strings"

// Scheme is an ordered sequence of attribute names. The i-th name describes
// the i-th component of every Tuple in the Relation it belongs to.
type Scheme []string

// Clone returns an independent copy of the scheme.
func (s Scheme) Clone() Scheme {
	out := make(Scheme, len(s))
	copy(out, s)
	return out
}

// Tuple is an ordered sequence of values. Values that originated from a
// fact or a literal parameter carry their surrounding single quotes; values
// bound from a variable do not need quoting since equality is exact string
// equality either way.
type Tuple []string

// Clone returns an independent copy of the tuple.
func (t Tuple) Clone() Tuple {
	out := make(Tuple, len(t))
	copy(out, t)
	return out
}

// key returns a canonical string for use as a Go map key. '\x1f' (unit
// separator) never appears in a quoted literal or a bare identifier, so the
// join is injective over the tuples this language can produce.
func (t Tuple) key() string {
	return strings.Join(t, "\x1f")
}

// Render formats the tuple against scheme as `attr='value', ...`, stripping
// a literal's surrounding quotes if both are present, per the output
// contract of spec.md §6.
func (t Tuple) Render(scheme Scheme) string {
	var b strings.Builder
	for i, attr := range scheme {
		if i > 0 {
			b.WriteString(", ")
		}
		v := ""
		if i < len(t) {
			v = t[i]
		}
		v = unquote(v)
		b.WriteString(attr)
		b.WriteString("='")
		b.WriteString(v)
		b.WriteString("'")
	}
	return b.String()
}

func unquote(v string) string {
	if len(v) >= 2 && v[0] == '\'' && v[len(v)-1] == '\'' {
		return v[1 : len(v)-1]
	}
	return v
}
