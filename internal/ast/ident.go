package ast

// Ident is an identifier together with its surface escaping. Escaped is
// recorded at parse time and reproduced verbatim at serialize time; it is
// never recomputed from the text, so a needlessly escaped safe name stays
// escaped and a safe bare name stays bare.
type Ident struct {
	Text    string
	Escaped bool
}

// Zero reports whether the identifier is unset.
func (i Ident) Zero() bool {
	return i.Text == "" && !i.Escaped
}

// String renders the identifier in its surface form.
func (i Ident) String() string {
	if i.Escaped {
		return "`" + i.Text + "`"
	}
	return i.Text
}
