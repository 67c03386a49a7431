package window

// Field is a single-line numeric text box. It only accepts characters that
// can appear in a decimal or exponent number.
type Field struct {
	text    []rune
	limit   int
	Focused bool
}

// NewField creates a field holding initial.
func NewField(initial string, limit int) *Field {
	f := &Field{limit: limit}
	f.Insert([]rune(initial))
	return f
}

// Insert appends the accepted runes of rs.
func (f *Field) Insert(rs []rune) {
	for _, r := range rs {
		if !acceptRune(r) {
			continue
		}
		if f.limit > 0 && len(f.text) >= f.limit {
			return
		}
		f.text = append(f.text, r)
	}
}

// Backspace deletes the last rune.
func (f *Field) Backspace() {
	if len(f.text) > 0 {
		f.text = f.text[:len(f.text)-1]
	}
}

func (f *Field) Value() string {
	return string(f.text)
}

func acceptRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '.', r == '-', r == '+', r == 'e', r == 'E':
		return true
	}
	return false
}
