package present

import "unicode"

// Form is the editable state of the three input fields, shared by the interactive front-ends.
type Form struct {
	Request Request
	Focus   Kind // The field being typed into
}

// Next moves the focus to the following field, wrapping around after the last one.
func (form *Form) Next() {
	form.Focus = Kinds[(int(form.Focus)+1)%len(Kinds)]
}

// Previous moves the focus to the preceding field, wrapping around before the first one.
func (form *Form) Previous() {
	form.Focus = Kinds[(int(form.Focus)+len(Kinds)-1)%len(Kinds)]
}

// Type appends printable runes to the focused field; control characters are skipped.
func (form *Form) Type(runes ...rune) {
	text := []rune(form.Request.Text(form.Focus))
	for _, r := range runes {
		if unicode.IsPrint(r) {
			text = append(text, r)
		}
	}
	form.Request = form.Request.WithText(form.Focus, string(text))
}

// Backspace removes the last rune of the focused field.
func (form *Form) Backspace() {
	text := []rune(form.Request.Text(form.Focus))
	if len(text) > 0 {
		form.Request = form.Request.WithText(form.Focus, string(text[:len(text)-1]))
	}
}

// Clear empties the focused field.
func (form *Form) Clear() {
	form.Request = form.Request.WithText(form.Focus, "")
}

// ClearAll empties every field.
func (form *Form) ClearAll() {
	form.Request = Request{}
}

// Text returns the focused field's text.
func (form *Form) Text() string {
	return form.Request.Text(form.Focus)
}
