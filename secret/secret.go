// Package secret holds short lived sensitive input
// like spreadsheet passwords in byte buffers
// that can be zeroed after use.
package secret

import (
	"crypto/subtle"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Text is a secret byte buffer.
// The zero value and nil are valid empty secrets.
//
// Text intentionally does not implement fmt.Stringer
// with its content: String returns a redacted placeholder
// so a Text can never leak through log or error formatting.
type Text struct {
	data []byte
}

// FromString copies the passed string into a new Text.
// The string itself cannot be zeroed, prefer FromBytes
// or Prompt where the input is under caller control.
func FromString(str string) *Text {
	return &Text{data: []byte(str)}
}

// FromBytes wraps the passed bytes as Text without copying,
// taking ownership of the slice.
func FromBytes(data []byte) *Text {
	return &Text{data: data}
}

// Prompt writes the label to w and reads a line from the
// terminal on stdin without echoing the typed characters.
func Prompt(w io.Writer, label string) (*Text, error) {
	fmt.Fprint(w, label)
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("can't read password from terminal: %w", err)
	}
	return &Text{data: data}, nil
}

// IsEmpty reports if the secret is nil, destroyed, or empty.
func (t *Text) IsEmpty() bool {
	return t == nil || len(t.data) == 0
}

// Expose returns the secret as a string for APIs that
// require one. The returned string is a copy outside
// of the zeroing control of this Text, so keep its
// lifetime as short as possible.
func (t *Text) Expose() string {
	if t == nil {
		return ""
	}
	return string(t.data)
}

// Equal compares two secrets in constant time.
func (t *Text) Equal(other *Text) bool {
	var a, b []byte
	if t != nil {
		a = t.data
	}
	if other != nil {
		b = other.data
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Destroy zeroes the buffer. The Text is empty afterwards.
func (t *Text) Destroy() {
	if t == nil {
		return
	}
	for i := range t.data {
		t.data[i] = 0
	}
	t.data = t.data[:0]
}

func (t *Text) String() string { return "<secret>" }

// GoString implements fmt.GoStringer so that %#v
// does not reveal the buffer content either.
func (t *Text) GoString() string { return "secret.Text{<secret>}" }
