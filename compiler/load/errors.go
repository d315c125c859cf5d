package load

import (
	"errors"
	"strings"
)

// ErrParse is the sentinel matched by every ParseError.
var ErrParse = errors.New("load: parse error")

// ParseError reports a document that cannot be turned into a model. Element
// is the XML element at fault and Name the name or value that locates it.
type ParseError struct {
	Element string
	Name    string
	Cause   error
}

// Error returns the error string.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("load: ")
	if e.Element != "" {
		b.WriteString("<")
		b.WriteString(e.Element)
		b.WriteString(">")
		if e.Name != "" {
			b.WriteString(" ")
			b.WriteString(e.Name)
		}
		b.WriteString(": ")
	}
	if e.Cause != nil {
		b.WriteString(e.Cause.Error())
	} else {
		b.WriteString("invalid document")
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Cause }

// Is reports whether the target error matches ParseError.
func (e *ParseError) Is(err error) bool {
	return err == ErrParse
}

func newParseError(element, name string, cause error) *ParseError {
	return &ParseError{Element: element, Name: name, Cause: cause}
}

// IsParseError returns true if the error is a ParseError.
func IsParseError(err error) bool {
	if err == nil {
		return false
	}
	var e *ParseError
	return errors.As(err, &e)
}
