package schema

import "unicode/utf8"

// EnumValue is one member of an enum type.
type EnumValue struct {
	name string
	code string
}

// NewEnumValue returns an enum value. An empty code falls back to the name.
func NewEnumValue(name, code string) *EnumValue {
	return &EnumValue{name: name, code: code}
}

// Name returns the display name.
func (v *EnumValue) Name() string { return v.name }

// Code returns the stored code, or the name when no code was declared.
func (v *EnumValue) Code() string {
	if v.code == "" {
		return v.name
	}
	return v.code
}

// HasCode reports whether an explicit code was declared.
func (v *EnumValue) HasCode() bool { return v.code != "" }

// EnumType is a named, ordered list of values.
type EnumType struct {
	Name   string
	Values []*EnumValue
}

// NewEnumType returns an enum type.
func NewEnumType(name string, values ...*EnumValue) *EnumType {
	return &EnumType{Name: name, Values: values}
}

// Codes returns the stored codes in declaration order.
func (e *EnumType) Codes() []string {
	codes := make([]string, len(e.Values))
	for i, v := range e.Values {
		codes[i] = v.Code()
	}
	return codes
}

// CodeLengths returns the shortest and longest code length in characters.
// Both are zero for an enum without values.
func (e *EnumType) CodeLengths() (minLen, maxLen int) {
	for i, v := range e.Values {
		n := utf8.RuneCountInString(v.Code())
		if i == 0 || n < minLen {
			minLen = n
		}
		maxLen = max(maxLen, n)
	}
	return minLen, maxLen
}
