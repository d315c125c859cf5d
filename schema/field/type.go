package field

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidType is returned by ParseType for names outside the closed set.
var ErrInvalidType = errors.New("field: invalid column type")

// A Type represents an abstract column type.
type Type uint8

// List of column types.
const (
	TypeInvalid Type = iota
	TypeSequence
	TypeLongSequence
	TypeByte
	TypeShort
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
	TypeDecimal
	TypeBoolean
	TypeDate
	TypeDateTime
	TypeTime
	TypeTimestamp
	TypeChar
	TypeVarchar
	TypeEnum
	TypeText
	TypeBinary
	TypeUUID
	TypeJSON
	TypeArray
	endTypes
)

var typeNames = [...]string{
	TypeInvalid:      "invalid",
	TypeSequence:     "SEQUENCE",
	TypeLongSequence: "LONGSEQUENCE",
	TypeByte:         "BYTE",
	TypeShort:        "SHORT",
	TypeInt:          "INT",
	TypeLong:         "LONG",
	TypeFloat:        "FLOAT",
	TypeDouble:       "DOUBLE",
	TypeDecimal:      "DECIMAL",
	TypeBoolean:      "BOOLEAN",
	TypeDate:         "DATE",
	TypeDateTime:     "DATETIME",
	TypeTime:         "TIME",
	TypeTimestamp:    "TIMESTAMP",
	TypeChar:         "CHAR",
	TypeVarchar:      "VARCHAR",
	TypeEnum:         "ENUM",
	TypeText:         "TEXT",
	TypeBinary:       "BINARY",
	TypeUUID:         "UUID",
	TypeJSON:         "JSON",
	TypeArray:        "ARRAY",
}

var byName = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for t := TypeSequence; t < endTypes; t++ {
		m[typeNames[t]] = t
	}
	return m
}()

// Types returns all valid types in declaration order.
func Types() []Type {
	ts := make([]Type, 0, endTypes-1)
	for t := TypeSequence; t < endTypes; t++ {
		ts = append(ts, t)
	}
	return ts
}

// ParseType returns the type with the given name. Surrounding whitespace and
// letter case are ignored.
func ParseType(name string) (Type, error) {
	if t, ok := byName[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return t, nil
	}
	return TypeInvalid, fmt.Errorf("%w: the type '%s' is not valid", ErrInvalidType, name)
}

// String returns the canonical name of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports if the given type is one of the declared types.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// ConstName returns the constant name of the type, e.g. "TypeVarchar".
func (t Type) ConstName() string {
	if !t.Valid() {
		return "invalid"
	}
	name := typeNames[t]
	switch t {
	case TypeLongSequence:
		return "TypeLongSequence"
	case TypeDateTime:
		return "TypeDateTime"
	case TypeUUID, TypeJSON:
		return "Type" + name
	}
	return "Type" + name[:1] + strings.ToLower(name[1:])
}

// Numeric reports if the given type is a numeric type.
func (t Type) Numeric() bool {
	return t >= TypeSequence && t <= TypeDecimal
}

// Sequence reports if the type is an auto-incremented identity type.
func (t Type) Sequence() bool {
	return t == TypeSequence || t == TypeLongSequence
}

// Text reports if values of the type are stored as character data.
func (t Type) Text() bool {
	switch t {
	case TypeChar, TypeVarchar, TypeText, TypeEnum, TypeUUID, TypeJSON:
		return true
	}
	return false
}

// Temporal reports if the type belongs to the date and time family.
func (t Type) Temporal() bool {
	return t >= TypeDate && t <= TypeTimestamp
}
