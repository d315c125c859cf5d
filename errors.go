package ddlgen

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Standard sentinel errors for lookups in the schema model.
var (
	// ErrNotFound is returned when a schema, table, column or enum type
	// referenced by name does not exist.
	ErrNotFound = errors.New("ddlgen: not found")

	// ErrDuplicate is returned when a name is declared twice in the same scope.
	ErrDuplicate = errors.New("ddlgen: duplicate name")
)

// Kind identifies the kind of model element a lookup was searching for.
type Kind string

// Model element kinds.
const (
	KindSchema   Kind = "schema"
	KindTable    Kind = "table"
	KindColumn   Kind = "column"
	KindEnumType Kind = "enum type"
)

// NotFoundError represents a failed lookup of a named model element.
type NotFoundError struct {
	Kind   Kind
	Schema string // owning schema, empty for the default schema
	Table  string // owning table, set for column lookups
	Name   string
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	var b strings.Builder
	b.WriteString("ddlgen: ")
	b.WriteString(string(e.Kind))
	b.WriteString(" ")
	b.WriteString(e.qualified())
	b.WriteString(" not found")
	return b.String()
}

func (e *NotFoundError) qualified() string {
	parts := make([]string, 0, 3)
	if e.Schema != "" {
		parts = append(parts, e.Schema)
	}
	if e.Table != "" {
		parts = append(parts, e.Table)
	}
	parts = append(parts, e.Name)
	return fmt.Sprintf("%q", strings.Join(parts, "."))
}

// Is reports whether the target error matches NotFoundError.
// This allows errors.Is(notFoundErr, ErrNotFound) to return true.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// NewSchemaNotFoundError returns a NotFoundError for a schema.
func NewSchemaNotFoundError(name string) *NotFoundError {
	return &NotFoundError{Kind: KindSchema, Name: name}
}

// NewTableNotFoundError returns a NotFoundError for a table in the given schema.
func NewTableNotFoundError(schema, name string) *NotFoundError {
	return &NotFoundError{Kind: KindTable, Schema: schema, Name: name}
}

// NewColumnNotFoundError returns a NotFoundError for a column of a table.
func NewColumnNotFoundError(schema, table, name string) *NotFoundError {
	return &NotFoundError{Kind: KindColumn, Schema: schema, Table: table, Name: name}
}

// NewEnumTypeNotFoundError returns a NotFoundError for an enum type.
func NewEnumTypeNotFoundError(schema, name string) *NotFoundError {
	return &NotFoundError{Kind: KindEnumType, Schema: schema, Name: name}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNotFound)
}

// DuplicateError represents a name declared twice within one scope.
type DuplicateError struct {
	Kind   Kind
	Schema string
	Name   string
}

// Error returns the error string.
func (e *DuplicateError) Error() string {
	if e.Schema != "" {
		return fmt.Sprintf("ddlgen: duplicate %s %q in schema %q", e.Kind, e.Name, e.Schema)
	}
	return fmt.Sprintf("ddlgen: duplicate %s %q", e.Kind, e.Name)
}

// Is reports whether the target error matches DuplicateError.
func (e *DuplicateError) Is(err error) bool {
	return err == ErrDuplicate
}

// NewDuplicateError returns a new DuplicateError.
func NewDuplicateError(kind Kind, schema, name string) *DuplicateError {
	return &DuplicateError{Kind: kind, Schema: schema, Name: name}
}

// IsDuplicate returns true if the error is a DuplicateError.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	var e *DuplicateError
	return errors.As(err, &e) || errors.Is(err, ErrDuplicate)
}

// AggregateError holds every failure of an operation that keeps going
// past the first one, such as generating several schema files.
type AggregateError []error

func (e AggregateError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d errors:", len(e))
	for _, err := range e {
		b.WriteString("\n  - ")
		b.WriteString(strings.ReplaceAll(err.Error(), "\n", "\n    "))
	}
	return b.String()
}

// Unwrap exposes each error to errors.Is and errors.As.
func (e AggregateError) Unwrap() []error { return e }

// Collect drops nil errors and returns nil, the only error left, or an
// AggregateError of all of them.
func Collect(errs ...error) error {
	errs = slices.DeleteFunc(slices.Clone(errs), func(err error) bool { return err == nil })
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return AggregateError(errs)
}
