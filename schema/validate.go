package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/syssam/ddlgen/schema/field"
)

// ValidationError is a single modeling problem.
type ValidationError struct {
	Schema  string
	Table   string
	Column  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidationResult holds every problem found by Validate.
type ValidationResult struct {
	Errors   []*ValidationError
	Warnings []*ValidationError
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Err returns the errors joined, or nil. Warnings are not included.
func (r *ValidationResult) Err() error {
	if !r.HasErrors() {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// String returns a human-readable summary of the validation result.
func (r *ValidationResult) String() string {
	var sb strings.Builder
	if len(r.Errors) > 0 {
		sb.WriteString("Errors:\n")
		for _, e := range r.Errors {
			sb.WriteString("  - ")
			sb.WriteString(e.Error())
			sb.WriteString("\n")
		}
	}
	if len(r.Warnings) > 0 {
		sb.WriteString("Warnings:\n")
		for _, w := range r.Warnings {
			sb.WriteString("  - ")
			sb.WriteString(w.Error())
			sb.WriteString("\n")
		}
	}
	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}
	return sb.String()
}

func (r *ValidationResult) merge(o *ValidationResult) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// enumResolver looks up an enum type referenced from a schema.
type enumResolver func(schemaName, name string) (*EnumType, error)

// Validate checks the schema on its own. Enum references resolve against
// the schema's enum types only.
func (s *Schema) Validate() *ValidationResult {
	return s.validate(func(_, name string) (*EnumType, error) {
		return s.EnumType(name)
	})
}

// Validate checks every schema of the model. Enum references resolve
// against the owning schema, then the default schema.
func (m *DatabaseModel) Validate() *ValidationResult {
	res := &ValidationResult{}
	for _, s := range m.schemas {
		res.merge(s.validate(m.EnumType))
	}
	return res
}

func (s *Schema) validate(resolve enumResolver) *ValidationResult {
	v := &validator{res: &ValidationResult{}, schema: s.Name}
	for _, t := range s.tables {
		v.table(t, resolve)
	}
	return v.res
}

type validator struct {
	res    *ValidationResult
	schema string
}

func (v *validator) errorf(t *Table, column, format string, args ...any) {
	v.res.Errors = append(v.res.Errors, v.issue(t, column, format, args...))
}

func (v *validator) warnf(t *Table, column, format string, args ...any) {
	v.res.Warnings = append(v.res.Warnings, v.issue(t, column, format, args...))
}

func (v *validator) issue(t *Table, column, format string, args ...any) *ValidationError {
	loc := t.FullyQualifiedName()
	if column != "" {
		loc += "." + column
	}
	return &ValidationError{
		Schema:  v.schema,
		Table:   t.Name,
		Column:  column,
		Message: loc + ": " + fmt.Sprintf(format, args...),
	}
}

func (v *validator) table(t *Table, resolve enumResolver) {
	if t.PrimaryKey() == nil {
		v.warnf(t, "", "table has no primary key")
	}
	primaries := 0
	for _, k := range append(append([]*Key(nil), t.Keys...), t.Indexes...) {
		if k.Type == KeyPrimary {
			primaries++
		}
		for _, c := range k.Columns {
			if !t.HasColumn(c) {
				v.errorf(t, c, "%s key column does not exist", k.Type)
			}
		}
	}
	if primaries > 1 {
		v.errorf(t, "", "table declares %d primary keys", primaries)
	}
	for _, c := range t.Columns {
		switch {
		case c.EnumType != "":
			e, err := resolve(t.SchemaName, c.EnumType)
			if err != nil {
				v.errorf(t, c.Name, "enum type %q is not defined", c.EnumType)
			} else if len(e.Values) == 0 {
				v.errorf(t, c.Name, "enum type %q has no values", c.EnumType)
			}
		case c.Type == field.TypeEnum:
			v.errorf(t, c.Name, "enum column has no enum type")
		case c.Type == field.TypeArray && !c.ElementType.Valid():
			v.errorf(t, c.Name, "array column has no element type")
		}
	}
	for _, r := range t.Relations {
		col, err := t.Column(r.FromColumn)
		if err != nil {
			v.errorf(t, r.FromColumn, "relation to %s.%s leaves from a column that does not exist", r.ToTable, r.ToColumn)
			continue
		}
		if r.Type == RelationSetNull && col.Required {
			v.res.Errors = append(v.res.Errors, &ValidationError{
				Schema: v.schema,
				Table:  t.Name,
				Column: col.Name,
				Message: fmt.Sprintf("ERROR: %s.%s is required. The %s.%s relation specifies set null, which is not allowed",
					t.Name, r.FromColumn, r.ToTable, r.ToColumn),
			})
		}
	}
}
