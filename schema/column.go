package schema

import (
	"strconv"
	"strings"

	"github.com/syssam/ddlgen/schema/field"
)

// Column is a table column.
type Column struct {
	// SchemaName is the schema owning the column's table. It is used to
	// resolve EnumType references and is set when the table is added to a
	// schema.
	SchemaName string
	Name       string
	Type       field.Type
	Length     int
	Scale      int
	Required   bool
	// Check is an author-supplied check body, e.g. "check(qty > 0)".
	Check string
	// Default is the default-value expression, empty when absent.
	Default string
	// Generated is the expression of a computed column.
	Generated   string
	Min         *float64
	Max         *float64
	EnumType    string
	ElementType field.Type
	Unicode     bool
	IgnoreCase  bool
}

// HasMinOrMax reports whether a numeric bound is declared.
func (c *Column) HasMinOrMax() bool {
	return c.Min != nil || c.Max != nil
}

// NeedsCheckConstraint reports whether the column contributes a CHECK
// clause under the given boolean mode.
func (c *Column) NeedsCheckConstraint(mode BooleanMode) bool {
	return c.Check != "" ||
		c.HasMinOrMax() ||
		c.EnumType != "" ||
		(c.Type == field.TypeBoolean && mode != BooleanNative)
}

// String returns the column name and type, e.g. "email VARCHAR(255)".
func (c *Column) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte(' ')
	b.WriteString(c.Type.String())
	if c.Length != 0 {
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(c.Length))
		if c.Scale != 0 {
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(c.Scale))
		}
		b.WriteByte(')')
	}
	return b.String()
}

// ColumnBuilder is a fluent builder for columns.
type ColumnBuilder struct {
	c *Column
}

// NewColumn returns a builder for a column with the given name and type.
func NewColumn(name string, t field.Type) *ColumnBuilder {
	return &ColumnBuilder{c: &Column{Name: name, Type: t}}
}

// Length sets the column length.
func (b *ColumnBuilder) Length(n int) *ColumnBuilder {
	b.c.Length = n
	return b
}

// Scale sets the decimal scale.
func (b *ColumnBuilder) Scale(n int) *ColumnBuilder {
	b.c.Scale = n
	return b
}

// Required marks the column NOT NULL.
func (b *ColumnBuilder) Required() *ColumnBuilder {
	b.c.Required = true
	return b
}

// Check sets an explicit check body.
func (b *ColumnBuilder) Check(sql string) *ColumnBuilder {
	b.c.Check = sql
	return b
}

// Default sets the default-value expression.
func (b *ColumnBuilder) Default(v string) *ColumnBuilder {
	b.c.Default = v
	return b
}

// Generated sets the computed-column expression.
func (b *ColumnBuilder) Generated(expr string) *ColumnBuilder {
	b.c.Generated = expr
	return b
}

// Min sets the lower numeric bound.
func (b *ColumnBuilder) Min(v float64) *ColumnBuilder {
	b.c.Min = &v
	return b
}

// Max sets the upper numeric bound.
func (b *ColumnBuilder) Max(v float64) *ColumnBuilder {
	b.c.Max = &v
	return b
}

// Enum references an enum type by name.
func (b *ColumnBuilder) Enum(typeName string) *ColumnBuilder {
	b.c.EnumType = typeName
	return b
}

// Element sets the element type of an array column.
func (b *ColumnBuilder) Element(t field.Type) *ColumnBuilder {
	b.c.ElementType = t
	return b
}

// Unicode marks the column as holding unicode text.
func (b *ColumnBuilder) Unicode() *ColumnBuilder {
	b.c.Unicode = true
	return b
}

// IgnoreCase marks text comparisons on the column as case-insensitive.
func (b *ColumnBuilder) IgnoreCase() *ColumnBuilder {
	b.c.IgnoreCase = true
	return b
}

// Build returns the column.
func (b *ColumnBuilder) Build() *Column {
	c := *b.c
	return &c
}
