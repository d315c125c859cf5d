package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/syssam/ddlgen"
)

// ErrDuplicatePrimaryKey is returned when a table is given a second primary key.
var ErrDuplicatePrimaryKey = errors.New("schema: table already has a primary key")

// Table is a table definition.
type Table struct {
	SchemaName string
	Name       string
	Columns    []*Column
	// Keys holds the primary and unique keys, Indexes the plain indexes.
	Keys    []*Key
	Indexes []*Key
	// Relations are declared on the child table. ReverseRelations are
	// derived by package graph and hold one entry per child relation
	// pointing at this table.
	Relations        []*Relation
	ReverseRelations []*Relation
	Triggers         []*Trigger
	Constraints      []*Constraint
	InitialData      []*InitialData
	Aggregations     []*Aggregation
	Options          TableOption
	LockEscalation   LockEscalation
	ExportDataColumn string
}

// Column returns the column with the given name, ignoring case.
func (t *Table) Column(name string) (*Column, error) {
	for _, c := range t.Columns {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, ddlgen.NewColumnNotFoundError(t.SchemaName, t.Name, name)
}

// HasColumn reports whether the table has the column, ignoring case.
func (t *Table) HasColumn(name string) bool {
	_, err := t.Column(name)
	return err == nil
}

// AddColumn appends a column. Column names are unique within a table.
func (t *Table) AddColumn(c *Column) error {
	if t.HasColumn(c.Name) {
		return ddlgen.NewDuplicateError(ddlgen.KindColumn, t.SchemaName, t.Name+"."+c.Name)
	}
	c.SchemaName = t.SchemaName
	t.Columns = append(t.Columns, c)
	return nil
}

// AddKey adds a key or index.
func (t *Table) AddKey(k *Key) error {
	switch k.Type {
	case KeyIndex:
		t.Indexes = append(t.Indexes, k)
	case KeyPrimary:
		if t.PrimaryKey() != nil {
			return fmt.Errorf("%w: %s", ErrDuplicatePrimaryKey, t.FullyQualifiedName())
		}
		fallthrough
	default:
		t.Keys = append(t.Keys, k)
	}
	return nil
}

// AddRelation declares a relation from one of the table's columns.
func (t *Table) AddRelation(r *Relation) {
	if r.FromTable == "" {
		r.FromTable = t.Name
	}
	t.Relations = append(t.Relations, r)
}

// PrimaryKey returns the primary key, or nil.
func (t *Table) PrimaryKey() *Key {
	for _, k := range t.Keys {
		if k.Type == KeyPrimary {
			return k
		}
	}
	return nil
}

// PrimaryKeyColumns returns the primary key column names, or nil.
func (t *Table) PrimaryKeyColumns() []string {
	if pk := t.PrimaryKey(); pk != nil {
		return pk.Columns
	}
	return nil
}

// UniqueKeys returns the unique keys in declaration order.
func (t *Table) UniqueKeys() []*Key {
	var keys []*Key
	for _, k := range t.Keys {
		if k.Type == KeyUnique {
			keys = append(keys, k)
		}
	}
	return keys
}

// HasOption reports whether the option is set.
func (t *Table) HasOption(opt TableOption) bool {
	return t.Options.Has(opt)
}

// NoExport reports whether the table is excluded from data exports.
func (t *Table) NoExport() bool {
	return t.HasOption(OptionNoExport)
}

// ColumnsWithCheckConstraints returns the columns contributing a CHECK
// clause, in declaration order.
func (t *Table) ColumnsWithCheckConstraints(mode BooleanMode) []*Column {
	var cols []*Column
	for _, c := range t.Columns {
		if c.NeedsCheckConstraint(mode) {
			cols = append(cols, c)
		}
	}
	return cols
}

// ColumnRelation returns the declared relation leaving from the column, or nil.
func (t *Table) ColumnRelation(column string) *Relation {
	for _, r := range t.Relations {
		if strings.EqualFold(r.FromColumn, column) {
			return r
		}
	}
	return nil
}

// FullyQualifiedName returns "schema.table", or the bare name in the
// default schema.
func (t *Table) FullyQualifiedName() string {
	if t.SchemaName == "" {
		return t.Name
	}
	return t.SchemaName + "." + t.Name
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return fmt.Sprintf("Table(%s)", t.FullyQualifiedName())
}

// TableBuilder is a fluent builder for tables. Errors are collected and
// reported by Build.
type TableBuilder struct {
	t    *Table
	errs []error
}

// NewTable returns a builder for a table in the default schema.
func NewTable(name string) *TableBuilder {
	return &TableBuilder{t: &Table{Name: name}}
}

// Schema sets the owning schema name.
func (b *TableBuilder) Schema(name string) *TableBuilder {
	b.t.SchemaName = name
	return b
}

// Columns appends columns.
func (b *TableBuilder) Columns(cols ...*ColumnBuilder) *TableBuilder {
	for _, c := range cols {
		if err := b.t.AddColumn(c.Build()); err != nil {
			b.errs = append(b.errs, err)
		}
	}
	return b
}

// PrimaryKey sets the primary key columns.
func (b *TableBuilder) PrimaryKey(columns ...string) *TableBuilder {
	return b.Key(NewKey(KeyPrimary, columns...))
}

// Unique adds a unique key.
func (b *TableBuilder) Unique(columns ...string) *TableBuilder {
	return b.Key(NewKey(KeyUnique, columns...))
}

// Index adds a plain index.
func (b *TableBuilder) Index(columns ...string) *TableBuilder {
	return b.Key(NewKey(KeyIndex, columns...))
}

// Key adds a fully described key.
func (b *TableBuilder) Key(k *Key) *TableBuilder {
	if err := b.t.AddKey(k); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// Relation declares a relation from column to table.toColumn.
func (b *TableBuilder) Relation(column, table, toColumn string, typ RelationType) *TableBuilder {
	b.t.AddRelation(&Relation{FromColumn: column, ToTable: table, ToColumn: toColumn, Type: typ})
	return b
}

// Trigger adds trigger SQL for a dialect.
func (b *TableBuilder) Trigger(typ TriggerType, dialect, sql string) *TableBuilder {
	b.t.Triggers = append(b.t.Triggers, &Trigger{Type: typ, Dialect: dialect, SQL: sql})
	return b
}

// Constraint adds a named table-level check.
func (b *TableBuilder) Constraint(name, dialect, sql string) *TableBuilder {
	b.t.Constraints = append(b.t.Constraints, &Constraint{Name: name, Dialect: dialect, SQL: sql})
	return b
}

// InitialData adds a seed statement.
func (b *TableBuilder) InitialData(dialect, sql string) *TableBuilder {
	b.t.InitialData = append(b.t.InitialData, &InitialData{Dialect: dialect, SQL: sql})
	return b
}

// Aggregation attaches an aggregation description.
func (b *TableBuilder) Aggregation(a *Aggregation) *TableBuilder {
	b.t.Aggregations = append(b.t.Aggregations, a)
	return b
}

// Options sets table flags.
func (b *TableBuilder) Options(opts ...TableOption) *TableBuilder {
	for _, o := range opts {
		b.t.Options |= o
	}
	return b
}

// ExportDataColumn sets the column used by incremental data exports.
func (b *TableBuilder) ExportDataColumn(name string) *TableBuilder {
	b.t.ExportDataColumn = name
	return b
}

// Build returns the table or the first construction error.
func (b *TableBuilder) Build() (*Table, error) {
	if b.t.Name == "" {
		return nil, errors.New("schema: table name is required")
	}
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("schema: table %s: %w", b.t.Name, errors.Join(b.errs...))
	}
	return b.t, nil
}

// MustBuild is like Build but panics on error.
func (b *TableBuilder) MustBuild() *Table {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
