package schema

import (
	"cmp"
	"slices"

	"golang.org/x/text/cases"

	"github.com/syssam/ddlgen"
)

// fold returns the case-insensitive lookup key of a name.
func fold(name string) string {
	return cases.Fold().String(name)
}

// Schema is a named namespace of tables and related objects. The default
// schema has an empty name.
type Schema struct {
	Name       string
	Views      []*View
	Functions  []*Function
	Procedures []*Procedure
	OtherSQL   []*OtherSQL

	tables    []*Table
	index     map[string]int
	enums     []*EnumType
	enumIndex map[string]int
}

// NewSchema returns an empty schema.
func NewSchema(name string) *Schema {
	return &Schema{
		Name:      name,
		index:     make(map[string]int),
		enumIndex: make(map[string]int),
	}
}

// AddTable appends t and takes ownership of it. Table names are unique
// within a schema, ignoring case.
func (s *Schema) AddTable(t *Table) error {
	key := fold(t.Name)
	if _, ok := s.index[key]; ok {
		return ddlgen.NewDuplicateError(ddlgen.KindTable, s.Name, t.Name)
	}
	t.SchemaName = s.Name
	for _, c := range t.Columns {
		c.SchemaName = s.Name
	}
	s.index[key] = len(s.tables)
	s.tables = append(s.tables, t)
	return nil
}

// MustAddTable is like AddTable but panics on error.
func (s *Schema) MustAddTable(tables ...*Table) *Schema {
	for _, t := range tables {
		if err := s.AddTable(t); err != nil {
			panic(err)
		}
	}
	return s
}

// Tables returns the tables in their current order.
func (s *Schema) Tables() []*Table {
	return slices.Clone(s.tables)
}

// Table returns the table with the given name, ignoring case.
func (s *Schema) Table(name string) (*Table, error) {
	if i, ok := s.index[fold(name)]; ok {
		return s.tables[i], nil
	}
	return nil, ddlgen.NewTableNotFoundError(s.Name, name)
}

// HasTable reports whether the schema holds the table.
func (s *Schema) HasTable(name string) bool {
	_, ok := s.index[fold(name)]
	return ok
}

// SortTablesByName orders the tables by name. The sort is stable and the
// lookup index is rebuilt.
func (s *Schema) SortTablesByName() {
	slices.SortStableFunc(s.tables, func(a, b *Table) int {
		return cmp.Compare(a.Name, b.Name)
	})
	clear(s.index)
	for i, t := range s.tables {
		s.index[fold(t.Name)] = i
	}
}

// AddEnumType registers an enum type.
func (s *Schema) AddEnumType(e *EnumType) error {
	key := fold(e.Name)
	if _, ok := s.enumIndex[key]; ok {
		return ddlgen.NewDuplicateError(ddlgen.KindEnumType, s.Name, e.Name)
	}
	s.enumIndex[key] = len(s.enums)
	s.enums = append(s.enums, e)
	return nil
}

// EnumTypes returns the enum types in declaration order.
func (s *Schema) EnumTypes() []*EnumType {
	return slices.Clone(s.enums)
}

// EnumType returns the enum type with the given name, ignoring case.
func (s *Schema) EnumType(name string) (*EnumType, error) {
	if i, ok := s.enumIndex[fold(name)]; ok {
		return s.enums[i], nil
	}
	return nil, ddlgen.NewEnumTypeNotFoundError(s.Name, name)
}

// AddView appends a view.
func (s *Schema) AddView(v *View) {
	v.SchemaName = s.Name
	s.Views = append(s.Views, v)
}

// AddFunction appends a function body.
func (s *Schema) AddFunction(f *Function) {
	f.SchemaName = s.Name
	s.Functions = append(s.Functions, f)
}

// AddProcedure appends a procedure body.
func (s *Schema) AddProcedure(p *Procedure) {
	p.SchemaName = s.Name
	s.Procedures = append(s.Procedures, p)
}

// AddOtherSQL appends a free-form fragment.
func (s *Schema) AddOtherSQL(o *OtherSQL) {
	s.OtherSQL = append(s.OtherSQL, o)
}

// ViewsFor returns the views emitted for the dialect.
func (s *Schema) ViewsFor(dialect string) []*View {
	return filter(s.Views, func(v *View) bool { return v.AppliesTo(dialect) })
}

// FunctionsFor returns the functions emitted for the dialect.
func (s *Schema) FunctionsFor(dialect string) []*Function {
	return filter(s.Functions, func(f *Function) bool { return f.AppliesTo(dialect) })
}

// ProceduresFor returns the procedures emitted for the dialect.
func (s *Schema) ProceduresFor(dialect string) []*Procedure {
	return filter(s.Procedures, func(p *Procedure) bool { return p.AppliesTo(dialect) })
}

// OtherSQLFor returns the fragments emitted for the dialect at the given
// placement.
func (s *Schema) OtherSQLFor(dialect string, order OtherSQLOrder) []*OtherSQL {
	return filter(s.OtherSQL, func(o *OtherSQL) bool { return o.Order == order && o.AppliesTo(dialect) })
}

func filter[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
