package schema

import (
	"slices"

	"github.com/syssam/ddlgen"
)

// DatabaseModel is the root of the representation: an ordered list of
// schemas and the document-wide settings.
type DatabaseModel struct {
	Version        Version
	BooleanMode    BooleanMode
	ForeignKeyMode ForeignKeyMode

	schemas []*Schema
	index   map[string]int
}

// NewDatabaseModel returns an empty model with native booleans and
// relation-enforced foreign keys.
func NewDatabaseModel() *DatabaseModel {
	return &DatabaseModel{index: make(map[string]int)}
}

// AddSchema appends a schema. Schema names are unique, ignoring case.
func (m *DatabaseModel) AddSchema(s *Schema) error {
	key := fold(s.Name)
	if _, ok := m.index[key]; ok {
		return ddlgen.NewDuplicateError(ddlgen.KindSchema, "", s.Name)
	}
	m.index[key] = len(m.schemas)
	m.schemas = append(m.schemas, s)
	return nil
}

// MustAddSchema is like AddSchema but panics on error.
func (m *DatabaseModel) MustAddSchema(schemas ...*Schema) *DatabaseModel {
	for _, s := range schemas {
		if err := m.AddSchema(s); err != nil {
			panic(err)
		}
	}
	return m
}

// Schemas returns the schemas in declaration order.
func (m *DatabaseModel) Schemas() []*Schema {
	return slices.Clone(m.schemas)
}

// Schema returns the schema with the given name. The empty name selects the
// default schema.
func (m *DatabaseModel) Schema(name string) (*Schema, error) {
	if i, ok := m.index[fold(name)]; ok {
		return m.schemas[i], nil
	}
	return nil, ddlgen.NewSchemaNotFoundError(name)
}

// DefaultSchema returns the unnamed schema, or nil.
func (m *DatabaseModel) DefaultSchema() *Schema {
	s, _ := m.Schema("")
	return s
}

// Table returns a table by schema and name.
func (m *DatabaseModel) Table(schemaName, name string) (*Table, error) {
	s, err := m.Schema(schemaName)
	if err != nil {
		return nil, err
	}
	return s.Table(name)
}

// Tables returns every table of every schema.
func (m *DatabaseModel) Tables() []*Table {
	var tables []*Table
	for _, s := range m.schemas {
		tables = append(tables, s.tables...)
	}
	return tables
}

// EnumType resolves an enum type referenced from schemaName. The owning
// schema is searched first, then the default schema.
func (m *DatabaseModel) EnumType(schemaName, name string) (*EnumType, error) {
	if s, err := m.Schema(schemaName); err == nil {
		if e, err := s.EnumType(name); err == nil {
			return e, nil
		}
	}
	if schemaName != "" {
		if s := m.DefaultSchema(); s != nil {
			if e, err := s.EnumType(name); err == nil {
				return e, nil
			}
		}
	}
	return nil, ddlgen.NewEnumTypeNotFoundError(schemaName, name)
}
