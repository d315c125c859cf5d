package gen

import (
	"strings"

	"github.com/google/uuid"

	"github.com/syssam/ddlgen/schema"
	"github.com/syssam/ddlgen/schema/field"
)

// GenerateUUIDSentinel is the default value requesting a generated UUID.
const GenerateUUIDSentinel = "generate_uuid()"

// ColumnDefinitions returns the column lines of a create table statement.
func ColumnDefinitions(s *Settings, t *schema.Table) ([]string, error) {
	defs := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		def, err := ColumnSQL(s, t, c)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// ColumnSQL returns "   name type[ options]". Options are the default
// value and "not null", in that order.
func ColumnSQL(s *Settings, t *schema.Table, c *schema.Column) (string, error) {
	typ, err := ColumnTypeSQL(s, t, c)
	if err != nil {
		return "", err
	}
	var opts []string
	if c.Generated != "" {
		typ = s.Dialect.GeneratedColumn(typ, c.Generated)
	} else if def, ok := DefaultValue(s, t, c); ok {
		opts = append(opts, "default "+def)
	}
	if c.Required {
		opts = append(opts, "not null")
	}
	line := "   " + c.Name + " " + typ
	if len(opts) > 0 {
		line += " " + strings.Join(opts, " ")
	}
	return line, nil
}

// DefaultValue returns the default expression of a column, if any.
func DefaultValue(s *Settings, t *schema.Table, c *schema.Column) (string, bool) {
	switch c.Type {
	case field.TypeBoolean:
		return booleanDefault(s, c.Default)
	case field.TypeUUID:
		return uuidDefault(s, t, c)
	}
	return c.Default, c.Default != ""
}

// booleanDefault maps "true" to the true literal of the active mode and any
// other value, including none, to the false literal. "null" means no default.
func booleanDefault(s *Settings, def string) (string, bool) {
	if strings.EqualFold(def, "null") {
		return "", false
	}
	tl, fl := BooleanLiterals(s)
	if strings.EqualFold(def, "true") {
		return tl, true
	}
	return fl, true
}

// BooleanLiterals returns the true and false literals of the active
// boolean mode.
func BooleanLiterals(s *Settings) (string, string) {
	if s.BooleanMode == schema.BooleanNative {
		return s.Dialect.NativeBooleanLiterals()
	}
	return s.BooleanMode.Literals()
}

// uuidDefault generates keys for required primary key columns that do not
// reference another table, and for columns asking for it explicitly.
func uuidDefault(s *Settings, t *schema.Table, c *schema.Column) (string, bool) {
	pk := t.PrimaryKey()
	if c.Required && pk != nil && pk.Contains(c.Name) && t.ColumnRelation(c.Name) == nil {
		return s.Dialect.UUIDDefault(), true
	}
	switch {
	case strings.EqualFold(c.Default, GenerateUUIDSentinel):
		return s.Dialect.UUIDDefault(), true
	case c.Default == "":
		return "", false
	}
	if _, err := uuid.Parse(c.Default); err == nil {
		return s.Dialect.QuoteLiteral(c.Default), true
	}
	return c.Default, true
}
