package sql

import (
	"github.com/syssam/ddlgen/compiler/gen"
	"github.com/syssam/ddlgen/dialect"
	"github.com/syssam/ddlgen/schema"
)

// H2 is the H2 dialect.
type H2 struct {
	gen.BaseTranslator
}

var _ gen.Dialect = H2{}

func (H2) Name() string               { return dialect.H2 }
func (H2) Sequence() string           { return "integer auto_increment" }
func (H2) LongSequence() string       { return "bigint auto_increment" }
func (H2) NativeBoolean() string      { return "boolean" }
func (H2) Text(*schema.Column) string { return "clob" }
func (H2) Binary() string             { return "blob" }
func (H2) UUID(*schema.Column) string { return "uuid" }
func (H2) JSON(*schema.Column) string { return "json" }
func (H2) UUIDDefault() string        { return "random_uuid()" }

// GeneratedColumn leaves out "stored": H2 computes on read.
func (H2) GeneratedColumn(typ, expr string) string {
	return typ + " generated always as (" + expr + ")"
}
