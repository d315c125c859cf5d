package sql

import (
	"github.com/syssam/ddlgen/compiler/gen"
	"github.com/syssam/ddlgen/dialect"
	"github.com/syssam/ddlgen/schema"
)

// SQLite is the SQLite dialect. Dates and times are stored as ISO-8601
// text and foreign keys are declared inline, since SQLite cannot add a
// constraint to an existing table.
type SQLite struct {
	gen.BaseTranslator
}

var _ gen.Dialect = SQLite{}

// sqliteUUIDv4 builds a random version 4 UUID in its text form. SQLite
// has no UUID function, and a default made of function calls has to be
// parenthesized.
const sqliteUUIDv4 = "(lower(hex(randomblob(4))) || '-' || lower(hex(randomblob(2))) || '-4' || " +
	"substr(lower(hex(randomblob(2))), 2) || '-' || substr('89ab', 1 + (random() & 3), 1) || " +
	"substr(lower(hex(randomblob(2))), 2) || '-' || lower(hex(randomblob(6))))"

func (SQLite) Name() string               { return dialect.SQLite }
func (SQLite) Sequence() string           { return "integer auto_increment" }
func (SQLite) LongSequence() string       { return "integer auto_increment" }
func (SQLite) NativeBoolean() string      { return "boolean" }
func (SQLite) Date() string               { return "text" }
func (SQLite) DateTime() string           { return "text" }
func (SQLite) Time() string               { return "text" }
func (SQLite) Text(*schema.Column) string { return "text" }
func (SQLite) Binary() string             { return "blob" }
func (SQLite) UUID(*schema.Column) string { return "text" }
func (SQLite) JSON(*schema.Column) string { return "text" }
func (SQLite) UUIDDefault() string        { return sqliteUUIDv4 }
func (SQLite) InlineForeignKeys() bool    { return true }
