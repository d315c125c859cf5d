package sql

import (
	"ariga.io/atlas/sql/mysql"

	"github.com/syssam/ddlgen/compiler/gen"
	"github.com/syssam/ddlgen/dialect"
	"github.com/syssam/ddlgen/schema"
)

// MySQL is the MySQL dialect.
type MySQL struct {
	gen.BaseTranslator
}

var _ gen.Dialect = MySQL{}

func (MySQL) Name() string               { return dialect.MySQL }
func (MySQL) Sequence() string           { return "integer auto_increment" }
func (MySQL) LongSequence() string       { return "bigint auto_increment" }
func (MySQL) NativeBoolean() string      { return mysql.TypeBoolean }
func (MySQL) Text(*schema.Column) string { return mysql.TypeMediumText }
func (MySQL) Binary() string             { return mysql.TypeMediumBlob }
func (MySQL) UUID(*schema.Column) string { return "char(36)" }
func (MySQL) JSON(*schema.Column) string { return mysql.TypeMediumText }
func (MySQL) UUIDDefault() string        { return "(uuid())" }

// GeneratedColumn uses the MySQL spelling, which omits "generated always".
func (MySQL) GeneratedColumn(typ, expr string) string {
	return typ + " as (" + expr + ") stored"
}
