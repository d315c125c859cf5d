package sql

import (
	"strconv"
	"strings"

	"github.com/syssam/ddlgen/compiler/gen"
	"github.com/syssam/ddlgen/dialect"
	"github.com/syssam/ddlgen/schema"
)

// SQLServer is the Microsoft SQL Server dialect. Statements are separated
// by GO batches.
type SQLServer struct {
	gen.BaseTranslator
}

var _ gen.Dialect = SQLServer{}

func (SQLServer) Name() string                            { return dialect.SQLServer }
func (SQLServer) Sequence() string                        { return "int identity" }
func (SQLServer) LongSequence() string                    { return "bigint identity" }
func (SQLServer) Double() string                          { return "float" }
func (SQLServer) DateTime() string                        { return "datetime2" }
func (SQLServer) NativeBoolean() string                   { return "bit" }
func (SQLServer) NativeBooleanLiterals() (string, string) { return "1", "0" }
func (SQLServer) Binary() string                          { return "varbinary(max)" }
func (SQLServer) UUID(*schema.Column) string              { return "uniqueidentifier" }
func (SQLServer) JSON(*schema.Column) string              { return "nvarchar(max)" }
func (SQLServer) UUIDDefault() string                     { return "newid()" }

// length renders a column length, where -1 stands for max.
func length(n int) string {
	if n < 0 {
		return "max"
	}
	return strconv.Itoa(n)
}

// Char is nchar for unicode columns.
func (SQLServer) Char(c *schema.Column) string {
	if c.Unicode {
		return "nchar(" + length(c.Length) + ")"
	}
	return "char(" + length(c.Length) + ")"
}

// Varchar is nvarchar for unicode columns.
func (SQLServer) Varchar(c *schema.Column) string {
	if c.Unicode {
		return "nvarchar(" + length(c.Length) + ")"
	}
	return "varchar(" + length(c.Length) + ")"
}

func (SQLServer) Text(c *schema.Column) string {
	if c.Unicode {
		return "nvarchar(max)"
	}
	return "varchar(max)"
}

// GeneratedColumn replaces the type: computed columns take the type of
// their expression.
func (SQLServer) GeneratedColumn(_, expr string) string {
	return "as (" + expr + ") persisted"
}

// IndexOptions adds covered columns and page compression.
func (SQLServer) IndexOptions(k *schema.Key) string {
	var opts []string
	if len(k.Include) > 0 {
		opts = append(opts, "include ("+strings.Join(k.Include, ", ")+")")
	}
	if k.Compress {
		opts = append(opts, "with (data_compression = page)")
	}
	return strings.Join(opts, " ")
}

// TableOptions enables page compression on compressed tables.
func (SQLServer) TableOptions(t *schema.Table) string {
	if t.HasOption(schema.OptionCompress) {
		return " with (data_compression = page)"
	}
	return ""
}
