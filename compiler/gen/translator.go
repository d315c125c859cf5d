package gen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/ddlgen/dialect/sql"
	"github.com/syssam/ddlgen/schema"
	"github.com/syssam/ddlgen/schema/field"
)

// ColumnTypeTranslator maps abstract column types onto dialect SQL. There is
// one hook per type; ColumnTypeSQL picks the hook and handles the parts that
// depend on generation settings (boolean mode, enum resolution, array
// elements).
type ColumnTypeTranslator interface {
	Sequence() string
	LongSequence() string
	Byte() string
	Short() string
	Int() string
	Long() string
	Float() string
	Double() string
	Decimal(c *schema.Column) string
	NativeBoolean() string
	// NativeBooleanLiterals returns the true and false literals of the
	// native boolean type.
	NativeBooleanLiterals() (string, string)
	Date() string
	DateTime() string
	Time() string
	Char(c *schema.Column) string
	Varchar(c *schema.Column) string
	// Enum receives the shortest and longest code of the enum type.
	Enum(minLen, maxLen int) string
	Text(c *schema.Column) string
	Binary() string
	UUID(c *schema.Column) string
	JSON(c *schema.Column) string
	// Array returns the type of an array column. element translates the
	// element type through the same translator.
	Array(c *schema.Column, element func() (string, error)) (string, error)

	// UUIDDefault is the expression generating a new UUID.
	UUIDDefault() string
	// GeneratedColumn returns the column type followed by the computed
	// column clause for expr.
	GeneratedColumn(typ, expr string) string
	// QuoteLiteral quotes s as a string literal.
	QuoteLiteral(s string) string
}

// Dialect is a target SQL engine: a ColumnTypeTranslator plus the hooks
// that change statement shapes.
type Dialect interface {
	ColumnTypeTranslator

	// Name returns the dialect tag, one of the constants of package dialect.
	Name() string
	// Header writes the preamble of a script.
	Header(w *sql.Writer, s *Settings) error
	// IndexOptions returns the clause following the column list of a
	// create index statement, or "".
	IndexOptions(k *schema.Key) string
	// TableOptions returns the clause following the closing parenthesis of
	// a create table statement, or "".
	TableOptions(t *schema.Table) string
	// InlineForeignKeys reports whether foreign keys are declared inside
	// create table instead of with alter table.
	InlineForeignKeys() bool
}

// BaseTranslator holds the hooks shared by most dialects. Dialects embed it
// and provide the hooks it leaves out: Sequence, LongSequence, NativeBoolean,
// Text, Binary, JSON and UUIDDefault.
type BaseTranslator struct{}

func (BaseTranslator) Byte() string     { return "tinyint" }
func (BaseTranslator) Short() string    { return "smallint" }
func (BaseTranslator) Int() string      { return "integer" }
func (BaseTranslator) Long() string     { return "bigint" }
func (BaseTranslator) Float() string    { return "real" }
func (BaseTranslator) Double() string   { return "double precision" }
func (BaseTranslator) Date() string     { return "date" }
func (BaseTranslator) DateTime() string { return "timestamp" }
func (BaseTranslator) Time() string     { return "time" }

func (BaseTranslator) NativeBooleanLiterals() (string, string) { return "true", "false" }

// Decimal returns "decimal", "decimal(L)" or "decimal(L,S)".
func (BaseTranslator) Decimal(c *schema.Column) string {
	switch {
	case c.Length == 0 && c.Scale == 0:
		return "decimal"
	case c.Scale == 0:
		return "decimal(" + strconv.Itoa(c.Length) + ")"
	default:
		return "decimal(" + strconv.Itoa(c.Length) + "," + strconv.Itoa(c.Scale) + ")"
	}
}

func (BaseTranslator) Char(c *schema.Column) string {
	return "char(" + strconv.Itoa(c.Length) + ")"
}

func (BaseTranslator) Varchar(c *schema.Column) string {
	return "varchar(" + strconv.Itoa(c.Length) + ")"
}

// Enum returns a fixed width type when every code has the same length.
func (BaseTranslator) Enum(minLen, maxLen int) string {
	if minLen != maxLen {
		return "varchar(" + strconv.Itoa(maxLen) + ")"
	}
	return "char(" + strconv.Itoa(maxLen) + ")"
}

func (BaseTranslator) UUID(*schema.Column) string { return "varchar(36)" }

// Array fails; only dialects with array types override it.
func (BaseTranslator) Array(c *schema.Column, _ func() (string, error)) (string, error) {
	return "", &UnsupportedError{Feature: "array columns", Message: "column " + c.Name}
}

func (BaseTranslator) GeneratedColumn(typ, expr string) string {
	return typ + " generated always as (" + expr + ") stored"
}

// QuoteLiteral wraps s in single quotes, doubling embedded quotes.
func (BaseTranslator) QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (BaseTranslator) Header(*sql.Writer, *Settings) error { return nil }
func (BaseTranslator) IndexOptions(*schema.Key) string     { return "" }
func (BaseTranslator) TableOptions(*schema.Table) string   { return "" }
func (BaseTranslator) InlineForeignKeys() bool             { return false }

// ColumnTypeSQL returns the SQL type of a column for the dialect of s.
func ColumnTypeSQL(s *Settings, t *schema.Table, c *schema.Column) (string, error) {
	tr := s.Dialect
	switch c.Type {
	case field.TypeSequence:
		return tr.Sequence(), nil
	case field.TypeLongSequence:
		return tr.LongSequence(), nil
	case field.TypeByte:
		return tr.Byte(), nil
	case field.TypeShort:
		return tr.Short(), nil
	case field.TypeInt:
		return tr.Int(), nil
	case field.TypeLong:
		return tr.Long(), nil
	case field.TypeFloat:
		return tr.Float(), nil
	case field.TypeDouble:
		return tr.Double(), nil
	case field.TypeDecimal:
		return tr.Decimal(c), nil
	case field.TypeBoolean:
		switch s.BooleanMode {
		case schema.BooleanYesNo:
			return "varchar(3)", nil
		case schema.BooleanYN:
			return "char(1)", nil
		default:
			return tr.NativeBoolean(), nil
		}
	case field.TypeDate:
		return tr.Date(), nil
	case field.TypeDateTime, field.TypeTimestamp:
		return tr.DateTime(), nil
	case field.TypeTime:
		return tr.Time(), nil
	case field.TypeChar:
		return tr.Char(c), nil
	case field.TypeVarchar:
		return tr.Varchar(c), nil
	case field.TypeEnum:
		e, err := s.Model.EnumType(c.SchemaName, c.EnumType)
		if err != nil {
			return "", fmt.Errorf("column %s.%s: %w", t.Name, c.Name, err)
		}
		return tr.Enum(e.CodeLengths()), nil
	case field.TypeText:
		return tr.Text(c), nil
	case field.TypeBinary:
		return tr.Binary(), nil
	case field.TypeUUID:
		return tr.UUID(c), nil
	case field.TypeJSON:
		return tr.JSON(c), nil
	case field.TypeArray:
		typ, err := tr.Array(c, func() (string, error) {
			if c.ElementType == field.TypeArray || !c.ElementType.Valid() {
				return "", &UnsupportedError{Feature: "array element type " + c.ElementType.String(), Message: "column " + c.Name}
			}
			elem := *c
			elem.Type, elem.ElementType = c.ElementType, field.TypeInvalid
			return ColumnTypeSQL(s, t, &elem)
		})
		if err != nil {
			var ue *UnsupportedError
			if errors.As(err, &ue) && ue.Dialect == "" {
				ue.Dialect = tr.Name()
			}
			return "", fmt.Errorf("column %s.%s: %w", t.Name, c.Name, err)
		}
		return typ, nil
	}
	return "", fmt.Errorf("column %s.%s: unknown column type %d", t.Name, c.Name, c.Type)
}
