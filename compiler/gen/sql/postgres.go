package sql

import (
	"slices"
	"strings"

	"ariga.io/atlas/sql/postgres"
	"github.com/lib/pq"

	"github.com/syssam/ddlgen/compiler/gen"
	"github.com/syssam/ddlgen/dialect"
	dsql "github.com/syssam/ddlgen/dialect/sql"
	"github.com/syssam/ddlgen/schema"
	"github.com/syssam/ddlgen/schema/field"
)

// Postgres is the PostgreSQL dialect.
type Postgres struct {
	gen.BaseTranslator
}

var _ gen.Dialect = Postgres{}

func (Postgres) Name() string               { return dialect.Postgres }
func (Postgres) Sequence() string           { return postgres.TypeSerial }
func (Postgres) LongSequence() string       { return postgres.TypeBigSerial }
func (Postgres) NativeBoolean() string      { return postgres.TypeBoolean }
func (Postgres) Binary() string             { return postgres.TypeBytea }
func (Postgres) UUID(*schema.Column) string { return postgres.TypeUUID }
func (Postgres) JSON(*schema.Column) string { return postgres.TypeJSONB }
func (Postgres) UUIDDefault() string        { return "generate_uuid()" }

// QuoteLiteral quotes s, switching to an escape string when s holds a
// backslash. pq pads escape strings with a leading space, which is dropped.
func (Postgres) QuoteLiteral(s string) string {
	return strings.TrimLeft(pq.QuoteLiteral(s), " ")
}

// Text is citext for case-insensitive columns.
func (Postgres) Text(c *schema.Column) string {
	if c.IgnoreCase {
		return "citext"
	}
	return postgres.TypeText
}

// Varchar has no length bound: PostgreSQL stores both as text.
func (p Postgres) Varchar(c *schema.Column) string {
	return p.Text(c)
}

// arrayElements are the element types an array column may hold.
var arrayElements = []field.Type{
	field.TypeByte, field.TypeShort, field.TypeInt, field.TypeLong,
	field.TypeDecimal, field.TypeChar, field.TypeVarchar, field.TypeText,
}

// Array appends "[]" to the element type.
func (Postgres) Array(c *schema.Column, element func() (string, error)) (string, error) {
	if !slices.Contains(arrayElements, c.ElementType) {
		return "", gen.NewUnsupportedError(dialect.Postgres, "array of "+c.ElementType.String(), "column "+c.Name)
	}
	typ, err := element()
	if err != nil {
		return "", err
	}
	return typ + "[]", nil
}

// Header writes the generate_uuid function, a UUID v7 generator, and the
// extensions the generated tables rely on.
func (Postgres) Header(w *dsql.Writer, s *gen.Settings) error {
	w.Println("create or replace function generate_uuid() returns uuid language plpgsql parallel safe as $$")
	w.Println("declare")
	w.Println("   -- The current UNIX timestamp in milliseconds")
	w.Println("   unix_time_ms CONSTANT bytea NOT NULL DEFAULT substring(int8send((extract(epoch FROM clock_timestamp()) * 1000)::bigint) from 3);")
	w.Println("")
	w.Println("   -- The buffer used to create the UUID, starting with the UNIX timestamp and followed by random bytes")
	w.Println("   buffer bytea not null default unix_time_ms || gen_random_bytes(10);")
	w.Println("begin")
	w.Println("   -- Set most significant 4 bits of 7th byte to 7 (for UUID v7), keeping the last 4 bits unchanged")
	w.Println("   buffer = set_byte(buffer, 6, (b'0111' || get_byte(buffer, 6)::bit(4))::bit(8)::int);")
	w.Println("")
	w.Println("   -- Set most significant 2 bits of 9th byte to 2 (the UUID variant specified in RFC 4122), keeping the last 6 bits unchanged")
	w.Println("   buffer = set_byte(buffer, 8, (b'10' || get_byte(buffer, 8)::bit(6))::bit(8)::int);")
	w.Println("")
	w.Println("   return encode(buffer, 'hex');")
	w.Println("end")
	w.EndStatement("$$", s.Separator)
	w.Newline()

	w.Println("do $createextensions$")
	w.Println("begin")
	w.Println("   if (select usesuper from pg_user where usename = CURRENT_USER) then")
	w.Println(`      create extension if not exists "uuid-ossp";`)
	w.Println(`      create extension if not exists "citext";`)
	w.Println(`      create extension if not exists "btree_gist";`)
	w.Println("   else")
	w.Println("      raise notice 'User % is not a superuser, could not create uuid-ossp or citext extensions.', current_user;")
	w.Println("   end if;")
	w.Println("end;")
	w.EndStatement("$createextensions$", s.Separator)
	w.Newline()
	return w.Err()
}
