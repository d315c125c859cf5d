package sql_test

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/ddlgen/compiler/gen"
	"github.com/syssam/ddlgen/compiler/gen/sql"
	"github.com/syssam/ddlgen/dialect"
	"github.com/syssam/ddlgen/schema"
	"github.com/syssam/ddlgen/schema/field"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// typeModel declares one column per abstract type, named after the type.
func typeModel(t *testing.T) (*schema.DatabaseModel, *schema.Table) {
	t.Helper()
	sc := schema.NewSchema("")
	require.NoError(t, sc.AddEnumType(schema.NewEnumType("Size",
		schema.NewEnumValue("Small", "S"),
		schema.NewEnumValue("Medium", "M"))))
	tbl := schema.NewTable("all_types").
		Columns(
			schema.NewColumn("sequence", field.TypeSequence),
			schema.NewColumn("longsequence", field.TypeLongSequence),
			schema.NewColumn("byte", field.TypeByte),
			schema.NewColumn("short", field.TypeShort),
			schema.NewColumn("int", field.TypeInt),
			schema.NewColumn("long", field.TypeLong),
			schema.NewColumn("float", field.TypeFloat),
			schema.NewColumn("double", field.TypeDouble),
			schema.NewColumn("decimal", field.TypeDecimal).Length(10).Scale(2),
			schema.NewColumn("boolean", field.TypeBoolean),
			schema.NewColumn("date", field.TypeDate),
			schema.NewColumn("datetime", field.TypeDateTime),
			schema.NewColumn("time", field.TypeTime),
			schema.NewColumn("timestamp", field.TypeTimestamp),
			schema.NewColumn("char", field.TypeChar).Length(2),
			schema.NewColumn("varchar", field.TypeVarchar).Length(40),
			schema.NewColumn("enum", field.TypeEnum).Enum("Size"),
			schema.NewColumn("text", field.TypeText),
			schema.NewColumn("binary", field.TypeBinary),
			schema.NewColumn("uuid", field.TypeUUID),
			schema.NewColumn("json", field.TypeJSON),
		).
		MustBuild()
	sc.MustAddTable(tbl)
	return schema.NewDatabaseModel().MustAddSchema(sc), tbl
}

func TestColumnTypes(t *testing.T) {
	want := map[string]map[string]string{
		dialect.H2: {
			"sequence": "integer auto_increment", "longsequence": "bigint auto_increment",
			"byte": "tinyint", "short": "smallint", "int": "integer", "long": "bigint",
			"float": "real", "double": "double precision", "decimal": "decimal(10,2)",
			"boolean": "boolean", "date": "date", "datetime": "timestamp", "time": "time",
			"timestamp": "timestamp", "char": "char(2)", "varchar": "varchar(40)",
			"enum": "char(1)", "text": "clob", "binary": "blob", "uuid": "uuid", "json": "json",
		},
		dialect.MySQL: {
			"sequence": "integer auto_increment", "longsequence": "bigint auto_increment",
			"byte": "tinyint", "short": "smallint", "int": "integer", "long": "bigint",
			"float": "real", "double": "double precision", "decimal": "decimal(10,2)",
			"boolean": "boolean", "date": "date", "datetime": "timestamp", "time": "time",
			"timestamp": "timestamp", "char": "char(2)", "varchar": "varchar(40)",
			"enum": "char(1)", "text": "mediumtext", "binary": "mediumblob", "uuid": "char(36)", "json": "mediumtext",
		},
		dialect.Postgres: {
			"sequence": "serial", "longsequence": "bigserial",
			"byte": "tinyint", "short": "smallint", "int": "integer", "long": "bigint",
			"float": "real", "double": "double precision", "decimal": "decimal(10,2)",
			"boolean": "boolean", "date": "date", "datetime": "timestamp", "time": "time",
			"timestamp": "timestamp", "char": "char(2)", "varchar": "text",
			"enum": "char(1)", "text": "text", "binary": "bytea", "uuid": "uuid", "json": "jsonb",
		},
		dialect.SQLite: {
			"sequence": "integer auto_increment", "longsequence": "integer auto_increment",
			"byte": "tinyint", "short": "smallint", "int": "integer", "long": "bigint",
			"float": "real", "double": "double precision", "decimal": "decimal(10,2)",
			"boolean": "boolean", "date": "text", "datetime": "text", "time": "text",
			"timestamp": "text", "char": "char(2)", "varchar": "varchar(40)",
			"enum": "char(1)", "text": "text", "binary": "blob", "uuid": "text", "json": "text",
		},
		dialect.SQLServer: {
			"sequence": "int identity", "longsequence": "bigint identity",
			"byte": "tinyint", "short": "smallint", "int": "integer", "long": "bigint",
			"float": "real", "double": "float", "decimal": "decimal(10,2)",
			"boolean": "bit", "date": "date", "datetime": "datetime2", "time": "time",
			"timestamp": "datetime2", "char": "char(2)", "varchar": "varchar(40)",
			"enum": "char(1)", "text": "varchar(max)", "binary": "varbinary(max)", "uuid": "uniqueidentifier", "json": "nvarchar(max)",
		},
	}
	m, tbl := typeModel(t)
	for _, d := range sql.Dialects() {
		t.Run(d.Name(), func(t *testing.T) {
			cfg, err := gen.NewConfig(gen.WithDialect(d))
			require.NoError(t, err)
			s, err := gen.NewSettings(m, cfg)
			require.NoError(t, err)
			for _, c := range tbl.Columns {
				got, err := gen.ColumnTypeSQL(s, tbl, c)
				require.NoError(t, err, c.Name)
				assert.Equal(t, want[d.Name()][c.Name], got, c.Name)
			}
		})
	}
}

func TestArrayColumns(t *testing.T) {
	tbl := schema.NewTable("posts").
		Columns(schema.NewColumn("tags", field.TypeArray).Element(field.TypeVarchar).Length(30)).
		MustBuild()
	m := schema.NewDatabaseModel().MustAddSchema(schema.NewSchema("").MustAddTable(tbl))

	for _, d := range sql.Dialects() {
		t.Run(d.Name(), func(t *testing.T) {
			out, err := tryGenerate(m, d.Name())
			if dialect.SupportsArrays(d.Name()) {
				require.NoError(t, err)
				assert.Contains(t, out, "   tags text[]\n")
				return
			}
			require.Error(t, err)
			assert.True(t, gen.IsUnsupportedError(err))
			assert.True(t, gen.IsGenerationError(err))
			assert.Contains(t, err.Error(), d.Name())
		})
	}

	t.Run("postgres element types", func(t *testing.T) {
		cfg, err := gen.NewConfig(gen.WithDialect(sql.Postgres{}))
		require.NoError(t, err)
		s, err := gen.NewSettings(m, cfg)
		require.NoError(t, err)

		tests := []struct {
			col  *schema.ColumnBuilder
			want string
		}{
			{schema.NewColumn("a", field.TypeArray).Element(field.TypeShort), "smallint[]"},
			{schema.NewColumn("a", field.TypeArray).Element(field.TypeLong), "bigint[]"},
			{schema.NewColumn("a", field.TypeArray).Element(field.TypeDecimal).Length(8).Scale(3), "decimal(8,3)[]"},
			{schema.NewColumn("a", field.TypeArray).Element(field.TypeChar).Length(2), "char(2)[]"},
			{schema.NewColumn("a", field.TypeArray).Element(field.TypeText).IgnoreCase(), "citext[]"},
		}
		for _, tt := range tests {
			got, err := gen.ColumnTypeSQL(s, tbl, tt.col.Build())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		}

		for _, bad := range []field.Type{field.TypeUUID, field.TypeBoolean, field.TypeArray, field.TypeJSON} {
			_, err := gen.ColumnTypeSQL(s, tbl, schema.NewColumn("a", field.TypeArray).Element(bad).Build())
			assert.True(t, gen.IsUnsupportedError(err), bad.String())
		}
	})
}

func TestBooleanModes(t *testing.T) {
	tbl := schema.NewTable("prefs").
		Columns(
			schema.NewColumn("opt_in", field.TypeBoolean).Default("true").Required(),
			schema.NewColumn("archived", field.TypeBoolean),
		).
		MustBuild()
	m := schema.NewDatabaseModel().MustAddSchema(schema.NewSchema("").MustAddTable(tbl))

	native := map[string]string{
		dialect.H2:        "   opt_in boolean default true not null,\n   archived boolean default false\n",
		dialect.MySQL:     "   opt_in boolean default true not null,\n   archived boolean default false\n",
		dialect.Postgres:  "   opt_in boolean default true not null,\n   archived boolean default false\n",
		dialect.SQLite:    "   opt_in boolean default true not null,\n   archived boolean default false\n",
		dialect.SQLServer: "   opt_in bit default 1 not null,\n   archived bit default 0\n",
	}
	for _, d := range sql.Dialects() {
		t.Run(d.Name()+"/native", func(t *testing.T) {
			out := generate(t, m, d.Name())
			assert.Contains(t, out, native[d.Name()])
			assert.NotContains(t, out, "check(")
		})
		t.Run(d.Name()+"/yesno", func(t *testing.T) {
			out := generate(t, m, d.Name(), gen.WithBooleanMode(schema.BooleanYesNo))
			assert.Contains(t, out, "   opt_in varchar(3) default 'Yes' not null,\n")
			assert.Contains(t, out, "   archived varchar(3) default 'No',\n")
			assert.Contains(t, out, "constraint "+gen.CheckConstraintName("prefs", "opt_in")+" check(opt_in in ('Yes','No')),\n")
			assert.Contains(t, out, "constraint "+gen.CheckConstraintName("prefs", "archived")+" check(archived in ('Yes','No'))\n")
		})
		t.Run(d.Name()+"/yn", func(t *testing.T) {
			out := generate(t, m, d.Name(), gen.WithBooleanMode(schema.BooleanYN))
			assert.Contains(t, out, "   opt_in char(1) default 'Y' not null,\n")
			assert.Contains(t, out, "check(archived in ('Y','N'))")
		})
	}
}

func TestGeneratedColumns(t *testing.T) {
	tbl := schema.NewTable("lines").
		Columns(
			schema.NewColumn("qty", field.TypeInt).Required(),
			schema.NewColumn("price", field.TypeDecimal).Length(10).Scale(2).Required(),
			schema.NewColumn("total", field.TypeDecimal).Length(12).Scale(2).Generated("qty * price"),
		).
		MustBuild()
	m := schema.NewDatabaseModel().MustAddSchema(schema.NewSchema("").MustAddTable(tbl))

	want := map[string]string{
		dialect.H2:        "   total decimal(12,2) generated always as (qty * price)\n",
		dialect.MySQL:     "   total decimal(12,2) as (qty * price) stored\n",
		dialect.Postgres:  "   total decimal(12,2) generated always as (qty * price) stored\n",
		dialect.SQLite:    "   total decimal(12,2) generated always as (qty * price) stored\n",
		dialect.SQLServer: "   total as (qty * price) persisted\n",
	}
	for _, d := range sql.Dialects() {
		t.Run(d.Name(), func(t *testing.T) {
			assert.Contains(t, generate(t, m, d.Name()), want[d.Name()])
		})
	}
}

func TestUUIDDefaults(t *testing.T) {
	tbl := schema.NewTable("tokens").
		Columns(
			schema.NewColumn("id", field.TypeUUID).Required(),
			schema.NewColumn("alt", field.TypeUUID).Default("generate_uuid()"),
		).
		PrimaryKey("id").
		MustBuild()
	m := schema.NewDatabaseModel().MustAddSchema(schema.NewSchema("").MustAddTable(tbl))

	want := map[string]string{
		dialect.H2:        "random_uuid()",
		dialect.MySQL:     "(uuid())",
		dialect.Postgres:  "generate_uuid()",
		dialect.SQLite:    sql.SQLite{}.UUIDDefault(),
		dialect.SQLServer: "newid()",
	}
	assert.True(t, strings.HasPrefix(want[dialect.SQLite], "(") && strings.HasSuffix(want[dialect.SQLite], ")"),
		"sqlite only takes a parenthesized expression as default")
	for _, d := range sql.Dialects() {
		t.Run(d.Name(), func(t *testing.T) {
			out := generate(t, m, d.Name())
			assert.Contains(t, out, " default "+want[d.Name()]+" not null,\n")
			assert.Contains(t, out, "   alt "+d.UUID(nil)+" default "+want[d.Name()]+",\n")
		})
	}
}
