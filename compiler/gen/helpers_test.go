package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/ddlgen/dialect"
	"github.com/syssam/ddlgen/dialect/sql"
	"github.com/syssam/ddlgen/schema"
)

// baseDialect is the baseline with the hooks BaseTranslator leaves out,
// registered under the H2 tag.
type baseDialect struct {
	BaseTranslator
}

func (baseDialect) Name() string               { return dialect.H2 }
func (baseDialect) Sequence() string           { return "integer auto_increment" }
func (baseDialect) LongSequence() string       { return "bigint auto_increment" }
func (baseDialect) NativeBoolean() string      { return "boolean" }
func (baseDialect) Text(*schema.Column) string { return "text" }
func (baseDialect) Binary() string             { return "blob" }
func (baseDialect) JSON(*schema.Column) string { return "json" }
func (baseDialect) UUIDDefault() string        { return "random_uuid()" }

// headerDialect writes a fixed preamble.
type headerDialect struct {
	baseDialect
}

func (headerDialect) Header(w *sql.Writer, s *Settings) error {
	w.EndStatement("-- header", s.Separator)
	return nil
}

func newSettings(t *testing.T, m *schema.DatabaseModel, opts ...Option) *Settings {
	t.Helper()
	cfg, err := NewConfig(append([]Option{WithDialect(baseDialect{})}, opts...)...)
	require.NoError(t, err)
	s, err := NewSettings(m, cfg)
	require.NoError(t, err)
	return s
}

// render runs fn against a fresh writer and returns the output.
func render(t *testing.T, fn func(w *sql.Writer) error) string {
	t.Helper()
	var b strings.Builder
	w := sql.NewWriter(&b)
	require.NoError(t, fn(w))
	require.NoError(t, w.Flush())
	return b.String()
}

func modelWith(tables ...*schema.Table) *schema.DatabaseModel {
	return schema.NewDatabaseModel().MustAddSchema(schema.NewSchema("").MustAddTable(tables...))
}
