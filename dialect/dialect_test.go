package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/ddlgen/dialect"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"h2", dialect.H2},
		{"H2", dialect.H2},
		{"hsql", dialect.H2},
		{"MySQL", dialect.MySQL},
		{"postgres", dialect.Postgres},
		{"PostgreSQL", dialect.Postgres},
		{"pgsql", dialect.Postgres},
		{" sqlite ", dialect.SQLite},
		{"sqlserver", dialect.SQLServer},
		{"mssql", dialect.SQLServer},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := dialect.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := dialect.Parse("oracle")
	require.ErrorIs(t, err, dialect.ErrUnknownDialect)
	assert.Contains(t, err.Error(), `"oracle"`)
}

func TestFixedProperties(t *testing.T) {
	tests := []struct {
		name       string
		separator  string
		maxLen     int
		arrays     bool
		procedures bool
	}{
		{dialect.H2, ";", 64, false, true},
		{dialect.MySQL, ";", 64, false, true},
		{dialect.Postgres, ";", 63, true, true},
		{dialect.SQLite, ";", 128, false, false},
		{dialect.SQLServer, "\nGO", 128, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.separator, dialect.Separator(tt.name))
			assert.Equal(t, tt.maxLen, dialect.MaxIdentifierLength(tt.name))
			assert.Equal(t, tt.arrays, dialect.SupportsArrays(tt.name))
			assert.Equal(t, tt.procedures, dialect.SupportsProcedures(tt.name))
		})
	}
	assert.Len(t, dialect.Names(), 5)
}
