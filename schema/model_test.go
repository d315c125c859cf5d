package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/ddlgen"
	"github.com/syssam/ddlgen/schema"
)

func TestDatabaseModel_Defaults(t *testing.T) {
	m := schema.NewDatabaseModel()
	assert.Equal(t, schema.BooleanNative, m.BooleanMode)
	assert.Equal(t, schema.ForeignKeyRelations, m.ForeignKeyMode)
	assert.True(t, m.Version.IsZero())
	assert.Nil(t, m.DefaultSchema())
}

func TestDatabaseModel_Lookups(t *testing.T) {
	root := schema.NewSchema("")
	require.NoError(t, root.AddEnumType(schema.NewEnumType("Status", schema.NewEnumValue("Active", "A"))))
	root.MustAddTable(usersTable())

	billing := schema.NewSchema("billing")
	require.NoError(t, billing.AddEnumType(schema.NewEnumType("Currency", schema.NewEnumValue("Euro", "EUR"))))
	billing.MustAddTable(schema.NewTable("invoice").MustBuild())

	m := schema.NewDatabaseModel().MustAddSchema(root, billing)
	assert.Len(t, m.Schemas(), 2)
	assert.Same(t, root, m.DefaultSchema())
	assert.Len(t, m.Tables(), 2)

	t.Run("duplicate schema", func(t *testing.T) {
		assert.True(t, ddlgen.IsDuplicate(m.AddSchema(schema.NewSchema("BILLING"))))
	})

	t.Run("Schema", func(t *testing.T) {
		s, err := m.Schema("Billing")
		require.NoError(t, err)
		assert.Same(t, billing, s)

		_, err = m.Schema("audit")
		assert.True(t, ddlgen.IsNotFound(err))
	})

	t.Run("Table", func(t *testing.T) {
		tbl, err := m.Table("billing", "INVOICE")
		require.NoError(t, err)
		assert.Equal(t, "billing.invoice", tbl.FullyQualifiedName())

		_, err = m.Table("billing", "users")
		assert.True(t, ddlgen.IsNotFound(err))
		_, err = m.Table("audit", "users")
		assert.True(t, ddlgen.IsNotFound(err))
	})

	t.Run("EnumType", func(t *testing.T) {
		e, err := m.EnumType("billing", "currency")
		require.NoError(t, err)
		assert.Equal(t, "Currency", e.Name)

		// falls back to the default schema
		e, err = m.EnumType("billing", "Status")
		require.NoError(t, err)
		assert.Equal(t, "Status", e.Name)

		_, err = m.EnumType("", "Currency")
		assert.True(t, ddlgen.IsNotFound(err))
	})
}
