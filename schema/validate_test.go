package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/ddlgen/schema"
	"github.com/syssam/ddlgen/schema/field"
)

func setNullSchema(required bool) *schema.Schema {
	child := schema.NewColumn("parent_id", field.TypeInt)
	if required {
		child.Required()
	}
	return schema.NewSchema("").MustAddTable(
		schema.NewTable("parent").
			Columns(schema.NewColumn("id", field.TypeInt).Required()).
			PrimaryKey("id").
			MustBuild(),
		schema.NewTable("child").
			Columns(schema.NewColumn("id", field.TypeInt).Required(), child).
			PrimaryKey("id").
			Relation("parent_id", "parent", "id", schema.RelationSetNull).
			MustBuild(),
	)
}

func TestValidate_SetNull(t *testing.T) {
	t.Run("required column", func(t *testing.T) {
		res := setNullSchema(true).Validate()
		require.Len(t, res.Errors, 1)
		assert.Equal(t,
			"ERROR: child.parent_id is required. The parent.id relation specifies set null, which is not allowed",
			res.Errors[0].Error())
		assert.Equal(t, "child", res.Errors[0].Table)
		assert.Equal(t, "parent_id", res.Errors[0].Column)
		assert.Error(t, res.Err())
	})

	t.Run("nullable column", func(t *testing.T) {
		res := setNullSchema(false).Validate()
		assert.Empty(t, res.Errors)
		assert.NoError(t, res.Err())
		assert.Equal(t, "No issues found", res.String())
	})
}

func TestValidate_CollectsEverything(t *testing.T) {
	s := schema.NewSchema("")
	require.NoError(t, s.AddEnumType(schema.NewEnumType("Empty")))
	s.MustAddTable(
		schema.NewTable("broken").
			Columns(
				schema.NewColumn("id", field.TypeInt).Required(),
				schema.NewColumn("state", field.TypeEnum).Enum("Missing"),
				schema.NewColumn("kind", field.TypeEnum).Enum("Empty"),
				schema.NewColumn("tags", field.TypeArray),
				schema.NewColumn("raw", field.TypeEnum),
			).
			PrimaryKey("id").
			Index("nope").
			Relation("ghost", "other", "id", schema.RelationCascade).
			MustBuild(),
		schema.NewTable("heap").
			Columns(schema.NewColumn("v", field.TypeInt)).
			MustBuild(),
	)

	res := s.Validate()
	assert.True(t, res.HasErrors())
	assert.Len(t, res.Errors, 6)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "heap", res.Warnings[0].Table)

	out := res.String()
	assert.Contains(t, out, "Errors:")
	assert.Contains(t, out, "Warnings:")
	assert.Contains(t, out, `enum type "Missing" is not defined`)
	assert.Contains(t, out, `enum type "Empty" has no values`)
	assert.Contains(t, out, "array column has no element type")
	assert.Contains(t, out, "broken.nope: index key column does not exist")
	assert.Contains(t, out, "broken.ghost: relation to other.id")

	var verr *schema.ValidationError
	require.True(t, errors.As(res.Err(), &verr))
}

func TestDatabaseModel_Validate(t *testing.T) {
	root := schema.NewSchema("")
	require.NoError(t, root.AddEnumType(schema.NewEnumType("Status", schema.NewEnumValue("Active", "A"))))

	app := schema.NewSchema("app").MustAddTable(
		schema.NewTable("item").
			Columns(
				schema.NewColumn("id", field.TypeInt).Required(),
				schema.NewColumn("status", field.TypeEnum).Enum("Status"),
			).
			PrimaryKey("id").
			MustBuild(),
	)

	// the schema alone cannot see the default schema's enums
	assert.True(t, app.Validate().HasErrors())

	m := schema.NewDatabaseModel().MustAddSchema(root, app)
	res := m.Validate()
	assert.False(t, res.HasErrors(), res.String())
	assert.False(t, res.HasWarnings())
}
