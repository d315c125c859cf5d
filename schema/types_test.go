package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/ddlgen/schema"
)

func TestParseBooleanMode(t *testing.T) {
	for _, mode := range []schema.BooleanMode{schema.BooleanNative, schema.BooleanYesNo, schema.BooleanYN} {
		got, err := schema.ParseBooleanMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}
	got, err := schema.ParseBooleanMode(" YesNo ")
	require.NoError(t, err)
	assert.Equal(t, schema.BooleanYesNo, got)

	_, err = schema.ParseBooleanMode("bit")
	assert.ErrorContains(t, err, `"bit"`)
}

func TestBooleanMode_Literals(t *testing.T) {
	tests := []struct {
		mode        schema.BooleanMode
		true, false string
	}{
		{schema.BooleanNative, "true", "false"},
		{schema.BooleanYesNo, "'Yes'", "'No'"},
		{schema.BooleanYN, "'Y'", "'N'"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			tr, fa := tt.mode.Literals()
			assert.Equal(t, tt.true, tr)
			assert.Equal(t, tt.false, fa)
		})
	}
}

func TestParseForeignKeyMode(t *testing.T) {
	for _, mode := range []schema.ForeignKeyMode{schema.ForeignKeyRelations, schema.ForeignKeyNone, schema.ForeignKeyTriggers} {
		got, err := schema.ParseForeignKeyMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}
	_, err := schema.ParseForeignKeyMode("constraints")
	assert.Error(t, err)
}

func TestParseRelationType(t *testing.T) {
	tests := map[string]schema.RelationType{
		"cascade":   schema.RelationCascade,
		"Enforce":   schema.RelationEnforce,
		"SETNULL":   schema.RelationSetNull,
		"doNothing": schema.RelationDoNothing,
	}
	for in, want := range tests {
		got, err := schema.ParseRelationType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := schema.ParseRelationType("restrict")
	assert.Error(t, err)
}

func TestParseOtherSQLOrder(t *testing.T) {
	got, err := schema.ParseOtherSQLOrder("Bottom")
	require.NoError(t, err)
	assert.Equal(t, schema.OrderBottom, got)
	_, err = schema.ParseOtherSQLOrder("middle")
	assert.Error(t, err)
}
