package field_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/ddlgen/schema/field"
)

func TestParseType_RoundTrip(t *testing.T) {
	types := field.Types()
	require.Len(t, types, 22)
	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			for _, name := range []string{typ.String(), strings.ToLower(typ.String()), "  " + typ.String() + "\t"} {
				got, err := field.ParseType(name)
				require.NoError(t, err)
				assert.Equal(t, typ, got)
			}
		})
	}
}

func TestParseType_Invalid(t *testing.T) {
	for _, name := range []string{"", "string", "integer", "invalid"} {
		got, err := field.ParseType(name)
		require.Error(t, err)
		assert.ErrorIs(t, err, field.ErrInvalidType)
		assert.Contains(t, err.Error(), "'"+name+"'")
		assert.Equal(t, field.TypeInvalid, got)
	}
}

func TestType_Classification(t *testing.T) {
	tests := []struct {
		name     string
		typ      field.Type
		numeric  bool
		text     bool
		valid    bool
		constNam string
	}{
		{"Sequence", field.TypeSequence, true, false, true, "TypeSequence"},
		{"LongSequence", field.TypeLongSequence, true, false, true, "TypeLongSequence"},
		{"Byte", field.TypeByte, true, false, true, "TypeByte"},
		{"Decimal", field.TypeDecimal, true, false, true, "TypeDecimal"},
		{"Boolean", field.TypeBoolean, false, false, true, "TypeBoolean"},
		{"DateTime", field.TypeDateTime, false, false, true, "TypeDateTime"},
		{"Char", field.TypeChar, false, true, true, "TypeChar"},
		{"Varchar", field.TypeVarchar, false, true, true, "TypeVarchar"},
		{"Enum", field.TypeEnum, false, true, true, "TypeEnum"},
		{"UUID", field.TypeUUID, false, true, true, "TypeUUID"},
		{"JSON", field.TypeJSON, false, true, true, "TypeJSON"},
		{"Binary", field.TypeBinary, false, false, true, "TypeBinary"},
		{"Array", field.TypeArray, false, false, true, "TypeArray"},
		{"Invalid", field.TypeInvalid, false, false, false, "invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.numeric, tt.typ.Numeric(), "Numeric() mismatch")
			assert.Equal(t, tt.text, tt.typ.Text(), "Text() mismatch")
			assert.Equal(t, tt.valid, tt.typ.Valid(), "Valid() mismatch")
			assert.Equal(t, tt.constNam, tt.typ.ConstName(), "ConstName() mismatch")
		})
	}
}

func TestType_Predicates(t *testing.T) {
	assert.True(t, field.TypeSequence.Sequence())
	assert.True(t, field.TypeLongSequence.Sequence())
	assert.False(t, field.TypeLong.Sequence())
	for _, typ := range []field.Type{field.TypeDate, field.TypeDateTime, field.TypeTime, field.TypeTimestamp} {
		assert.True(t, typ.Temporal(), typ.String())
	}
	assert.False(t, field.TypeChar.Temporal())
	assert.Equal(t, "invalid", field.Type(200).String())
}
