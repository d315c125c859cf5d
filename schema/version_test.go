package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/ddlgen/schema"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want schema.Version
		str  string
	}{
		{"1.2", schema.Version{Major: 1, Minor: 2}, "01.02"},
		{"1.2.3", schema.Version{Major: 1, Minor: 2, Patch: 3}, "01.02.03"},
		{"4.0-SNAPSHOT", schema.Version{Major: 4, Snapshot: true}, "04.00-SNAPSHOT"},
		{"4.1.2-SNAPSHOT", schema.Version{Major: 4, Minor: 1, Patch: 2, Snapshot: true}, "04.01.02-SNAPSHOT"},
		{"7", schema.Version{Major: 7}, "07.00"},
		{"x.y", schema.Version{}, "00.00"},
		{"", schema.Version{}, "00.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := schema.ParseVersion(tt.in)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.str, v.String())
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	v := schema.ParseVersion
	assert.Equal(t, 0, v("1.2").Compare(v("1.2.0")))
	assert.Equal(t, -1, v("1.2").Compare(v("1.10")))
	assert.Equal(t, 1, v("2.0").Compare(v("1.99.99")))
	assert.Equal(t, -1, v("1.2.3").Compare(v("1.2.4")))
	assert.Equal(t, 1, v("1.2-SNAPSHOT").Compare(v("1.2")))
	assert.Equal(t, -1, v("1.2").Compare(v("1.2-SNAPSHOT")))
}
