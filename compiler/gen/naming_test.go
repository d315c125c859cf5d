package gen

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/ddlgen/dialect"
)

func TestCheckConstraintName(t *testing.T) {
	name := CheckConstraintName("CustomerAccounts", "PreferredCurrency")
	assert.True(t, strings.HasPrefix(name, "ck_customera_preferred_"), name)
	assert.Equal(t, name, CheckConstraintName("customeraccounts", "preferredcurrency"), "case does not change the name")

	// Truncated parts collide, hashes do not.
	a := CheckConstraintName("orderlines_archive", "quantity_min")
	b := CheckConstraintName("orderlines_current", "quantity_max")
	assert.Equal(t, a[:len("ck_orderline_quantity__")], b[:len("ck_orderline_quantity__")])
	assert.NotEqual(t, a, b)

	long := strings.Repeat("x", 200)
	for _, d := range dialect.Names() {
		n := CheckConstraintName(long, long)
		assert.LessOrEqual(t, utf8.RuneCountInString(n), dialect.MaxIdentifierLength(d), d)
	}
}

func TestKeyNames(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"primary", PrimaryKeyName("Users", 64), "pk_users"},
		{"unique", UniqueKeyName("Users", 2, 64), "uk_users2"},
		{"foreign", ForeignKeyName("OrderLines", 1, 64), "fk_orderlines1"},
		{"index keeps case", IndexName("OrderLines", 3, 64), "ix_OrderLines3"},
		{"unbounded", IndexName(strings.Repeat("t", 80), 1, 0), "ix_" + strings.Repeat("t", 80) + "1"},
		{"truncated", ForeignKeyName(strings.Repeat("a", 70), 12, 63), "fk_" + strings.Repeat("a", 58) + "12"},
		{"primary truncated", PrimaryKeyName(strings.Repeat("B", 70), 63), "pk_" + strings.Repeat("b", 60)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestBoundedNameLength(t *testing.T) {
	long, short := strings.Repeat("é", 200), strings.Repeat("é", 40)
	for _, d := range dialect.Names() {
		limit := dialect.MaxIdentifierLength(d)
		require.Greater(t, utf8.RuneCountInString(long), limit)
		for _, ordinal := range []int{1, 9, 10, 123} {
			n := IndexName(long, ordinal, limit)
			assert.Equal(t, limit, utf8.RuneCountInString(n), "%s ordinal %d", d, ordinal)
			assert.True(t, utf8.ValidString(n))
			assert.True(t, strings.HasSuffix(n, strconv.Itoa(ordinal)))

			n = IndexName(short, ordinal, limit)
			assert.Equal(t, "ix_"+short+strconv.Itoa(ordinal), n, "%s ordinal %d fits", d, ordinal)
			assert.LessOrEqual(t, utf8.RuneCountInString(n), limit)
		}
	}
}
