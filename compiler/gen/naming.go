package gen

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name prefixes of generated constraints and indexes.
const (
	CheckPrefix      = "ck_"
	IndexPrefix      = "ix_"
	ForeignKeyPrefix = "fk_"
	PrimaryKeyPrefix = "pk_"
	UniqueKeyPrefix  = "uk_"
)

// checkNamePart is the number of characters kept from the table and the
// column name in a check constraint name.
const checkNamePart = 9

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for j := range s {
		if i == n {
			return s[:j]
		}
		i++
	}
	return s
}

// CheckConstraintName returns the name of the check constraint of a column:
// "ck_" + table[:9] + "_" + column[:9] + "_" + hash, all lower case. The
// hash is the FNV-1a 64 of "table_column" in upper case hex, so names stay
// unique and stable when the truncated parts collide.
func CheckConstraintName(table, column string) string {
	t, c := lower(table), lower(column)
	h := fnv.New64a()
	_, _ = h.Write([]byte(t + "_" + c))
	return fmt.Sprintf("%s%s_%s_%X", CheckPrefix, truncate(t, checkNamePart), truncate(c, checkNamePart), h.Sum64())
}

// boundedName returns prefix + name + ordinal, truncating name so the
// result fits in maxLen characters.
func boundedName(prefix, name string, ordinal, maxLen int) string {
	suffix := ""
	if ordinal > 0 {
		suffix = strconv.Itoa(ordinal)
	}
	full := prefix + name + suffix
	if maxLen <= 0 || utf8.RuneCountInString(full) <= maxLen {
		return full
	}
	return prefix + truncate(name, maxLen-len(prefix)-len(suffix)) + suffix
}

// IndexName returns the name of the ordinal-th index of a table.
func IndexName(table string, ordinal, maxLen int) string {
	return boundedName(IndexPrefix, table, ordinal, maxLen)
}

// ForeignKeyName returns the lower-cased name of the ordinal-th relation of
// a table.
func ForeignKeyName(table string, ordinal, maxLen int) string {
	return boundedName(ForeignKeyPrefix, lower(table), ordinal, maxLen)
}

// PrimaryKeyName returns the name of the primary key of a table.
func PrimaryKeyName(table string, maxLen int) string {
	return boundedName(PrimaryKeyPrefix, lower(table), 0, maxLen)
}

// UniqueKeyName returns the name of the ordinal-th unique key of a table.
func UniqueKeyName(table string, ordinal, maxLen int) string {
	return boundedName(UniqueKeyPrefix, lower(table), ordinal, maxLen)
}
