package schema

import "strings"

// Key is a primary key, unique key or index of a table.
type Key struct {
	Type    KeyType
	Columns []string
	// Cluster, Compress and Include are engine hints; dialects that do not
	// understand them ignore them.
	Cluster  bool
	Compress bool
	// Unique marks an index of type KeyIndex as unique.
	Unique  bool
	Include []string
}

// NewKey returns a key of the given type over columns.
func NewKey(t KeyType, columns ...string) *Key {
	return &Key{Type: t, Columns: columns}
}

// Contains reports whether the key covers the column, ignoring case.
func (k *Key) Contains(column string) bool {
	for _, c := range k.Columns {
		if strings.EqualFold(c, column) {
			return true
		}
	}
	return false
}

// ColumnsString returns the key columns joined by ", ".
func (k *Key) ColumnsString() string {
	return strings.Join(k.Columns, ", ")
}

// IsPrimary reports whether k is a primary key.
func (k *Key) IsPrimary() bool { return k.Type == KeyPrimary }

// IsIndex reports whether k is a plain index.
func (k *Key) IsIndex() bool { return k.Type == KeyIndex }
