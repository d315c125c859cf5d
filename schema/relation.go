package schema

import (
	"fmt"
	"strings"
)

// Relation is a foreign key from a child column to a parent column.
//
// Declared relations live on the child table. Package graph mirrors each of
// them onto the parent table as a reverse relation.
type Relation struct {
	FromTable            string
	FromColumn           string
	ToTable              string
	ToColumn             string
	Type                 RelationType
	DisableUsageChecking bool
}

// Reverse returns the parent → child mirror of r. Reverse relations exist
// for lookup only and never take part in usage checking.
func (r *Relation) Reverse() *Relation {
	return &Relation{
		FromTable:            r.ToTable,
		FromColumn:           r.ToColumn,
		ToTable:              r.FromTable,
		ToColumn:             r.FromColumn,
		Type:                 r.Type,
		DisableUsageChecking: true,
	}
}

// Target splits ToTable on its first dot. For unqualified names schema is
// empty and qualified is false.
func (r *Relation) Target() (schema, table string, qualified bool) {
	if s, t, ok := strings.Cut(r.ToTable, "."); ok {
		return s, t, true
	}
	return "", r.ToTable, false
}

// String returns "from.col -> to.col".
func (r *Relation) String() string {
	return fmt.Sprintf("%s.%s -> %s.%s", r.FromTable, r.FromColumn, r.ToTable, r.ToColumn)
}
