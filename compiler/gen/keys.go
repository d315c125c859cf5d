package gen

import (
	"fmt"
	"strings"

	"github.com/syssam/ddlgen/graph"
	"github.com/syssam/ddlgen/schema"
)

// KeyConstraints returns the primary and unique key lines of a table.
func KeyConstraints(s *Settings, t *schema.Table) []string {
	var lines []string
	if pk := t.PrimaryKey(); pk != nil {
		lines = append(lines, fmt.Sprintf("   constraint %s primary key (%s)",
			PrimaryKeyName(t.Name, s.MaxIdentifierLength), pk.ColumnsString()))
	}
	for i, k := range t.UniqueKeys() {
		lines = append(lines, fmt.Sprintf("   constraint %s unique (%s)",
			UniqueKeyName(t.Name, i+1, s.MaxIdentifierLength), k.ColumnsString()))
	}
	return lines
}

// OnDeleteAction returns the on delete action of a relation.
func OnDeleteAction(r schema.RelationType) string {
	switch r {
	case schema.RelationCascade:
		return "cascade"
	case schema.RelationSetNull:
		return "set null"
	default:
		return "no action"
	}
}

// ForeignKey is a resolved relation ready to be emitted.
type ForeignKey struct {
	Name     string
	Table    *schema.Table
	Column   string
	Parent   *schema.Table
	ToColumn string
	OnDelete string
}

// Clause returns "foreign key (col) references parent (col) on delete action".
func (fk *ForeignKey) Clause() string {
	return fmt.Sprintf("foreign key (%s) references %s (%s) on delete %s",
		fk.Column, fk.Parent.FullyQualifiedName(), fk.ToColumn, fk.OnDelete)
}

// ForeignKeys resolves the relations of a table, numbering them in
// declaration order.
func ForeignKeys(s *Settings, t *schema.Table) ([]*ForeignKey, error) {
	fks := make([]*ForeignKey, 0, len(t.Relations))
	for i, r := range t.Relations {
		parent, err := graph.Resolve(s.Model, t, r)
		if err != nil {
			return nil, fmt.Errorf("relation %s: %w", r, err)
		}
		fks = append(fks, &ForeignKey{
			Name:     ForeignKeyName(t.Name, i+1, s.MaxIdentifierLength),
			Table:    t,
			Column:   r.FromColumn,
			Parent:   parent,
			ToColumn: r.ToColumn,
			OnDelete: OnDeleteAction(r.Type),
		})
	}
	return fks, nil
}

// InlineForeignKeyConstraints returns the foreign key lines of a table for
// dialects declaring them inside create table.
func InlineForeignKeyConstraints(s *Settings, t *schema.Table) ([]string, error) {
	if !s.Dialect.InlineForeignKeys() || s.ForeignKeyMode != schema.ForeignKeyRelations {
		return nil, nil
	}
	fks, err := ForeignKeys(s, t)
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(fks))
	for i, fk := range fks {
		lines[i] = "   constraint " + fk.Name + " " + fk.Clause()
	}
	return lines, nil
}

// joinColumns joins names with ", ".
func joinColumns(names []string) string {
	return strings.Join(names, ", ")
}
