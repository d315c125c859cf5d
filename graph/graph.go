package graph

import (
	"fmt"
	"strings"

	"github.com/syssam/ddlgen"
	"github.com/syssam/ddlgen/schema"
)

// edge is a reverse relation waiting to be attached to its parent table.
type edge struct {
	parent  *schema.Table
	reverse *schema.Relation
}

// BuildReverseRelations replaces the reverse relations of every table in m.
func BuildReverseRelations(m *schema.DatabaseModel) error {
	edges, err := collect(m)
	if err != nil {
		return err
	}
	for _, t := range m.Tables() {
		t.ReverseRelations = nil
	}
	for _, e := range edges {
		e.parent.ReverseRelations = append(e.parent.ReverseRelations, e.reverse)
	}
	return nil
}

// collect resolves every declared relation in schema, table, relation order.
func collect(m *schema.DatabaseModel) ([]edge, error) {
	var edges []edge
	for _, s := range m.Schemas() {
		for _, t := range s.Tables() {
			for _, r := range t.Relations {
				parent, err := Resolve(m, t, r)
				if err != nil {
					return nil, fmt.Errorf("graph: relation %s: %w", r, err)
				}
				if _, err := parent.Column(r.ToColumn); err != nil {
					return nil, fmt.Errorf("graph: relation %s: %w", r, err)
				}
				edges = append(edges, edge{parent: parent, reverse: reverse(parent, t, r)})
			}
		}
	}
	return edges, nil
}

// reverse mirrors r onto parent. A child in another schema is named
// "schema.table" so the reverse relation resolves from the parent's side;
// the default schema is written ".table".
func reverse(parent, child *schema.Table, r *schema.Relation) *schema.Relation {
	rev := r.Reverse()
	if !strings.EqualFold(parent.SchemaName, child.SchemaName) {
		rev.ToTable = child.SchemaName + "." + child.Name
	}
	return rev
}

// Resolve returns the parent table of a relation declared on child.
func Resolve(m *schema.DatabaseModel, child *schema.Table, r *schema.Relation) (*schema.Table, error) {
	schemaName, table, qualified := r.Target()
	if !qualified {
		schemaName = child.SchemaName
	}
	s, err := m.Schema(schemaName)
	if err != nil {
		return nil, ddlgen.NewTableNotFoundError(schemaName, table)
	}
	return s.Table(table)
}

// Children returns the reverse relations of t grouped by child table, in
// first-seen order.
func Children(t *schema.Table) (names []string, byChild map[string][]*schema.Relation) {
	byChild = make(map[string][]*schema.Relation)
	for _, r := range t.ReverseRelations {
		if _, ok := byChild[r.ToTable]; !ok {
			names = append(names, r.ToTable)
		}
		byChild[r.ToTable] = append(byChild[r.ToTable], r)
	}
	return names, byChild
}
