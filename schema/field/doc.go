// Package field defines the closed set of abstract column types a schema
// document may declare.
//
// Type names are matched case-insensitively:
//
//	t, err := field.ParseType("varchar") // field.TypeVarchar
//
// Every type renders back to its canonical upper-case name, so
// ParseType(t.String()) returns t for every valid type.
package field
