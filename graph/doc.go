// Package graph derives the relation graph of a schema.DatabaseModel.
//
// Relations are declared on the child table (orders.user_id → users.id).
// BuildReverseRelations mirrors each of them onto the parent table so that
// parent → children lookups do not need to scan every table:
//
//	orders.Relations        = [orders.user_id → users.id]
//	users.ReverseRelations  = [users.id → orders.user_id]
//
// The build runs in two passes. Every edge is computed against the unmodified
// model first, then all edges are applied. Running it again produces the
// same result.
//
// # Target Resolution
//
// A relation target of the form "schema.table" is split on the first dot and
// resolved in the named schema. Unqualified targets resolve in the schema of
// the table declaring the relation. A target table or column that does not
// exist fails the whole build with a *ddlgen.NotFoundError.
package graph
