// Package schema is the dialect-agnostic intermediate representation of a
// database definition.
//
// A DatabaseModel owns one or more Schema values (at most one of them
// unnamed). Each Schema owns tables, views, functions, procedures, free-form
// SQL fragments and enum types:
//
//	DatabaseModel
//	└── Schema ("" or named)
//	    ├── Table
//	    │   ├── Column      (type from package field)
//	    │   ├── Key         (primary, unique, index)
//	    │   ├── Relation    (declared, child → parent)
//	    │   ├── Relation    (reverse, parent → child, derived by package graph)
//	    │   ├── Trigger, Constraint, InitialData, Aggregation
//	    ├── EnumType
//	    ├── View, Function, Procedure
//	    └── OtherSQL
//
// Name lookups are case-insensitive and fail with a *ddlgen.NotFoundError
// rather than a nil result:
//
//	users, err := s.Table("USERS")
//	if ddlgen.IsNotFound(err) {
//	    ...
//	}
//
// # Building
//
// Tables and columns can be described with the fluent builders:
//
//	users := schema.NewTable("users").
//	    Columns(
//	        schema.NewColumn("id", field.TypeSequence).Required(),
//	        schema.NewColumn("email", field.TypeVarchar).Length(255).Required(),
//	    ).
//	    PrimaryKey("id").
//	    MustBuild()
//
// # Validation
//
// Validate collects every modeling error instead of stopping at the first:
//
//	if res := model.Validate(); res.HasErrors() {
//	    fmt.Println(res)
//	}
package schema
