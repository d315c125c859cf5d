// Package gen turns a schema.DatabaseModel into a DDL script.
//
// A run is driven by a Generator built from functional options:
//
//	d, _ := sql.NewDialect(dialect.Postgres) // package compiler/gen/sql
//	g, err := gen.NewGenerator(model,
//	    gen.WithDialect(d),
//	    gen.WithBooleanMode(schema.BooleanYN),
//	    gen.WithHeaderComment(true),
//	)
//	if err != nil {
//	    return err
//	}
//	err = g.Generate(ctx, w)
//
// # Phases
//
// Generate runs these phases in order, each writing through the same
// dialect/sql.Writer:
//
//	header            dialect preamble (PostgreSQL UUID function and extensions)
//	other-sql-top     author fragments placed at the top
//	tables            create table, then its indexes and seed rows
//	relations         alter table ... foreign key (foreign key mode "relations")
//	triggers          author triggers
//	functions         author functions
//	views             author views
//	procedures        author procedures
//	other-sql-bottom  author fragments placed at the bottom
//
// OutputIndexesOnly runs only the indexes of every table and
// OutputTriggersOnly only the triggers. Neither writes the header.
//
// # Dialects
//
// A Dialect is a ColumnTypeTranslator plus a few statement-shape hooks.
// BaseTranslator holds the shared baseline; the five dialects in package
// compiler/gen/sql embed it and override what differs.
//
// # Names
//
// Generated names are bounded by the identifier limit of the dialect:
//
//	ck_{table[:9]}_{column[:9]}_{FNV-1a hash}   column check constraints
//	pk_{table}                                primary keys
//	uk_{table}{n}                             unique keys
//	ix_{table}{n}                             indexes
//	fk_{table}{n}                             foreign keys
package gen
