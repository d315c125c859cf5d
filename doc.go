// Package ddlgen compiles a database-agnostic schema description into DDL
// scripts for H2, MySQL, PostgreSQL, SQLite and SQL Server.
//
// The root package only holds the error types shared by every layer. The
// pipeline lives in sub-packages:
//
//	compiler/load   XML document ──▶ schema.DatabaseModel
//	graph           reverse relations over the model
//	compiler/gen    orchestrator, emitters, name generators
//	compiler/gen/sql  the five dialect variants
//	dialect/sql     output sink
//	cmd/ddlgen      command line front end
//
// # Usage
//
//	model, err := load.File("schema.xml")
//	if err != nil {
//	    return err
//	}
//	d, err := sql.NewDialect(dialect.Postgres)
//	if err != nil {
//	    return err
//	}
//	g, err := gen.NewGenerator(model, gen.WithDialect(d))
//	if err != nil {
//	    return err
//	}
//	return g.Generate(ctx, os.Stdout)
package ddlgen
