// Package sql holds the dialect variants of the DDL generator.
//
// Every dialect embeds gen.BaseTranslator and overrides the hooks where its
// SQL departs from the baseline:
//
//	dialect     sequence                 text        uuid              uuid default
//	h2          integer auto_increment   clob        uuid              random_uuid()
//	mysql       integer auto_increment   mediumtext  char(36)          (uuid())
//	postgres    serial                   text        uuid              generate_uuid()
//	sqlite      integer auto_increment   text        text              (random v4 expression)
//	sqlserver   int identity             varchar(max) uniqueidentifier newid()
//
// PostgreSQL is the only dialect with array columns. SQLite declares its
// foreign keys inside create table and has no stored procedures.
//
// Usage:
//
//	d, err := sql.NewDialect(dialect.Postgres)
//	if err != nil {
//	    return err
//	}
//	g, err := gen.NewGenerator(model, gen.WithDialect(d))
package sql
