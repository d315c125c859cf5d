// Package dialect describes the SQL dialects ddlgen can target.
//
// # Supported Dialects
//
//   - H2: H2 database engine
//   - MySQL: MySQL/MariaDB database
//   - Postgres: PostgreSQL database
//   - SQLite: SQLite database
//   - SQLServer: Microsoft SQL Server
//
// # Dialect Constants
//
// Each dialect is identified by a constant string:
//
//	dialect.H2        = "h2"
//	dialect.MySQL     = "mysql"
//	dialect.Postgres  = "postgres"
//	dialect.SQLite    = "sqlite"
//	dialect.SQLServer = "sqlserver"
//
// # Fixed Properties
//
// Each dialect fixes the statement separator written after every statement
// and the maximum length of generated identifiers:
//
//	dialect   separator  max identifier
//	h2        ;          64
//	mysql     ;          64
//	postgres  ;          63
//	sqlite    ;          128
//	sqlserver \nGO       128
package dialect
