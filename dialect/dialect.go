package dialect

import (
	"errors"
	"fmt"
	"strings"
)

// Dialect names for supported targets.
const (
	H2        = "h2"
	MySQL     = "mysql"
	Postgres  = "postgres"
	SQLite    = "sqlite"
	SQLServer = "sqlserver"
)

// ErrUnknownDialect is returned by Parse for unrecognised dialect names.
var ErrUnknownDialect = errors.New("dialect: unknown dialect")

// Names returns the canonical names of all dialects.
func Names() []string {
	return []string{H2, MySQL, Postgres, SQLite, SQLServer}
}

var aliases = map[string]string{
	"h2":         H2,
	"derby":      H2,
	"hsql":       H2,
	"mysql":      MySQL,
	"postgres":   Postgres,
	"postgresql": Postgres,
	"pgsql":      Postgres,
	"sqlite":     SQLite,
	"sqlserver":  SQLServer,
	"mssql":      SQLServer,
}

// Parse returns the canonical dialect name for s, accepting the aliases
// used by schema documents ("postgresql", "mssql", ...).
func Parse(s string) (string, error) {
	if name, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%w %q: use one of %s", ErrUnknownDialect, s, strings.Join(Names(), ", "))
}

// Separator returns the statement separator of the dialect.
func Separator(name string) string {
	if name == SQLServer {
		return "\nGO"
	}
	return ";"
}

// MaxIdentifierLength returns the longest identifier the dialect accepts.
func MaxIdentifierLength(name string) int {
	switch name {
	case Postgres:
		return 63
	case H2, MySQL:
		return 64
	default:
		return 128
	}
}

// SupportsArrays reports whether the dialect has array column types.
func SupportsArrays(name string) bool {
	return name == Postgres
}

// SupportsProcedures reports whether the dialect has stored procedures.
func SupportsProcedures(name string) bool {
	return name != SQLite
}
