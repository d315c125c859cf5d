package sql

import (
	"github.com/syssam/ddlgen/compiler/gen"
	"github.com/syssam/ddlgen/dialect"
)

// NewDialect returns the dialect registered under name. Aliases accepted
// by dialect.Parse ("postgresql", "mssql", ...) are resolved first.
func NewDialect(name string) (gen.Dialect, error) {
	canonical, err := dialect.Parse(name)
	if err != nil {
		return nil, gen.NewConfigError("Dialect", name, err.Error())
	}
	switch canonical {
	case dialect.H2:
		return H2{}, nil
	case dialect.MySQL:
		return MySQL{}, nil
	case dialect.Postgres:
		return Postgres{}, nil
	case dialect.SQLite:
		return SQLite{}, nil
	default:
		return SQLServer{}, nil
	}
}

// Dialects returns one instance of every dialect, in dialect.Names order.
func Dialects() []gen.Dialect {
	return []gen.Dialect{H2{}, MySQL{}, Postgres{}, SQLite{}, SQLServer{}}
}
