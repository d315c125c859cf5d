// Package sql provides the output sink DDL scripts are written to.
//
// A Writer wraps an io.Writer with the bookkeeping emitters need: it counts
// statements and lines, remembers the first write error so callers can check
// once at the end, and in debug mode logs each completed statement through
// log/slog.
//
//	w := sql.NewWriter(f, sql.WithDebug(logger))
//	w.Println("create table users")
//	w.Println("(")
//	w.Println("   id integer")
//	w.EndStatement(")", ";")
//	if err := w.Flush(); err != nil {
//	    return err
//	}
//	fmt.Println(w.Stats().Stats())
//
// A Writer is owned by a single generator run and is not safe for concurrent
// writes. Its statistics may be read from other goroutines.
package sql
