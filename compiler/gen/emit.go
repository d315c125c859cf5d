package gen

import (
	"fmt"
	"strings"

	"github.com/syssam/ddlgen/dialect"
	"github.com/syssam/ddlgen/dialect/sql"
	"github.com/syssam/ddlgen/graph"
	"github.com/syssam/ddlgen/schema"
)

// EmitTables writes every table of every schema, each followed by its
// indexes and seed rows.
func EmitTables(w *sql.Writer, s *Settings) error {
	for _, sc := range s.Model.Schemas() {
		for _, t := range sc.Tables() {
			if err := EmitTable(w, s, t); err != nil {
				return fmt.Errorf("table %s: %w", t.FullyQualifiedName(), err)
			}
		}
	}
	return w.Err()
}

// EmitTable writes the create table statement of t, its indexes and its
// seed rows.
func EmitTable(w *sql.Writer, s *Settings, t *schema.Table) error {
	defs, err := TableDefinitions(s, t)
	if err != nil {
		return err
	}
	name := t.FullyQualifiedName()
	w.Println("/* " + name + " */")
	w.Println("create table " + name)
	w.Println("(")
	for i, def := range defs {
		if i < len(defs)-1 {
			def += ","
		}
		w.Println(def)
	}
	w.EndStatement(")"+s.Dialect.TableOptions(t), s.Separator)
	w.Newline()
	EmitIndexes(w, s, t)
	EmitInitialData(w, s, t)
	return w.Err()
}

// TableDefinitions returns the lines between the parentheses of a create
// table statement: columns, keys, column checks, foreign keys declared
// inline, then table checks.
func TableDefinitions(s *Settings, t *schema.Table) ([]string, error) {
	defs, err := ColumnDefinitions(s, t)
	if err != nil {
		return nil, err
	}
	defs = append(defs, KeyConstraints(s, t)...)
	checks, err := ColumnCheckConstraints(s, t)
	if err != nil {
		return nil, err
	}
	defs = append(defs, checks...)
	fks, err := InlineForeignKeyConstraints(s, t)
	if err != nil {
		return nil, err
	}
	defs = append(defs, fks...)
	return append(defs, TableCheckConstraints(s, t)...), nil
}

// EmitIndexes writes the create index statements of t followed by a blank
// line. Tables without indexes produce no output.
func EmitIndexes(w *sql.Writer, s *Settings, t *schema.Table) {
	if len(t.Indexes) == 0 {
		return
	}
	for i, k := range t.Indexes {
		var b strings.Builder
		b.WriteString("create ")
		if k.Unique {
			b.WriteString("unique ")
		}
		fmt.Fprintf(&b, "index %s on %s (%s)",
			IndexName(t.Name, i+1, s.MaxIdentifierLength), t.FullyQualifiedName(), joinColumns(k.Columns))
		if opts := s.Dialect.IndexOptions(k); opts != "" {
			b.WriteString(" ")
			b.WriteString(opts)
		}
		w.EndStatement(b.String(), s.Separator)
	}
	w.Newline()
}

// EmitAllIndexes writes the indexes of every table.
func EmitAllIndexes(w *sql.Writer, s *Settings) error {
	for _, t := range s.Model.Tables() {
		EmitIndexes(w, s, t)
	}
	return w.Err()
}

// EmitInitialData writes the seed rows of t that apply to the active
// dialect, followed by a blank line.
func EmitInitialData(w *sql.Writer, s *Settings, t *schema.Table) {
	var n int
	for _, d := range t.InitialData {
		if d.AppliesTo(s.DialectName()) {
			w.EndStatement(d.SQL, s.Separator)
			n++
		}
	}
	if n > 0 {
		w.Newline()
	}
}

// EmitRelations writes one alter table statement per relation. Dialects
// declaring foreign keys inline produce no output here.
func EmitRelations(w *sql.Writer, s *Settings) error {
	if s.Dialect.InlineForeignKeys() {
		return nil
	}
	for _, t := range s.Model.Tables() {
		fks, err := ForeignKeys(s, t)
		if err != nil {
			return fmt.Errorf("table %s: %w", t.FullyQualifiedName(), err)
		}
		for _, fk := range fks {
			w.EndStatement(fmt.Sprintf("alter table %s add constraint %s %s",
				t.FullyQualifiedName(), fk.Name, fk.Clause()), s.Separator)
		}
		if len(fks) > 0 {
			w.Newline()
		}
	}
	return w.Err()
}

// EmitTriggers writes the author triggers of every table. In trigger
// foreign key mode each referenced table is preceded by a comment listing
// the child columns its triggers have to guard.
func EmitTriggers(w *sql.Writer, s *Settings) error {
	for _, t := range s.Model.Tables() {
		if s.ForeignKeyMode == schema.ForeignKeyTriggers && len(t.ReverseRelations) > 0 {
			names, byChild := graph.Children(t)
			refs := make([]string, 0, len(t.ReverseRelations))
			for _, name := range names {
				for _, r := range byChild[name] {
					child, err := graph.Resolve(s.Model, t, r)
					if err != nil {
						return err
					}
					refs = append(refs, child.FullyQualifiedName()+"."+r.ToColumn)
				}
			}
			w.Println("/* " + t.FullyQualifiedName() + " referenced by " + strings.Join(refs, ", ") + " */")
		}
		for _, tr := range t.Triggers {
			if tr.AppliesTo(s.DialectName()) {
				emitBlock(w, s, tr.SQL)
			}
		}
	}
	return w.Err()
}

// EmitFunctions writes the function bodies of the active dialect.
func EmitFunctions(w *sql.Writer, s *Settings) error {
	for _, sc := range s.Model.Schemas() {
		for _, f := range sc.FunctionsFor(s.DialectName()) {
			emitBlock(w, s, f.SQL)
		}
	}
	return w.Err()
}

// EmitViews writes the view definitions of the active dialect.
func EmitViews(w *sql.Writer, s *Settings) error {
	for _, sc := range s.Model.Schemas() {
		for _, v := range sc.ViewsFor(s.DialectName()) {
			emitBlock(w, s, v.SQL)
		}
	}
	return w.Err()
}

// EmitProcedures writes the procedure bodies of the active dialect.
// Procedures declared for a dialect without stored procedures fail the run.
func EmitProcedures(w *sql.Writer, s *Settings) error {
	name := s.DialectName()
	for _, sc := range s.Model.Schemas() {
		procs := sc.ProceduresFor(name)
		if len(procs) > 0 && !dialect.SupportsProcedures(name) {
			return NewUnsupportedError(name, "stored procedures", "procedure "+procs[0].Name)
		}
		for _, p := range procs {
			emitBlock(w, s, p.SQL)
		}
	}
	return w.Err()
}

// EmitOtherSQL writes the free-form fragments placed at order.
func EmitOtherSQL(w *sql.Writer, s *Settings, order schema.OtherSQLOrder) error {
	for _, sc := range s.Model.Schemas() {
		for _, o := range sc.OtherSQLFor(s.DialectName(), order) {
			emitBlock(w, s, o.SQL)
		}
	}
	return w.Err()
}

// emitBlock writes author SQL as one statement followed by a blank line.
func emitBlock(w *sql.Writer, s *Settings, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	w.EndStatement(strings.TrimRight(text, ";"), s.Separator)
	w.Newline()
}
