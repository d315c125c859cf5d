package schema

// appliesTo reports whether an object declared for dialect declared is
// emitted for active. Objects without a dialect apply everywhere.
func appliesTo(declared, active string) bool {
	return declared == "" || declared == active
}

// Constraint is a named, author-supplied table-level check.
type Constraint struct {
	Name    string
	SQL     string
	Dialect string
}

// AppliesTo reports whether the constraint is emitted for the dialect.
func (c *Constraint) AppliesTo(dialect string) bool { return appliesTo(c.Dialect, dialect) }

// Trigger is author-supplied trigger SQL for one dialect.
type Trigger struct {
	SQL     string
	Type    TriggerType
	Dialect string
}

// AppliesTo reports whether the trigger is emitted for the dialect.
func (t *Trigger) AppliesTo(dialect string) bool { return appliesTo(t.Dialect, dialect) }

// InitialData is an insert statement seeding a table.
type InitialData struct {
	SQL     string
	Dialect string
}

// AppliesTo reports whether the row is emitted for the dialect.
func (d *InitialData) AppliesTo(dialect string) bool { return appliesTo(d.Dialect, dialect) }

// View is a view definition for one dialect.
type View struct {
	SchemaName string
	Name       string
	SQL        string
	Dialect    string
}

// AppliesTo reports whether the view is emitted for the dialect.
func (v *View) AppliesTo(dialect string) bool { return appliesTo(v.Dialect, dialect) }

// Function is a stored function body for one dialect.
type Function struct {
	SchemaName string
	Name       string
	Dialect    string
	SQL        string
}

// AppliesTo reports whether the function is emitted for the dialect.
func (f *Function) AppliesTo(dialect string) bool { return appliesTo(f.Dialect, dialect) }

// Procedure is a stored procedure body for one dialect.
type Procedure struct {
	SchemaName string
	Name       string
	Dialect    string
	SQL        string
}

// AppliesTo reports whether the procedure is emitted for the dialect.
func (p *Procedure) AppliesTo(dialect string) bool { return appliesTo(p.Dialect, dialect) }

// OtherSQL is a free-form fragment emitted before or after generated objects.
type OtherSQL struct {
	Dialect string
	Order   OtherSQLOrder
	SQL     string
}

// AppliesTo reports whether the fragment is emitted for the dialect.
func (o *OtherSQL) AppliesTo(dialect string) bool { return appliesTo(o.Dialect, dialect) }
