package gen

import (
	"github.com/syssam/ddlgen/dialect"
	"github.com/syssam/ddlgen/schema"
)

// Settings is the read-only view of a run shared by every emitter.
type Settings struct {
	Dialect        Dialect
	Model          *schema.DatabaseModel
	BooleanMode    schema.BooleanMode
	ForeignKeyMode schema.ForeignKeyMode
	OutputMode     OutputMode
	// Separator terminates every statement.
	Separator string
	// MaxIdentifierLength bounds generated constraint and index names.
	MaxIdentifierLength int
}

// NewSettings resolves the settings of a run over m. Modes set in c take
// precedence over the ones declared by the model.
func NewSettings(m *schema.DatabaseModel, c *Config) (*Settings, error) {
	if c.Dialect == nil {
		return nil, NewConfigError("Dialect", nil, "dialect is required")
	}
	if m == nil {
		return nil, NewConfigError("Model", nil, "model is required")
	}
	name := c.Dialect.Name()
	if _, err := dialect.Parse(name); err != nil {
		return nil, NewConfigError("Dialect", name, err.Error())
	}
	s := &Settings{
		Dialect:             c.Dialect,
		Model:               m,
		BooleanMode:         m.BooleanMode,
		ForeignKeyMode:      m.ForeignKeyMode,
		OutputMode:          c.OutputMode,
		Separator:           dialect.Separator(name),
		MaxIdentifierLength: dialect.MaxIdentifierLength(name),
	}
	if c.BooleanMode != nil {
		s.BooleanMode = *c.BooleanMode
	}
	if c.ForeignKeyMode != nil {
		s.ForeignKeyMode = *c.ForeignKeyMode
	}
	return s, nil
}

// DialectName returns the tag of the active dialect.
func (s *Settings) DialectName() string {
	return s.Dialect.Name()
}
