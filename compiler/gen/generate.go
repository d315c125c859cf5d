package gen

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/syssam/ddlgen/dialect/sql"
	"github.com/syssam/ddlgen/schema"
)

// Version is written into the banner comment.
const Version = "1.0.0"

// Phase names one step of a run.
type Phase string

// Phases of a run, in emission order.
const (
	PhaseHeader         Phase = "header"
	PhaseOtherSQLTop    Phase = "other-sql-top"
	PhaseTables         Phase = "tables"
	PhaseIndexes        Phase = "indexes"
	PhaseRelations      Phase = "relations"
	PhaseTriggers       Phase = "triggers"
	PhaseFunctions      Phase = "functions"
	PhaseViews          Phase = "views"
	PhaseProcedures     Phase = "procedures"
	PhaseOtherSQLBottom Phase = "other-sql-bottom"
)

type step struct {
	phase Phase
	emit  func(*sql.Writer, *Settings) error
}

// Generator writes the DDL script of a model for one dialect.
type Generator struct {
	cfg      *Config
	settings *Settings
	log      *slog.Logger
	stats    *sql.Stats
}

// NewGenerator returns a generator for m. WithDialect is required.
func NewGenerator(m *schema.DatabaseModel, opts ...Option) (*Generator, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	s, err := NewSettings(m, cfg)
	if err != nil {
		return nil, err
	}
	return &Generator{
		cfg:      cfg,
		settings: s,
		log:      cfg.Logger.With("dialect", s.DialectName()),
		stats:    &sql.Stats{},
	}, nil
}

// Settings returns the resolved settings of the generator.
func (g *Generator) Settings() *Settings {
	return g.settings
}

// Stats returns the output statistics accumulated over every run.
func (g *Generator) Stats() sql.StatsSnapshot {
	return g.stats.Stats()
}

// steps returns the phases selected by the output mode.
func (g *Generator) steps() []step {
	s := g.settings
	switch s.OutputMode {
	case OutputIndexesOnly:
		return []step{{PhaseIndexes, EmitAllIndexes}}
	case OutputTriggersOnly:
		return []step{{PhaseTriggers, EmitTriggers}}
	}
	steps := []step{
		{PhaseHeader, g.header},
		{PhaseOtherSQLTop, func(w *sql.Writer, s *Settings) error { return EmitOtherSQL(w, s, schema.OrderTop) }},
		{PhaseTables, EmitTables},
	}
	if s.ForeignKeyMode == schema.ForeignKeyRelations {
		steps = append(steps, step{PhaseRelations, EmitRelations})
	}
	return append(steps,
		step{PhaseTriggers, EmitTriggers},
		step{PhaseFunctions, EmitFunctions},
		step{PhaseViews, EmitViews},
		step{PhaseProcedures, EmitProcedures},
		step{PhaseOtherSQLBottom, func(w *sql.Writer, s *Settings) error { return EmitOtherSQL(w, s, schema.OrderBottom) }},
	)
}

func (g *Generator) header(w *sql.Writer, s *Settings) error {
	if g.cfg.HeaderComment {
		banner := "/* Generated by ddlgen " + Version
		if !s.Model.Version.IsZero() {
			banner += ", schema version " + s.Model.Version.String()
		}
		w.Println(banner + " */")
		w.Newline()
	}
	return s.Dialect.Header(w, s)
}

// Generate writes the script to out. The context is checked between
// phases. On error nothing is guaranteed about the bytes already written;
// callers writing files should write to a temporary file first.
func (g *Generator) Generate(ctx context.Context, out io.Writer) error {
	opts := []sql.WriterOption{sql.WithStats(g.stats)}
	if g.cfg.Debug {
		opts = append(opts, sql.WithDebug(g.log))
	}
	w := sql.NewWriter(out, opts...)
	start := time.Now()
	before := g.stats.Stats()
	for _, st := range g.steps() {
		if err := ctx.Err(); err != nil {
			return NewGenerationError(st.phase, "canceled", err)
		}
		g.log.Debug("phase", "name", st.phase)
		if err := st.emit(w, g.settings); err != nil {
			return NewGenerationError(st.phase, "", err)
		}
	}
	if err := w.Flush(); err != nil {
		return NewGenerationError("", "flush", err)
	}
	after := g.stats.Stats()
	g.log.Info("generated",
		"statements", after.Statements-before.Statements,
		"lines", after.Lines-before.Lines,
		"bytes", after.Bytes-before.Bytes,
		"output", g.settings.OutputMode.String(),
		"duration", time.Since(start),
	)
	return nil
}

// GenerateString is like Generate but returns the script.
func (g *Generator) GenerateString(ctx context.Context) (string, error) {
	var buf bytes.Buffer
	if err := g.Generate(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
