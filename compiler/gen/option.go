package gen

import (
	"log/slog"
	"strings"

	"github.com/syssam/ddlgen"
	"github.com/syssam/ddlgen/schema"
)

// OutputMode selects which phases of a run produce output.
type OutputMode uint8

// Output modes.
const (
	// OutputAll runs every phase.
	OutputAll OutputMode = iota
	// OutputIndexesOnly emits the indexes of every table and nothing else.
	OutputIndexesOnly
	// OutputTriggersOnly emits the triggers and nothing else.
	OutputTriggersOnly
)

// ParseOutputMode parses "all", "indexes-only" or "triggers-only".
func ParseOutputMode(s string) (OutputMode, error) {
	norm := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch norm {
	case "all", "":
		return OutputAll, nil
	case "indexesonly":
		return OutputIndexesOnly, nil
	case "triggersonly":
		return OutputTriggersOnly, nil
	}
	return OutputAll, NewConfigError("OutputMode", s, "unknown output mode; use all, indexes-only or triggers-only")
}

// String returns the textual form accepted by ParseOutputMode.
func (m OutputMode) String() string {
	switch m {
	case OutputIndexesOnly:
		return "indexes-only"
	case OutputTriggersOnly:
		return "triggers-only"
	default:
		return "all"
	}
}

// Config holds the options of a generator run. Unset modes fall back to
// the values declared by the model.
type Config struct {
	Dialect        Dialect
	BooleanMode    *schema.BooleanMode
	ForeignKeyMode *schema.ForeignKeyMode
	OutputMode     OutputMode
	Logger         *slog.Logger
	// HeaderComment opens the script with a banner naming the generator
	// and the model version.
	HeaderComment bool
	// Debug logs every emitted statement through Logger.
	Debug bool
}

// Option configures a generator run.
type Option func(*Config) error

// WithDialect sets the target dialect.
func WithDialect(d Dialect) Option {
	return func(c *Config) error {
		if d == nil {
			return NewConfigError("Dialect", nil, "dialect cannot be nil")
		}
		c.Dialect = d
		return nil
	}
}

// WithBooleanMode overrides the boolean mode of the model.
func WithBooleanMode(m schema.BooleanMode) Option {
	return func(c *Config) error {
		if m > schema.BooleanYN {
			return NewConfigError("BooleanMode", m, "unknown boolean mode")
		}
		c.BooleanMode = &m
		return nil
	}
}

// WithBooleanModeName is like WithBooleanMode but parses the mode name.
func WithBooleanModeName(name string) Option {
	return func(c *Config) error {
		m, err := schema.ParseBooleanMode(name)
		if err != nil {
			return NewConfigError("BooleanMode", name, "unknown boolean mode; use native, yesno or yn")
		}
		c.BooleanMode = &m
		return nil
	}
}

// WithForeignKeyMode overrides the foreign key mode of the model.
func WithForeignKeyMode(m schema.ForeignKeyMode) Option {
	return func(c *Config) error {
		if m > schema.ForeignKeyTriggers {
			return NewConfigError("ForeignKeyMode", m, "unknown foreign key mode")
		}
		c.ForeignKeyMode = &m
		return nil
	}
}

// WithForeignKeyModeName is like WithForeignKeyMode but parses the mode name.
func WithForeignKeyModeName(name string) Option {
	return func(c *Config) error {
		m, err := schema.ParseForeignKeyMode(name)
		if err != nil {
			return NewConfigError("ForeignKeyMode", name, "unknown foreign key mode; use none, relations or triggers")
		}
		c.ForeignKeyMode = &m
		return nil
	}
}

// WithOutputMode sets the output mode.
func WithOutputMode(m OutputMode) Option {
	return func(c *Config) error {
		if m > OutputTriggersOnly {
			return NewConfigError("OutputMode", m, "unknown output mode")
		}
		c.OutputMode = m
		return nil
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithHeaderComment enables the banner comment.
func WithHeaderComment(enabled bool) Option {
	return func(c *Config) error {
		c.HeaderComment = enabled
		return nil
	}
}

// WithDebug logs every emitted statement at debug level.
func WithDebug(enabled bool) Option {
	return func(c *Config) error {
		c.Debug = enabled
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll is like Apply but runs every option and reports all of the
// rejected ones, so a caller can list every bad setting at once.
func (c *Config) ApplyAll(opts ...Option) error {
	errs := make([]error, len(opts))
	for i, opt := range opts {
		errs[i] = opt(c)
	}
	return ddlgen.Collect(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c, nil
}
