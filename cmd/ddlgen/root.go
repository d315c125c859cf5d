package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/ddlgen"
	"github.com/syssam/ddlgen/compiler/gen"
	"github.com/syssam/ddlgen/compiler/gen/sql"
	"github.com/syssam/ddlgen/compiler/load"
)

// cli holds the flag values of one command tree.
type cli struct {
	flags      options
	configFile string
	envFile    string
	watch      bool
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	cmd := &cobra.Command{
		Use:   "ddlgen",
		Short: "Generate SQL DDL scripts from schema documents",
		Long: `ddlgen reads XML schema documents and writes a DDL script for one of
h2, mysql, postgres, sqlite or sqlserver next to each document.

Settings are taken from flags, then DDLGEN_* environment variables (a .env
file is read when present), then the --config file, then the attributes of
the schema document.

Examples:
  ddlgen --database-type postgres --schema-file schema.xml
  ddlgen --database-type sqlserver --schema-file a.xml --schema-file b.xml
  ddlgen --config ddlgen.yaml --stdout
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := c.resolve(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), o.Verbose)
			if c.watch {
				return watch(cmd.Context(), o, logger)
			}
			return generateAll(cmd.Context(), o, cmd.OutOrStdout(), logger)
		},
	}
	c.bindFlags(cmd)
	cmd.AddCommand(newValidateCmd(c))
	return cmd
}

func (c *cli) bindFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&c.flags.DatabaseType, "database-type", "", "target dialect: h2, mysql, postgres, sqlite or sqlserver")
	f.StringArrayVar(&c.flags.SchemaFiles, "schema-file", nil, "schema document to read (repeatable)")
	f.StringVar(&c.configFile, "config", "", "YAML file with default settings")
	f.StringVar(&c.envFile, "env-file", ".env", "dotenv file with DDLGEN_* defaults")

	f = cmd.Flags()
	f.StringVar(&c.flags.ForeignKeyMode, "foreign-key-mode", "", "foreign key mode: none, relations or triggers")
	f.StringVar(&c.flags.BooleanMode, "boolean-mode", "", "boolean mode: native, yesno or yn")
	f.StringVar(&c.flags.OutputMode, "output-mode", "", "output mode: all, indexes-only or triggers-only")
	f.BoolVar(&c.flags.Header, "header", false, "open the script with a banner comment")
	f.BoolVar(&c.flags.Stdout, "stdout", false, "write scripts to standard output instead of <schema>.sql")
	f.BoolVar(&c.flags.Verbose, "verbose", false, "log phases and statements to standard error")
	f.BoolVar(&c.watch, "watch", false, "regenerate whenever a schema document changes")
}

// resolve merges defaults, config file, environment and flags, in
// increasing order of precedence.
func (c *cli) resolve(cmd *cobra.Command) (options, error) {
	var o options
	if c.configFile != "" {
		cfg, err := readConfig(c.configFile)
		if err != nil {
			return o, err
		}
		o = cfg
	}
	lookup, err := environment(c.envFile, cmd.Flags().Changed("env-file"))
	if err != nil {
		return o, err
	}
	if err := applyEnv(&o, lookup); err != nil {
		return o, err
	}
	applyFlags(&o, c.flags, cmd.Flags().Changed)
	if len(o.SchemaFiles) == 0 {
		return o, errors.New("no schema file: set --schema-file, DDLGEN_SCHEMA_FILE or schema_files")
	}
	return o, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// generatorOptions translates resolved settings into generator options.
func generatorOptions(o options, logger *slog.Logger) ([]gen.Option, error) {
	if o.DatabaseType == "" {
		return nil, errors.New("no database type: set --database-type, DDLGEN_DATABASE_TYPE or database_type")
	}
	d, err := sql.NewDialect(o.DatabaseType)
	if err != nil {
		return nil, err
	}
	mode, err := gen.ParseOutputMode(o.OutputMode)
	if err != nil {
		return nil, err
	}
	opts := []gen.Option{
		gen.WithDialect(d),
		gen.WithOutputMode(mode),
		gen.WithLogger(logger),
		gen.WithHeaderComment(o.Header),
		gen.WithDebug(o.Verbose),
	}
	if o.BooleanMode != "" {
		opts = append(opts, gen.WithBooleanModeName(o.BooleanMode))
	}
	if o.ForeignKeyMode != "" {
		opts = append(opts, gen.WithForeignKeyModeName(o.ForeignKeyMode))
	}
	// Surface every bad mode name before any document is read.
	var check gen.Config
	if err := check.ApplyAll(opts...); err != nil {
		return nil, err
	}
	return opts, nil
}

// generateAll processes every schema file concurrently. A failing file
// does not stop the others; all failures are reported together. With
// --stdout the scripts are printed in argument order once all of them
// succeeded.
func generateAll(ctx context.Context, o options, stdout io.Writer, logger *slog.Logger) error {
	opts, err := generatorOptions(o, logger)
	if err != nil {
		return err
	}
	scripts := make([]string, len(o.SchemaFiles))
	errs := make([]error, len(o.SchemaFiles))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range o.SchemaFiles {
		i, path := i, path
		eg.Go(func() error {
			scripts[i], errs[i] = generateFile(ctx, path, o.Stdout, opts, logger)
			return nil
		})
	}
	_ = eg.Wait()
	if err := ddlgen.Collect(errs...); err != nil {
		return err
	}
	if o.Stdout {
		for _, s := range scripts {
			if _, err := io.WriteString(stdout, s); err != nil {
				return err
			}
		}
	}
	return nil
}

// generateFile loads, validates and generates one schema file. The script
// is returned when toStdout is set and written next to the file otherwise.
func generateFile(ctx context.Context, path string, toStdout bool, opts []gen.Option, logger *slog.Logger) (string, error) {
	m, err := load.File(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	res := m.Validate()
	for _, w := range res.Warnings {
		logger.Warn("schema warning", "file", path, "issue", w.Message)
	}
	if err := res.Err(); err != nil {
		return "", fmt.Errorf("%s: invalid schema:\n%w", path, err)
	}
	g, err := gen.NewGenerator(m, append(slices.Clip(opts), gen.WithLogger(logger.With("file", path)))...)
	if err != nil {
		return "", err
	}
	if toStdout {
		script, err := g.GenerateString(ctx)
		if err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
		return script, nil
	}
	out := outputPath(path)
	if err := writeFileAtomic(out, func(w io.Writer) error { return g.Generate(ctx, w) }); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("wrote script", "file", out)
	return "", nil
}
