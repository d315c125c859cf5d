package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/syssam/ddlgen/compiler/load"
)

// errInvalid is returned by validate when a document has errors. The
// details have already been printed.
var errInvalid = errors.New("schema validation failed")

func newValidateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check schema documents without generating anything",
		Long: `Load every schema document and report modeling problems: missing key
columns, undefined enum types, set null relations on required columns and
tables without a primary key.

Examples:
  ddlgen validate --schema-file schema.xml
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := c.resolve(cmd)
			if err != nil {
				return err
			}
			return validate(cmd.OutOrStdout(), o.SchemaFiles)
		},
	}
}

func validate(w io.Writer, files []string) error {
	var (
		ok     = color.New(color.FgGreen)
		bad    = color.New(color.FgRed)
		warn   = color.New(color.FgYellow)
		failed bool
	)
	for _, path := range files {
		m, err := load.File(path)
		if err != nil {
			bad.Fprintf(w, "✗ %s\n", path)
			fmt.Fprintf(w, "  %v\n", err)
			failed = true
			continue
		}
		res := m.Validate()
		switch {
		case res.HasErrors():
			bad.Fprintf(w, "✗ %s: %d error(s), %d warning(s)\n", path, len(res.Errors), len(res.Warnings))
			failed = true
		case res.HasWarnings():
			warn.Fprintf(w, "! %s: %d warning(s)\n", path, len(res.Warnings))
		default:
			ok.Fprintf(w, "✓ %s: valid\n", path)
		}
		for _, e := range res.Errors {
			bad.Fprint(w, "  error: ")
			fmt.Fprintln(w, e.Message)
		}
		for _, e := range res.Warnings {
			warn.Fprint(w, "  warning: ")
			fmt.Fprintln(w, e.Message)
		}
	}
	if failed {
		return errInvalid
	}
	return nil
}
