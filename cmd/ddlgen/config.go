package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// envPrefix prefixes every environment variable read by the command.
const envPrefix = "DDLGEN_"

// options are the resolved settings of a run. Empty modes defer to the
// schema document, then to the generator defaults.
type options struct {
	DatabaseType   string   `yaml:"database_type"`
	SchemaFiles    []string `yaml:"schema_files"`
	ForeignKeyMode string   `yaml:"foreign_key_mode"`
	BooleanMode    string   `yaml:"boolean_mode"`
	OutputMode     string   `yaml:"output_mode"`
	Header         bool     `yaml:"header"`
	Stdout         bool     `yaml:"stdout"`
	Verbose        bool     `yaml:"verbose"`
}

// readConfig decodes a YAML config file. Unknown keys are rejected.
func readConfig(path string) (options, error) {
	var o options
	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return o, fmt.Errorf("parse config %s: %w", path, err)
	}
	return o, nil
}

// environment returns a lookup over the process environment backed by the
// variables of a dotenv file. Process variables win. A missing file is only
// an error when required is set.
func environment(path string, required bool) (func(string) (string, bool), error) {
	file := map[string]string{}
	if path != "" {
		vars, err := godotenv.Read(path)
		switch {
		case err == nil:
			file = vars
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return nil, fmt.Errorf("read env file: %w", err)
		}
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}, nil
}

// applyEnv overlays DDLGEN_* variables on o.
func applyEnv(o *options, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"DATABASE_TYPE":    &o.DatabaseType,
		"FOREIGN_KEY_MODE": &o.ForeignKeyMode,
		"BOOLEAN_MODE":     &o.BooleanMode,
		"OUTPUT_MODE":      &o.OutputMode,
	}
	for key, dst := range strs {
		if v, ok := lookup(envPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	if v, ok := lookup(envPrefix + "SCHEMA_FILE"); ok && v != "" {
		o.SchemaFiles = splitList(v)
	}
	bools := map[string]*bool{
		"HEADER":  &o.Header,
		"STDOUT":  &o.Stdout,
		"VERBOSE": &o.Verbose,
	}
	for key, dst := range bools {
		v, ok := lookup(envPrefix + key)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, key, err)
		}
		*dst = b
	}
	return nil
}

// applyFlags overlays the flags set on the command line.
func applyFlags(o *options, flags options, changed func(string) bool) {
	if changed("database-type") {
		o.DatabaseType = flags.DatabaseType
	}
	if changed("schema-file") {
		o.SchemaFiles = flags.SchemaFiles
	}
	if changed("foreign-key-mode") {
		o.ForeignKeyMode = flags.ForeignKeyMode
	}
	if changed("boolean-mode") {
		o.BooleanMode = flags.BooleanMode
	}
	if changed("output-mode") {
		o.OutputMode = flags.OutputMode
	}
	if changed("header") {
		o.Header = flags.Header
	}
	if changed("stdout") {
		o.Stdout = flags.Stdout
	}
	if changed("verbose") {
		o.Verbose = flags.Verbose
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
