package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// outputPath returns the script path of a schema file: the same path with
// a .sql extension.
func outputPath(schemaFile string) string {
	return strings.TrimSuffix(schemaFile, filepath.Ext(schemaFile)) + ".sql"
}

// writeFileAtomic writes path through a temporary file in the same
// directory. The file is renamed into place only when write succeeds, so a
// failed run never leaves a partial script behind.
func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()
	if err = write(f); err != nil {
		return err
	}
	if err = f.Chmod(0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
