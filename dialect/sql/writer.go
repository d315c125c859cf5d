package sql

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Writer is the sink of a generator run.
type Writer struct {
	w     *bufio.Writer
	err   error
	stats *Stats
	log   *slog.Logger
	cur   strings.Builder // statement text, kept in debug mode only
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithDebug logs every completed statement at debug level.
func WithDebug(logger *slog.Logger) WriterOption {
	return func(w *Writer) {
		w.log = logger
	}
}

// WithStats records statistics into s instead of a private instance.
func WithStats(s *Stats) WriterOption {
	return func(w *Writer) {
		w.stats = s
	}
}

// NewWriter returns a buffered Writer over out.
func NewWriter(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{w: bufio.NewWriter(out), stats: &Stats{}}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Stats returns the statistics of the writer.
func (w *Writer) Stats() *Stats {
	return w.stats
}

// Err returns the first write error.
func (w *Writer) Err() error {
	return w.err
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.stats.Bytes.Add(int64(n))
	w.stats.Lines.Add(int64(countLines(p[:n])))
	if w.log != nil {
		w.cur.Write(p[:n])
	}
	if err != nil {
		w.stats.Errors.Add(1)
		w.err = fmt.Errorf("sql: write output: %w", err)
		return n, w.err
	}
	return n, nil
}

// Print writes s as is.
func (w *Writer) Print(s string) {
	_, _ = w.Write([]byte(s))
}

// Printf writes a formatted string.
func (w *Writer) Printf(format string, args ...any) {
	w.Print(fmt.Sprintf(format, args...))
}

// Println writes s followed by a newline.
func (w *Writer) Println(s string) {
	w.Print(s + "\n")
}

// Newline writes an empty line.
func (w *Writer) Newline() {
	w.Print("\n")
}

// EndStatement writes s, the separator and a newline, and counts one
// statement.
func (w *Writer) EndStatement(s, sep string) {
	w.Println(s + sep)
	if w.err != nil {
		return
	}
	w.stats.Statements.Add(1)
	if w.log != nil {
		w.log.Debug("statement", "n", w.stats.Statements.Load(), "sql", strings.TrimSpace(w.cur.String()))
	}
	w.cur.Reset()
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.w.Flush(); err != nil {
		w.stats.Errors.Add(1)
		w.err = fmt.Errorf("sql: flush output: %w", err)
	}
	return w.err
}

func countLines(p []byte) int {
	n := 0
	for _, b := range p {
		if b == '\n' {
			n++
		}
	}
	return n
}
