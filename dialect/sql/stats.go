package sql

import (
	"fmt"
	"sync/atomic"
)

// Stats holds output statistics of a Writer.
type Stats struct {
	// Statements is the number of statements terminated with EndStatement.
	Statements atomic.Int64
	// Lines is the number of newline characters written.
	Lines atomic.Int64
	// Bytes is the number of bytes written.
	Bytes atomic.Int64
	// Errors is the count of failed writes.
	Errors atomic.Int64
}

// Stats returns a snapshot of the current statistics.
func (s *Stats) Stats() StatsSnapshot {
	return StatsSnapshot{
		Statements: s.Statements.Load(),
		Lines:      s.Lines.Load(),
		Bytes:      s.Bytes.Load(),
		Errors:     s.Errors.Load(),
	}
}

// StatsSnapshot is a point-in-time snapshot of output statistics.
type StatsSnapshot struct {
	Statements int64
	Lines      int64
	Bytes      int64
	Errors     int64
}

// String returns a human-readable summary of the statistics.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf("statements=%d lines=%d bytes=%d errors=%d",
		s.Statements, s.Lines, s.Bytes, s.Errors)
}
