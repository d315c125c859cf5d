package schema

import "strings"

// Frequency is the roll-up period of an aggregation.
type Frequency uint8

// Aggregation frequencies.
const (
	FrequencyDaily Frequency = iota
	FrequencyWeekly
	FrequencyMonthly
	FrequencyYearly
)

// ParseFrequency parses a frequency name. Unknown names yield monthly.
func ParseFrequency(s string) Frequency {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily":
		return FrequencyDaily
	case "weekly":
		return FrequencyWeekly
	case "yearly":
		return FrequencyYearly
	default:
		return FrequencyMonthly
	}
}

// String returns the frequency name.
func (f Frequency) String() string {
	switch f {
	case FrequencyDaily:
		return "daily"
	case FrequencyWeekly:
		return "weekly"
	case FrequencyYearly:
		return "yearly"
	default:
		return "monthly"
	}
}

// AggregationType is the operation applied to an aggregated column.
type AggregationType uint8

// Aggregation operations.
const (
	AggregateSum AggregationType = iota
	AggregateCount
)

// AggregationColumn maps a source column onto a destination column.
// Count columns have no source.
type AggregationColumn struct {
	Type              AggregationType
	SourceColumn      string
	DestinationColumn string
}

// AggregationGroup is a grouping column of an aggregation.
type AggregationGroup struct {
	Source            string
	Destination       string
	SourceDerivedFrom string
}

// Aggregation describes a summary table fed from the owning table. It is
// carried through the model for downstream tooling and does not affect the
// generated DDL.
type Aggregation struct {
	DestinationTable string
	DateColumn       string
	TimestampColumn  string
	Criteria         string
	Frequency        Frequency
	Columns          []*AggregationColumn
	Groups           []*AggregationGroup
}

// Sum adds a sum mapping.
func (a *Aggregation) Sum(source, destination string) *Aggregation {
	a.Columns = append(a.Columns, &AggregationColumn{Type: AggregateSum, SourceColumn: source, DestinationColumn: destination})
	return a
}

// Count adds a count mapping.
func (a *Aggregation) Count(destination string) *Aggregation {
	a.Columns = append(a.Columns, &AggregationColumn{Type: AggregateCount, DestinationColumn: destination})
	return a
}

// Group adds a grouping column.
func (a *Aggregation) Group(source, destination, derivedFrom string) *Aggregation {
	a.Groups = append(a.Groups, &AggregationGroup{Source: source, Destination: destination, SourceDerivedFrom: derivedFrom})
	return a
}
