package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/ddlgen/schema"
	"github.com/syssam/ddlgen/schema/field"
)

// ColumnCheckConstraints returns the check constraint lines derived from
// column metadata, in column order.
func ColumnCheckConstraints(s *Settings, t *schema.Table) ([]string, error) {
	var lines []string
	for _, c := range t.ColumnsWithCheckConstraints(s.BooleanMode) {
		body, ok, err := CheckConstraintSQL(s, c)
		if err != nil {
			return nil, fmt.Errorf("column %s.%s: %w", t.Name, c.Name, err)
		}
		if ok {
			lines = append(lines, "   constraint "+CheckConstraintName(t.Name, c.Name)+" "+body)
		}
	}
	return lines, nil
}

// CheckConstraintSQL returns the check body of a column. A boolean column
// stored as text takes precedence over an explicit check, which takes
// precedence over an enum value list, which takes precedence over numeric
// bounds.
func CheckConstraintSQL(s *Settings, c *schema.Column) (string, bool, error) {
	switch {
	case c.Type == field.TypeBoolean:
		switch s.BooleanMode {
		case schema.BooleanYesNo:
			return "check(" + c.Name + " in ('Yes','No'))", true, nil
		case schema.BooleanYN:
			return "check(" + c.Name + " in ('Y','N'))", true, nil
		}
		return "", false, nil
	case c.Check != "":
		return c.Check, true, nil
	case c.EnumType != "":
		e, err := s.Model.EnumType(c.SchemaName, c.EnumType)
		if err != nil {
			return "", false, err
		}
		codes := e.Codes()
		for i, code := range codes {
			codes[i] = s.Dialect.QuoteLiteral(code)
		}
		return "check(" + c.Name + " in (" + strings.Join(codes, ", ") + "))", true, nil
	case c.HasMinOrMax():
		return minMaxCheck(c), true, nil
	}
	return "", false, nil
}

func minMaxCheck(c *schema.Column) string {
	var parts []string
	if c.Min != nil {
		parts = append(parts, c.Name+" >= "+formatNumber(*c.Min))
	}
	if c.Max != nil {
		parts = append(parts, c.Name+" <= "+formatNumber(*c.Max))
	}
	return "check(" + strings.Join(parts, " and ") + ")"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TableCheckConstraints returns the author-supplied table constraints that
// apply to the active dialect.
func TableCheckConstraints(s *Settings, t *schema.Table) []string {
	var lines []string
	for _, c := range t.Constraints {
		if c.AppliesTo(s.DialectName()) {
			lines = append(lines, "   constraint "+c.Name+" "+c.SQL)
		}
	}
	return lines
}
