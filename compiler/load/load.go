package load

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/syssam/ddlgen/dialect"
	"github.com/syssam/ddlgen/graph"
	"github.com/syssam/ddlgen/schema"
	"github.com/syssam/ddlgen/schema/field"
)

// File loads the schema document stored at path.
func File(path string) (*schema.DatabaseModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load: open schema file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a schema document and converts it into a model whose
// reverse relations are already built. A document that cannot be decoded,
// or that holds an unknown type, mode, relation type or dialect name, is
// reported as a *ParseError. Relations pointing at missing tables or
// columns are reported as ddlgen.NotFoundError.
func Parse(r io.Reader) (*schema.DatabaseModel, error) {
	var doc databaseXML
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return nil, newParseError("database", "", err)
	}
	if doc.XMLName.Space != Namespace {
		return nil, newParseError("database", "", fmt.Errorf("namespace %q, want %q", doc.XMLName.Space, Namespace))
	}
	m, err := convertDatabase(&doc)
	if err != nil {
		return nil, err
	}
	if err := graph.BuildReverseRelations(m); err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return m, nil
}

func convertDatabase(doc *databaseXML) (*schema.DatabaseModel, error) {
	m := schema.NewDatabaseModel()
	if doc.Version != "" {
		m.Version = schema.ParseVersion(doc.Version)
	}
	if doc.BooleanMode != "" {
		mode, err := schema.ParseBooleanMode(doc.BooleanMode)
		if err != nil {
			return nil, newParseError("database", "booleanMode", err)
		}
		m.BooleanMode = mode
	}
	if doc.ForeignKeyMode != "" {
		mode, err := schema.ParseForeignKeyMode(doc.ForeignKeyMode)
		if err != nil {
			return nil, newParseError("database", "foreignKeyMode", err)
		}
		m.ForeignKeyMode = mode
	}
	if !doc.contentXML.empty() {
		s, err := convertSchema("", &doc.contentXML)
		if err != nil {
			return nil, err
		}
		if err := m.AddSchema(s); err != nil {
			return nil, newParseError("database", "", err)
		}
	}
	for i := range doc.Schemas {
		x := &doc.Schemas[i]
		if strings.TrimSpace(x.Name) == "" {
			return nil, newParseError("schema", "", errors.New("missing name"))
		}
		s, err := convertSchema(x.Name, &x.contentXML)
		if err != nil {
			return nil, err
		}
		if err := m.AddSchema(s); err != nil {
			return nil, newParseError("schema", x.Name, err)
		}
	}
	return m, nil
}

// empty reports whether nothing was declared.
func (c *contentXML) empty() bool {
	return len(c.Tables) == 0 && len(c.Enums) == 0 && len(c.Views) == 0 &&
		len(c.Functions) == 0 && len(c.Procedures) == 0 &&
		len(c.FunctionGroups) == 0 && len(c.ProcedureGroups) == 0 &&
		len(c.OtherSQL) == 0 && len(c.CustomSQL) == 0 && len(c.CustomSQLAlias) == 0
}

func convertSchema(name string, c *contentXML) (*schema.Schema, error) {
	s := schema.NewSchema(name)
	for i := range c.Enums {
		e, err := convertEnum(&c.Enums[i])
		if err != nil {
			return nil, err
		}
		if err := s.AddEnumType(e); err != nil {
			return nil, newParseError("enum", e.Name, err)
		}
	}
	for i := range c.Tables {
		t, err := convertTable(name, &c.Tables[i])
		if err != nil {
			return nil, err
		}
		if err := s.AddTable(t); err != nil {
			return nil, newParseError("table", t.Name, err)
		}
	}
	for _, x := range c.Views {
		d, err := parseDialect("view", x.Name, x.DatabaseType)
		if err != nil {
			return nil, err
		}
		s.AddView(&schema.View{Name: x.Name, Dialect: d, SQL: text(x.SQL)})
	}
	functions := c.Functions
	procedures := c.Procedures
	for _, g := range c.FunctionGroups {
		functions = append(functions, g.Functions...)
	}
	for _, g := range c.ProcedureGroups {
		procedures = append(procedures, g.Procedures...)
	}
	for _, x := range functions {
		for _, body := range x.SQL {
			d, err := parseDialect("function", x.Name, body.DatabaseType)
			if err != nil {
				return nil, err
			}
			s.AddFunction(&schema.Function{Name: x.Name, Dialect: d, SQL: text(body.SQL)})
		}
	}
	for _, x := range procedures {
		for _, body := range x.SQL {
			d, err := parseDialect("procedure", x.Name, body.DatabaseType)
			if err != nil {
				return nil, err
			}
			s.AddProcedure(&schema.Procedure{Name: x.Name, Dialect: d, SQL: text(body.SQL)})
		}
	}
	for _, x := range append(c.CustomSQL, c.CustomSQLAlias...) {
		if err := convertCustomSQL(s, x); err != nil {
			return nil, err
		}
	}
	for _, x := range c.OtherSQL {
		d, err := parseDialect("otherSql", "", x.DatabaseType)
		if err != nil {
			return nil, err
		}
		order := schema.OrderTop
		if x.Order != "" {
			if order, err = schema.ParseOtherSQLOrder(x.Order); err != nil {
				return nil, newParseError("otherSql", x.Order, err)
			}
		}
		s.AddOtherSQL(&schema.OtherSQL{Dialect: d, Order: order, SQL: text(x.SQL)})
	}
	return s, nil
}

func convertCustomSQL(s *schema.Schema, x customSQLXML) error {
	if strings.TrimSpace(x.DatabaseType) == "" {
		return newParseError("customSQL", "", errors.New("missing databaseType"))
	}
	d, err := parseDialect("customSQL", "", x.DatabaseType)
	if err != nil {
		return err
	}
	for _, f := range x.Functions {
		s.AddFunction(&schema.Function{Name: f.Name, Dialect: d, SQL: text(f.SQL)})
	}
	for _, p := range x.Procedures {
		s.AddProcedure(&schema.Procedure{Name: p.Name, Dialect: d, SQL: text(p.SQL)})
	}
	return nil
}

func convertEnum(x *enumXML) (*schema.EnumType, error) {
	if x.Name == "" {
		return nil, newParseError("enum", "", errors.New("missing name"))
	}
	values := make([]*schema.EnumValue, 0, len(x.Values))
	for _, v := range x.Values {
		if v.Name == "" {
			return nil, newParseError("value", x.Name, errors.New("missing name"))
		}
		values = append(values, schema.NewEnumValue(v.Name, v.Code))
	}
	return schema.NewEnumType(x.Name, values...), nil
}

func convertTable(schemaName string, x *tableXML) (*schema.Table, error) {
	if x.Name == "" {
		return nil, newParseError("table", "", errors.New("missing name"))
	}
	b := schema.NewTable(x.Name).Schema(schemaName).ExportDataColumn(x.ExportDataColumn)
	options := []struct {
		attr, value string
		opt         schema.TableOption
	}{
		{"data", x.Data, schema.OptionData},
		{"noExport", x.NoExport, schema.OptionNoExport},
		{"compress", x.Compress, schema.OptionCompress},
	}
	for _, o := range options {
		on, err := parseBool("table", x.Name, o.attr, o.value)
		if err != nil {
			return nil, err
		}
		if on {
			b.Options(o.opt)
		}
	}
	if le := strings.TrimSpace(x.LockEscalation); le != "" && !strings.EqualFold(le, schema.LockEscalationAuto.String()) {
		return nil, newParseError("table", x.Name, fmt.Errorf("unknown lockEscalation %q", le))
	}
	for i := range x.Columns {
		c, err := convertColumn(&x.Columns[i])
		if err != nil {
			return nil, err
		}
		b.Columns(c)
	}
	if x.Keys != nil {
		keys, err := convertKeys(x.Name, x.Keys)
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			b.Key(k)
		}
	}
	if x.Triggers != nil {
		for _, tr := range []struct {
			typ  schema.TriggerType
			defs []vendorSQLXML
		}{
			{schema.TriggerUpdate, x.Triggers.Update},
			{schema.TriggerDelete, x.Triggers.Delete},
		} {
			for _, def := range tr.defs {
				d, err := parseDialect("triggers", x.Name, def.DatabaseType)
				if err != nil {
					return nil, err
				}
				b.Trigger(tr.typ, d, text(def.SQL))
			}
		}
	}
	for _, c := range x.Constraints {
		d, err := parseDialect("constraint", c.Name, c.DatabaseType)
		if err != nil {
			return nil, err
		}
		b.Constraint(c.Name, d, text(c.SQL))
	}
	for _, row := range x.InitialData {
		d, err := parseDialect("initialData", x.Name, row.DatabaseType)
		if err != nil {
			return nil, err
		}
		b.InitialData(d, text(row.SQL))
	}
	for i := range x.Aggregations {
		b.Aggregation(convertAggregation(&x.Aggregations[i]))
	}
	t, err := b.Build()
	if err != nil {
		return nil, newParseError("table", x.Name, err)
	}
	for _, r := range x.Relations {
		rel, err := convertRelation(x.Name, r)
		if err != nil {
			return nil, err
		}
		t.AddRelation(rel)
	}
	return t, nil
}

func convertColumn(x *columnXML) (*schema.ColumnBuilder, error) {
	fail := func(err error) error { return newParseError("column", x.Name, err) }
	if x.Name == "" {
		return nil, fail(errors.New("missing name"))
	}
	typ, err := field.ParseType(x.Type)
	if err != nil {
		return nil, fail(err)
	}
	b := schema.NewColumn(x.Name, typ)
	if x.Length != "" {
		n, err := strconv.Atoi(strings.TrimSpace(x.Length))
		if err != nil {
			return nil, fail(fmt.Errorf("length: %w", err))
		}
		b.Length(n)
	}
	if x.Scale != "" {
		n, err := strconv.Atoi(strings.TrimSpace(x.Scale))
		if err != nil {
			return nil, fail(fmt.Errorf("scale: %w", err))
		}
		b.Scale(n)
	}
	flags := []struct {
		attr, value string
		set         func() *schema.ColumnBuilder
	}{
		{"required", x.Required, b.Required},
		{"unicode", x.Unicode, b.Unicode},
		{"ignoreCase", x.IgnoreCase, b.IgnoreCase},
	}
	for _, f := range flags {
		on, err := parseBool("column", x.Name, f.attr, f.value)
		if err != nil {
			return nil, err
		}
		if on {
			f.set()
		}
	}
	if x.Default != "" {
		b.Default(x.Default)
	}
	if x.Generated != "" {
		b.Generated(x.Generated)
	}
	if x.EnumType != "" {
		b.Enum(x.EnumType)
	}
	if x.ElementType != "" {
		elem, err := field.ParseType(x.ElementType)
		if err != nil {
			return nil, fail(fmt.Errorf("elementType: %w", err))
		}
		b.Element(elem)
	}
	if x.MinValue != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(x.MinValue), 64)
		if err != nil {
			return nil, fail(fmt.Errorf("minValue: %w", err))
		}
		b.Min(v)
	}
	if x.MaxValue != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(x.MaxValue), 64)
		if err != nil {
			return nil, fail(fmt.Errorf("maxValue: %w", err))
		}
		b.Max(v)
	}
	if check := text(x.Check); check != "" {
		b.Check(check)
	}
	return b, nil
}

func convertKeys(table string, x *keysXML) ([]*schema.Key, error) {
	var keys []*schema.Key
	plain := func(typ schema.KeyType, k *keyXML) (*schema.Key, error) {
		cluster, err := parseBool(typ.String(), table, "cluster", k.Cluster)
		if err != nil {
			return nil, err
		}
		key := schema.NewKey(typ, names(k.Columns)...)
		key.Cluster = cluster
		return key, nil
	}
	if x.Primary != nil {
		k, err := plain(schema.KeyPrimary, x.Primary)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	for i := range x.Unique {
		k, err := plain(schema.KeyUnique, &x.Unique[i])
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	for _, idx := range x.Index {
		compress, err := parseBool("index", table, "compress", idx.Compress)
		if err != nil {
			return nil, err
		}
		unique, err := parseBool("index", table, "unique", idx.Unique)
		if err != nil {
			return nil, err
		}
		k := schema.NewKey(schema.KeyIndex, names(idx.Columns)...)
		k.Compress = compress
		k.Unique = unique
		for _, c := range strings.Split(idx.Include, ",") {
			if c = strings.TrimSpace(c); c != "" {
				k.Include = append(k.Include, c)
			}
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func convertRelation(table string, x relationXML) (*schema.Relation, error) {
	typ := schema.RelationEnforce
	if x.Type != "" {
		var err error
		if typ, err = schema.ParseRelationType(x.Type); err != nil {
			return nil, newParseError("relation", table+"."+x.Src, err)
		}
	}
	disable, err := parseBool("relation", table+"."+x.Src, "disableUsageChecking", x.DisableUsageChecking)
	if err != nil {
		return nil, err
	}
	return &schema.Relation{
		FromTable:            table,
		FromColumn:           x.Src,
		ToTable:              x.Table,
		ToColumn:             x.Column,
		Type:                 typ,
		DisableUsageChecking: disable,
	}, nil
}

func convertAggregation(x *aggregateXML) *schema.Aggregation {
	a := &schema.Aggregation{
		DestinationTable: x.DestinationTable,
		DateColumn:       x.DateColumn,
		TimestampColumn:  x.TimestampColumn,
		Criteria:         x.Criteria,
		Frequency:        schema.ParseFrequency(x.Frequency),
	}
	for _, s := range x.Sum {
		a.Sum(s.SourceColumn, s.DestinationColumn)
	}
	for _, c := range x.Count {
		a.Count(c.DestinationColumn)
	}
	for _, g := range x.Groups {
		a.Group(g.Source, g.Destination, g.SourceDerivedFrom)
	}
	return a
}

// parseDialect maps a databaseType attribute to a dialect name. An empty
// attribute applies the object to every dialect.
func parseDialect(element, name, v string) (string, error) {
	if strings.TrimSpace(v) == "" {
		return "", nil
	}
	d, err := dialect.Parse(v)
	if err != nil {
		return "", newParseError(element, name, err)
	}
	return d, nil
}

// parseBool accepts true/false, 1/0, yes/no and on/off. An empty value is
// false.
func parseBool(element, name, attr, v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return false, nil
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	}
	return false, newParseError(element, name, fmt.Errorf("invalid %s value %q", attr, v))
}

func names(cols []nameXML) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Name
	}
	return out
}

func text(s string) string {
	return strings.TrimSpace(s)
}
