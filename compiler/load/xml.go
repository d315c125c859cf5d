package load

import "encoding/xml"

// Namespace is the XML namespace of schema documents.
const Namespace = "http://stano.com/database"

// Element types mirror the document markup one to one. Attributes are kept
// as strings so conversion can report bad values with their element.

type (
	databaseXML struct {
		XMLName        xml.Name    `xml:"database"`
		Version        string      `xml:"version,attr"`
		ForeignKeyMode string      `xml:"foreignKeyMode,attr"`
		BooleanMode    string      `xml:"booleanMode,attr"`
		Schemas        []schemaXML `xml:"schema"`
		contentXML
	}

	schemaXML struct {
		Name string `xml:"name,attr"`
		contentXML
	}

	// contentXML is what a schema holds, whether declared under <schema>
	// or directly under <database>.
	contentXML struct {
		Tables          []tableXML     `xml:"table"`
		Enums           []enumXML      `xml:"enum"`
		Views           []viewXML      `xml:"view"`
		Functions       []routineXML   `xml:"function"`
		Procedures      []routineXML   `xml:"procedure"`
		FunctionGroups  []routinesXML  `xml:"functions"`
		ProcedureGroups []routinesXML  `xml:"procedures"`
		OtherSQL        []otherSQLXML  `xml:"otherSql"`
		CustomSQL       []customSQLXML `xml:"customSQL"`
		CustomSQLAlias  []customSQLXML `xml:"customSql"`
	}

	tableXML struct {
		Name             string          `xml:"name,attr"`
		Data             string          `xml:"data,attr"`
		NoExport         string          `xml:"noExport,attr"`
		ExportDataColumn string          `xml:"exportDataColumn,attr"`
		Compress         string          `xml:"compress,attr"`
		LockEscalation   string          `xml:"lockEscalation,attr"`
		Columns          []columnXML     `xml:"columns>column"`
		Keys             *keysXML        `xml:"keys"`
		Relations        []relationXML   `xml:"relations>relation"`
		Triggers         *triggersXML    `xml:"triggers"`
		Constraints      []constraintXML `xml:"constraints>constraint"`
		Aggregations     []aggregateXML  `xml:"aggregations>aggregate"`
		InitialData      []vendorSQLXML  `xml:"initialData>sql"`
	}

	columnXML struct {
		Name        string `xml:"name,attr"`
		Type        string `xml:"type,attr"`
		Length      string `xml:"length,attr"`
		Scale       string `xml:"scale,attr"`
		Required    string `xml:"required,attr"`
		Unicode     string `xml:"unicode,attr"`
		IgnoreCase  string `xml:"ignoreCase,attr"`
		Default     string `xml:"default,attr"`
		Generated   string `xml:"generated,attr"`
		EnumType    string `xml:"enumType,attr"`
		ElementType string `xml:"elementType,attr"`
		MinValue    string `xml:"minValue,attr"`
		MaxValue    string `xml:"maxValue,attr"`
		Check       string `xml:"check"`
	}

	keysXML struct {
		Primary *keyXML    `xml:"primary"`
		Unique  []keyXML   `xml:"unique"`
		Index   []indexXML `xml:"index"`
	}

	keyXML struct {
		Cluster string    `xml:"cluster,attr"`
		Columns []nameXML `xml:"column"`
	}

	indexXML struct {
		Include  string    `xml:"include,attr"`
		Compress string    `xml:"compress,attr"`
		Unique   string    `xml:"unique,attr"`
		Columns  []nameXML `xml:"column"`
	}

	nameXML struct {
		Name string `xml:"name,attr"`
	}

	relationXML struct {
		Src                  string `xml:"src,attr"`
		Table                string `xml:"table,attr"`
		Column               string `xml:"column,attr"`
		Type                 string `xml:"type,attr"`
		DisableUsageChecking string `xml:"disableUsageChecking,attr"`
	}

	triggersXML struct {
		Update []vendorSQLXML `xml:"update"`
		Delete []vendorSQLXML `xml:"delete"`
	}

	constraintXML struct {
		Name         string `xml:"name,attr"`
		DatabaseType string `xml:"databaseType,attr"`
		SQL          string `xml:",chardata"`
	}

	aggregateXML struct {
		DestinationTable string           `xml:"destinationTable,attr"`
		DateColumn       string           `xml:"dateColumn,attr"`
		TimestampColumn  string           `xml:"timestampColumn,attr"`
		Frequency        string           `xml:"frequency,attr"`
		Criteria         string           `xml:"criteria,attr"`
		Sum              []sumXML         `xml:"sum"`
		Count            []countXML       `xml:"count"`
		Groups           []groupColumnXML `xml:"group>column"`
	}

	sumXML struct {
		SourceColumn      string `xml:"sourceColumn,attr"`
		DestinationColumn string `xml:"destinationColumn,attr"`
	}

	countXML struct {
		DestinationColumn string `xml:"destinationColumn,attr"`
	}

	groupColumnXML struct {
		Source            string `xml:"source,attr"`
		Destination       string `xml:"destination,attr"`
		SourceDerivedFrom string `xml:"sourceDerivedFrom,attr"`
	}

	enumXML struct {
		Name   string         `xml:"name,attr"`
		Values []enumValueXML `xml:"value"`
	}

	enumValueXML struct {
		Name string `xml:"name,attr"`
		Code string `xml:"code,attr"`
	}

	viewXML struct {
		Name         string `xml:"name,attr"`
		DatabaseType string `xml:"databaseType,attr"`
		SQL          string `xml:",chardata"`
	}

	routinesXML struct {
		Functions  []routineXML `xml:"function"`
		Procedures []routineXML `xml:"procedure"`
	}

	routineXML struct {
		Name string         `xml:"name,attr"`
		SQL  []vendorSQLXML `xml:"sql"`
	}

	vendorSQLXML struct {
		DatabaseType string `xml:"databaseType,attr"`
		SQL          string `xml:",chardata"`
	}

	otherSQLXML struct {
		DatabaseType string `xml:"databaseType,attr"`
		Order        string `xml:"order,attr"`
		SQL          string `xml:",chardata"`
	}

	// customSQLXML is the older per-dialect grouping of routine bodies.
	customSQLXML struct {
		DatabaseType string         `xml:"databaseType,attr"`
		Functions    []legacySQLXML `xml:"function"`
		Procedures   []legacySQLXML `xml:"procedure"`
	}

	legacySQLXML struct {
		Name string `xml:"name,attr"`
		SQL  string `xml:",chardata"`
	}
)
