// Package load reads schema documents into a schema.DatabaseModel.
//
// A document is an XML file in the http://stano.com/database namespace:
//
//	<database xmlns="http://stano.com/database" version="1.2" booleanMode="yn">
//	  <enum name="Status">
//	    <value name="Open" code="O"/>
//	  </enum>
//	  <table name="users">
//	    <columns>
//	      <column name="id" type="SEQUENCE" required="true"/>
//	      <column name="status" type="ENUM" enumType="Status"/>
//	    </columns>
//	    <keys>
//	      <primary><column name="id"/></primary>
//	    </keys>
//	  </table>
//	  <schema name="billing">
//	    ...
//	  </schema>
//	</database>
//
// Content placed directly under <database> belongs to the default schema,
// which is only created when such content exists. Each <schema> element
// adds a named schema. After conversion the reverse relations of the model
// are derived with graph.BuildReverseRelations.
package load
