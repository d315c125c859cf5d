package schema

import (
	"fmt"
	"strings"
)

// BooleanMode controls how logical columns are stored.
type BooleanMode uint8

// Boolean storage modes.
const (
	// BooleanNative uses the dialect's boolean or bit type.
	BooleanNative BooleanMode = iota
	// BooleanYesNo stores 'Yes' or 'No' in a 3-character column.
	BooleanYesNo
	// BooleanYN stores 'Y' or 'N' in a 1-character column.
	BooleanYN
)

// ParseBooleanMode parses "native", "yesno" or "yn".
func ParseBooleanMode(s string) (BooleanMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "native":
		return BooleanNative, nil
	case "yesno":
		return BooleanYesNo, nil
	case "yn":
		return BooleanYN, nil
	}
	return BooleanNative, fmt.Errorf("schema: unknown boolean mode %q", s)
}

// String returns the textual form accepted by ParseBooleanMode.
func (m BooleanMode) String() string {
	switch m {
	case BooleanYesNo:
		return "yesno"
	case BooleanYN:
		return "yn"
	default:
		return "native"
	}
}

// Literals returns the SQL literals for true and false in non-native
// modes. For BooleanNative it returns "true" and "false".
func (m BooleanMode) Literals() (t, f string) {
	switch m {
	case BooleanYesNo:
		return "'Yes'", "'No'"
	case BooleanYN:
		return "'Y'", "'N'"
	default:
		return "true", "false"
	}
}

// ForeignKeyMode controls how relations are enforced.
type ForeignKeyMode uint8

// Foreign key modes.
const (
	// ForeignKeyRelations emits DDL foreign keys.
	ForeignKeyRelations ForeignKeyMode = iota
	// ForeignKeyNone omits referential enforcement.
	ForeignKeyNone
	// ForeignKeyTriggers leaves enforcement to triggers.
	ForeignKeyTriggers
)

// ParseForeignKeyMode parses "none", "relations" or "triggers".
func ParseForeignKeyMode(s string) (ForeignKeyMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "relations":
		return ForeignKeyRelations, nil
	case "none":
		return ForeignKeyNone, nil
	case "triggers":
		return ForeignKeyTriggers, nil
	}
	return ForeignKeyRelations, fmt.Errorf("schema: unknown foreign key mode %q", s)
}

// String returns the textual form accepted by ParseForeignKeyMode.
func (m ForeignKeyMode) String() string {
	switch m {
	case ForeignKeyNone:
		return "none"
	case ForeignKeyTriggers:
		return "triggers"
	default:
		return "relations"
	}
}

// RelationType is the ON DELETE behaviour of a relation.
type RelationType uint8

// Relation types.
const (
	RelationEnforce RelationType = iota
	RelationCascade
	RelationSetNull
	RelationDoNothing
)

// ParseRelationType parses "cascade", "enforce", "setnull" or "donothing".
func ParseRelationType(s string) (RelationType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cascade":
		return RelationCascade, nil
	case "enforce":
		return RelationEnforce, nil
	case "setnull":
		return RelationSetNull, nil
	case "donothing":
		return RelationDoNothing, nil
	}
	return RelationEnforce, fmt.Errorf("schema: unknown relation type %q", s)
}

// String returns the textual form accepted by ParseRelationType.
func (r RelationType) String() string {
	switch r {
	case RelationCascade:
		return "cascade"
	case RelationSetNull:
		return "setnull"
	case RelationDoNothing:
		return "donothing"
	default:
		return "enforce"
	}
}

// KeyType distinguishes keys from plain indexes.
type KeyType uint8

// Key types.
const (
	KeyPrimary KeyType = iota
	KeyUnique
	KeyIndex
)

// String returns the key type name.
func (k KeyType) String() string {
	switch k {
	case KeyPrimary:
		return "primary"
	case KeyUnique:
		return "unique"
	default:
		return "index"
	}
}

// TriggerType is the event a trigger fires on.
type TriggerType uint8

// Trigger types.
const (
	TriggerUpdate TriggerType = iota
	TriggerDelete
)

// String returns the trigger event name.
func (t TriggerType) String() string {
	if t == TriggerDelete {
		return "delete"
	}
	return "update"
}

// OtherSQLOrder places an author-supplied SQL fragment before or after the
// generated objects.
type OtherSQLOrder uint8

// Other SQL placements.
const (
	OrderTop OtherSQLOrder = iota
	OrderBottom
)

// ParseOtherSQLOrder parses "top" or "bottom".
func ParseOtherSQLOrder(s string) (OtherSQLOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return OrderTop, nil
	case "bottom":
		return OrderBottom, nil
	}
	return OrderTop, fmt.Errorf("schema: unknown other sql order %q", s)
}

// String returns the placement name.
func (o OtherSQLOrder) String() string {
	if o == OrderBottom {
		return "bottom"
	}
	return "top"
}

// LockEscalation is the SQL Server lock escalation setting of a table.
type LockEscalation uint8

// Lock escalation settings.
const (
	LockEscalationAuto LockEscalation = iota
)

// String returns the setting name.
func (LockEscalation) String() string { return "auto" }

// A TableOption is a flag set on a table.
type TableOption uint

const (
	// OptionData marks tables whose rows are reference data.
	OptionData TableOption = 1 << iota

	// OptionNoExport excludes the table from data exports.
	OptionNoExport

	// OptionCompress requests page compression where supported.
	OptionCompress
)

// Has reports whether o includes every flag of opt.
func (o TableOption) Has(opt TableOption) bool { return o&opt == opt }

// String returns the option names joined by "|".
func (o TableOption) String() string {
	var names []string
	if o.Has(OptionData) {
		names = append(names, "data")
	}
	if o.Has(OptionNoExport) {
		names = append(names, "noExport")
	}
	if o.Has(OptionCompress) {
		names = append(names, "compress")
	}
	return strings.Join(names, "|")
}
