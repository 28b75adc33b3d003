package domain

import (
	"fmt"
	"strings"
)

const DefaultMaxLength = 255

type LogicalType string

const (
	LogicalTypeShortText LogicalType = "short-text"
	LogicalTypeLongText  LogicalType = "long-text"
	LogicalTypeInteger   LogicalType = "integer"
	LogicalTypeDate      LogicalType = "date"
	LogicalTypeBoolean   LogicalType = "boolean"
	LogicalTypeDecimal   LogicalType = "decimal"
)

var _logicalTypeAliases = map[string]LogicalType{
	"short-text": LogicalTypeShortText,
	"varchar":    LogicalTypeShortText,
	"long-text":  LogicalTypeLongText,
	"text":       LogicalTypeLongText,
	"integer":    LogicalTypeInteger,
	"date":       LogicalTypeDate,
	"boolean":    LogicalTypeBoolean,
	"decimal":    LogicalTypeDecimal,
}

// ParseLogicalType accepts both the wizard vocabulary (short-text, long-text)
// and the SQL-flavoured one (VARCHAR, TEXT), case-insensitively.
func ParseLogicalType(kind string) (LogicalType, bool) {
	t, ok := _logicalTypeAliases[strings.ToLower(strings.TrimSpace(kind))]
	return t, ok
}

type FieldSpec struct {
	Name        string
	LogicalType string
	MaxLength   int
	Required    bool
}

// ColumnFragment is one column definition of a CREATE or ALTER statement.
type ColumnFragment struct {
	Name    Identifier
	Type    LogicalType
	SQLType string
	NotNull bool
	Default string
}

// Definition renders everything after the quoted column name.
func (f ColumnFragment) Definition() string {
	if !f.NotNull {
		return f.SQLType
	}
	return fmt.Sprintf("%s NOT NULL DEFAULT %s", f.SQLType, f.Default)
}

// MapLogicalType maps a field spec to a column fragment. Unknown logical
// types produce no fragment and the caller drops the field.
func MapLogicalType(name Identifier, spec FieldSpec) (ColumnFragment, bool) {
	logicalType, ok := ParseLogicalType(spec.LogicalType)
	if !ok {
		return ColumnFragment{}, false
	}

	fragment := ColumnFragment{Name: name, Type: logicalType, NotNull: spec.Required}
	switch logicalType {
	case LogicalTypeShortText:
		length := spec.MaxLength
		if length <= 0 {
			length = DefaultMaxLength
		}
		fragment.SQLType = fmt.Sprintf("VARCHAR(%d)", length)
		fragment.Default = "''"
	case LogicalTypeLongText:
		fragment.SQLType = "TEXT"
		fragment.Default = "''"
	case LogicalTypeInteger:
		fragment.SQLType = "INTEGER"
		fragment.Default = "0"
	case LogicalTypeDate:
		fragment.SQLType = "DATE"
		fragment.Default = "'1970-01-01'"
	case LogicalTypeBoolean:
		fragment.SQLType = "BOOLEAN"
		fragment.Default = "FALSE"
	case LogicalTypeDecimal:
		fragment.SQLType = "DECIMAL(10,2)"
		fragment.Default = "0"
	}

	return fragment, true
}
