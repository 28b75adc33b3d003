package domain

import "strings"

type PresentationKind string

const (
	PresentationEmail     PresentationKind = "email"
	PresentationDate      PresentationKind = "date"
	PresentationTime      PresentationKind = "time"
	PresentationInteger   PresentationKind = "integer"
	PresentationBoolean   PresentationKind = "boolean"
	PresentationLongText  PresentationKind = "long-text"
	PresentationShortText PresentationKind = "short-text"
)

// InferPresentationKind picks a field kind from the column name alone. Rules
// are ordered and the first match wins.
func InferPresentationKind(column string) PresentationKind {
	name := strings.ToLower(column)
	switch {
	case strings.Contains(name, "email"):
		return PresentationEmail
	case strings.Contains(name, "date"):
		return PresentationDate
	case strings.Contains(name, "time"):
		return PresentationTime
	case strings.Contains(name, "number") || strings.HasSuffix(name, "_id"):
		return PresentationInteger
	case strings.Contains(name, "boolean") || strings.HasPrefix(name, "is_"):
		return PresentationBoolean
	case containsAny(name, "description", "text", "notes", "comment"):
		return PresentationLongText
	default:
		return PresentationShortText
	}
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

type StorageClass string

const (
	StorageText    StorageClass = "text"
	StorageInteger StorageClass = "integer"
	StorageDecimal StorageClass = "decimal"
	StorageBoolean StorageClass = "boolean"
	StorageDate    StorageClass = "date"
)

// TableColumn is a user column read back from the catalog.
type TableColumn struct {
	Name     Identifier
	DataType string
	Nullable bool
}

func (c TableColumn) PresentationKind() PresentationKind {
	return InferPresentationKind(c.Name.String())
}

// StorageClass groups the engine specific type names reported by sqlite and
// postgres into the classes the value coercion understands.
func (c TableColumn) StorageClass() StorageClass {
	dataType := strings.ToLower(c.DataType)
	switch {
	case strings.Contains(dataType, "int") || dataType == "serial":
		return StorageInteger
	case strings.Contains(dataType, "bool"):
		return StorageBoolean
	case containsAny(dataType, "decimal", "numeric", "real", "double", "float"):
		return StorageDecimal
	case dataType == "date":
		return StorageDate
	default:
		return StorageText
	}
}

func ColumnNames(columns []TableColumn) []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name.String()
	}
	return names
}
