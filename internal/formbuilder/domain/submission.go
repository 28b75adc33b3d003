package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"dms-server/internal/infra/utils"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

const (
	msgRequired     = "this field is required"
	msgEmail        = "enter a valid email address"
	msgDate         = "enter a valid date (YYYY-MM-DD)"
	msgTime         = "enter a valid time (HH:MM)"
	msgInteger      = "enter a whole number"
	msgDecimal      = "enter a number"
	msgBoolean      = "enter true or false"
	msgMaxLengthFmt = "ensure this value has at most %d characters"
)

// Values holds typed values keyed by column name.
type Values map[string]any

type ColumnValue struct {
	Column Identifier
	Value  any
}

// Validate coerces every field of the descriptor from its raw submitted text.
// It never stops at the first problem. Keys unknown to the descriptor are
// ignored.
func (d FormDescriptor) Validate(raw map[string]string) (Values, ValidationErrors) {
	values := make(Values, len(d.Fields))
	errs := make(ValidationErrors)

	for _, field := range d.Fields {
		value, msg := field.coerce(raw[field.Name])
		if msg != "" {
			errs.Add(field.Name, msg)
			continue
		}
		values[field.Name] = value
	}

	return values, errs
}

func (f FieldDescriptor) coerce(raw string) (any, string) {
	text := strings.TrimSpace(raw)
	if f.Kind == PresentationBoolean {
		b, ok := parseBool(text)
		if !ok {
			return nil, msgBoolean
		}
		return b, ""
	}

	if text == "" {
		if f.Required {
			return nil, msgRequired
		}
		return nil, ""
	}

	switch f.Kind {
	case PresentationEmail:
		if !utils.IsValidEmail(text) {
			return nil, msgEmail
		}
		return text, ""
	case PresentationDate:
		t, err := time.Parse(DateLayout, text)
		if err != nil {
			return nil, msgDate
		}
		return t.Format(DateLayout), ""
	case PresentationTime:
		t, ok := parseClock(text)
		if !ok {
			return nil, msgTime
		}
		return t.Format(TimeLayout), ""
	case PresentationInteger:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, msgInteger
		}
		return n, ""
	case PresentationShortText:
		if f.MaxLength > 0 && utf8.RuneCountInString(raw) > f.MaxLength {
			return nil, fmt.Sprintf(msgMaxLengthFmt, f.MaxLength)
		}
		return raw, ""
	default:
		return raw, ""
	}
}

func parseBool(text string) (bool, bool) {
	switch strings.ToLower(text) {
	case "", "false", "0", "off", "no":
		return false, true
	case "true", "1", "on", "yes":
		return true, true
	default:
		return false, false
	}
}

func parseClock(text string) (time.Time, bool) {
	for _, layout := range []string{TimeLayout, "15:04"} {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CoerceForStorage narrows validated values to the catalog type of their
// column, so a numeric string lands in an INTEGER column as a number. Columns
// without a value are left out.
func CoerceForStorage(values Values, columns []TableColumn) ([]ColumnValue, ValidationErrors) {
	result := make([]ColumnValue, 0, len(values))
	errs := make(ValidationErrors)

	for _, column := range columns {
		value, ok := values[column.Name.String()]
		if !ok {
			continue
		}

		stored, msg := toStorage(value, column.StorageClass())
		if msg != "" {
			errs.Add(column.Name.String(), msg)
			continue
		}
		result = append(result, ColumnValue{Column: column.Name, Value: stored})
	}

	return result, errs
}

func toStorage(value any, class StorageClass) (any, string) {
	if value == nil {
		return nil, ""
	}

	switch class {
	case StorageInteger:
		switch v := value.(type) {
		case int64:
			return v, ""
		case bool:
			if v {
				return int64(1), ""
			}
			return int64(0), ""
		case string:
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return nil, msgInteger
			}
			return n, ""
		}
	case StorageDecimal:
		switch v := value.(type) {
		case int64:
			return float64(v), ""
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, msgDecimal
			}
			return f, ""
		}
	case StorageBoolean:
		switch v := value.(type) {
		case bool:
			return v, ""
		case int64:
			return v != 0, ""
		case string:
			b, ok := parseBool(strings.TrimSpace(v))
			if !ok {
				return nil, msgBoolean
			}
			return b, ""
		}
	case StorageDate:
		if v, ok := value.(string); ok {
			t, err := time.Parse(DateLayout, strings.TrimSpace(v))
			if err != nil {
				return nil, msgDate
			}
			return t.Format(DateLayout), ""
		}
	case StorageText:
		switch v := value.(type) {
		case string:
			return v, ""
		case int64:
			return strconv.FormatInt(v, 10), ""
		case bool:
			return strconv.FormatBool(v), ""
		}
	}

	return value, ""
}
