package domain

import (
	"strconv"
	"time"
)

type RecordID int64

func (id RecordID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func ParseRecordID(value string) (RecordID, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidRecordID
	}
	return RecordID(id), nil
}

// Record is one row of a form table. Values holds one entry per current user
// column; columns added after the row was inserted read back as nil.
type Record struct {
	ID        RecordID
	CreatedAt time.Time
	Values    map[string]any
}

// RowToRecord maps a row read as [id, created_at, columns...] positionally.
func RowToRecord(row []any, columns []TableColumn) Record {
	record := Record{Values: make(map[string]any, len(columns))}
	if len(row) > 0 {
		record.ID = RecordID(asInt64(row[0]))
	}
	if len(row) > 1 {
		record.CreatedAt = asTime(row[1])
	}
	for i, column := range columns {
		pos := i + 2
		if pos >= len(row) {
			record.Values[column.Name.String()] = nil
			continue
		}
		record.Values[column.Name.String()] = normalizeValue(row[pos], column)
	}
	return record
}

// Cell returns the value of a column formatted for tabular output.
func (r Record) Cell(column string) string {
	switch v := r.Values[column].(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return ""
	}
}

func asInt64(value any) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case []byte:
		n, _ := strconv.ParseInt(string(v), 10, 64)
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	default:
		return 0
	}
}

var _timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	DateLayout,
}

func asTime(value any) time.Time {
	var text string
	switch v := value.(type) {
	case time.Time:
		return v
	case []byte:
		text = string(v)
	case string:
		text = v
	default:
		return time.Time{}
	}
	for _, layout := range _timestampLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t
		}
	}
	return time.Time{}
}

func normalizeValue(value any, column TableColumn) any {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return normalizeValue(string(v), column)
	case time.Time:
		if column.StorageClass() == StorageDate {
			return v.Format(DateLayout)
		}
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	case string:
		if column.StorageClass() == StorageDate {
			if t := asTime(v); !t.IsZero() {
				return t.Format(DateLayout)
			}
		}
		return v
	case int64:
		if column.StorageClass() == StorageBoolean {
			return v != 0
		}
		return v
	default:
		return v
	}
}

// RecordPage is one page of records of a form, in insertion order.
type RecordPage struct {
	Columns []string
	Records []Record
	Total   int
}
