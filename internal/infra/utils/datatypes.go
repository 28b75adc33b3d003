package utils

import (
	"time"
)

const _timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Time renders as UTC with millisecond precision in JSON payloads.
type Time struct {
	time.Time
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(_timeLayout) + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	parsed, err := time.Parse(`"`+_timeLayout+`"`, string(data))
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
