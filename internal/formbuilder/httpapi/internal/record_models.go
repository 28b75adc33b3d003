package internal

import (
	"time"

	"dms-server/internal/formbuilder/domain"
)

// Request models
type RecordRequest struct {
	Values map[string]string `json:"values"`
}

// Response models
type FieldDescriptorResponse struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	Kind      string `json:"kind"`
	Widget    string `json:"widget"`
	Required  bool   `json:"required"`
	MaxLength int    `json:"max_length,omitempty"`
	Value     string `json:"value,omitempty"`
	Error     string `json:"error,omitempty"`
}

type FormDescriptorResponse struct {
	Fields []FieldDescriptorResponse `json:"fields"`
}

type RecordResponse struct {
	ID        int64          `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Values    map[string]any `json:"values"`
}

type RecordCreatedResponse struct {
	ID int64 `json:"id"`
}

type SubmissionErrorResponse struct {
	Message string                 `json:"message"`
	Fields  map[string]string      `json:"fields"`
	Form    FormDescriptorResponse `json:"form"`
}

type RecordFeedMessage struct {
	Type       string    `json:"type"`
	FormID     string    `json:"form_id"`
	RecordID   int64     `json:"record_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Conversion functions
func ToFormDescriptorResponse(descriptor domain.FormDescriptor) FormDescriptorResponse {
	fields := make([]FieldDescriptorResponse, len(descriptor.Fields))
	for i, f := range descriptor.Fields {
		fields[i] = FieldDescriptorResponse{
			Name:      f.Name,
			Label:     f.Label,
			Kind:      string(f.Kind),
			Widget:    string(f.Widget),
			Required:  f.Required,
			MaxLength: f.MaxLength,
			Value:     f.Value,
			Error:     f.Error,
		}
	}
	return FormDescriptorResponse{Fields: fields}
}

func ToRecordResponse(record domain.Record) RecordResponse {
	values := record.Values
	if values == nil {
		values = map[string]any{}
	}
	return RecordResponse{
		ID:        int64(record.ID),
		CreatedAt: record.CreatedAt,
		Values:    values,
	}
}

func ToRecordResponses(records []domain.Record) []RecordResponse {
	responses := make([]RecordResponse, len(records))
	for i, record := range records {
		responses[i] = ToRecordResponse(record)
	}
	return responses
}

func ToRecordFeedMessage(event domain.FormEvent) RecordFeedMessage {
	return RecordFeedMessage{
		Type:       string(event.Type),
		FormID:     event.FormID.String(),
		RecordID:   int64(event.RecordID),
		OccurredAt: event.OccurredAt,
	}
}
