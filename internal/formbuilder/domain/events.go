package domain

import (
	"time"

	shareddomain "dms-server/internal/shared_kernel/domain"
)

type EventType string

const (
	EventFormCreated   EventType = "form_created"
	EventFieldsAdded   EventType = "fields_added"
	EventFormDeleted   EventType = "form_deleted"
	EventRecordCreated EventType = "record_created"
	EventRecordUpdated EventType = "record_updated"
	EventRecordDeleted EventType = "record_deleted"
)

// FormEvent describes a change to a form or to one of its records. Columns is
// only set for fields_added and RecordID only for record events.
type FormEvent struct {
	Type       EventType
	FormID     shareddomain.ID
	FormName   Identifier
	RecordID   RecordID
	Columns    []string
	OccurredAt time.Time
}

func (e FormEvent) IsRecordEvent() bool {
	switch e.Type {
	case EventRecordCreated, EventRecordUpdated, EventRecordDeleted:
		return true
	default:
		return false
	}
}

func NewFormEvent(eventType EventType, form LogicalForm) FormEvent {
	return FormEvent{
		Type:       eventType,
		FormID:     form.ID,
		FormName:   form.Name,
		OccurredAt: time.Now(),
	}
}

func NewRecordEvent(eventType EventType, form LogicalForm, recordID RecordID) FormEvent {
	event := NewFormEvent(eventType, form)
	event.RecordID = recordID
	return event
}
