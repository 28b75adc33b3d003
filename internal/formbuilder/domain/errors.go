package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	ErrDDLFailed     = errors.New("ddl failed")
	ErrQueryFailed   = errors.New("query failed")
	ErrTableNotFound = errors.New("table not found")
	ErrTableExists   = errors.New("table already exists")

	ErrInvalidLanguage = errors.New("invalid language")
	ErrInvalidTemplate = errors.New("invalid template")
	ErrInvalidRecordID = errors.New("invalid record id")
)

type ErrInvalidIdentifier struct {
	Raw    string
	Reason string
}

func (e ErrInvalidIdentifier) Error() string {
	return fmt.Sprintf("invalid name %q: %s", e.Raw, e.Reason)
}

// SchemaError is returned by every schema store and introspector operation.
// Kind is one of the Err* sentinels above and Cause the driver error.
type SchemaError struct {
	Op    string
	Table Identifier
	Kind  error
	Cause error
}

func (e *SchemaError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Table, e.Kind, e.Cause)
}

func (e *SchemaError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func NewSchemaError(op string, table Identifier, kind, cause error) *SchemaError {
	return &SchemaError{Op: op, Table: table, Kind: kind, Cause: cause}
}

// ValidationErrors maps a field name to the message shown next to it. All
// problems of one submission are collected before it is returned.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := slices.Sorted(maps.Keys(v))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, v[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Add(field, message string) {
	if _, exists := v[field]; !exists {
		v[field] = message
	}
}

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// OrNil lets callers return the map directly as an error.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
