package core

import (
	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// RequestID identifies one analysis call for log correlation. Result records
// never carry it; it lives only in log lines.
type RequestID ID

// NewRequestID creates a request identifier for a single operation
func NewRequestID() RequestID {
	return RequestID(NewID())
}

func (id RequestID) String() string { return ID(id).String() }
