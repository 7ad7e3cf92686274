package core

import (
	"errors"
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDString tests ID string conversion
func TestIDString(t *testing.T) {
	id := ID("test-123")
	if id.String() != "test-123" {
		t.Errorf("Expected String() to return 'test-123', got '%s'", id.String())
	}
}

// TestErrorTaxonomy tests that constructed errors match their sentinels
func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", NewNotFoundError("data/missing.csv"), ErrNotFound},
		{"sandbox violation", NewSandboxViolationError("/etc/passwd"), ErrSandboxViolation},
		{"parse", NewParseError("bad.csv", errors.New("wrong number of fields")), ErrParse},
		{"column not found", NewColumnNotFoundError("age"), ErrColumnNotFound},
		{"non-numeric column", NewNonNumericColumnError("city"), ErrNonNumericColumn},
		{"invalid columns", NewInvalidColumnsError([]string{"a", "b"}), ErrInvalidColumns},
		{"unsupported method", NewUnsupportedMethodError("dbscan"), ErrUnsupportedMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("Expected %v to match sentinel %v", tt.err, tt.sentinel)
			}
		})
	}
}

// TestErrorMessagesNameOffender ensures messages identify the offending input
func TestErrorMessagesNameOffender(t *testing.T) {
	err := NewColumnNotFoundError("revenue")
	if got := err.Error(); got != `column not found: "revenue"` {
		t.Errorf("Unexpected message: %s", got)
	}

	err = NewInvalidColumnsError([]string{"city", "notes"})
	if got := err.Error(); got != "non-numeric or missing columns requested: city, notes" {
		t.Errorf("Unexpected message: %s", got)
	}
}
