// Package values contains domain value objects that encapsulate
// primitive types with validation.
package values

import (
	"fmt"

	"github.com/google/uuid"
)

// InvocationID uniquely identifies one block invocation.
// Every emitted event carries the ID of the invocation that produced it, so
// the pages of one traversal can be correlated by the consuming runtime.
type InvocationID struct {
	value uuid.UUID
}

// NewInvocationID creates a new random invocation ID
func NewInvocationID() InvocationID {
	return InvocationID{value: uuid.New()}
}

// ParseInvocationID parses a string into an InvocationID
func ParseInvocationID(s string) (InvocationID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return InvocationID{}, fmt.Errorf("invalid invocation ID: %w", err)
	}
	return InvocationID{value: id}, nil
}

// MustParseInvocationID parses a string or panics (for tests only)
func MustParseInvocationID(s string) InvocationID {
	id, err := ParseInvocationID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the string representation
func (i InvocationID) String() string {
	return i.value.String()
}

// UUID returns the underlying uuid.UUID
func (i InvocationID) UUID() uuid.UUID {
	return i.value
}

// IsZero returns true if this is the zero value
func (i InvocationID) IsZero() bool {
	return i.value == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler so the ID renders as a plain
// string in both JSON and YAML sinks.
func (i InvocationID) MarshalText() ([]byte, error) {
	return []byte(i.value.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (i *InvocationID) UnmarshalText(data []byte) error {
	id, err := ParseInvocationID(string(data))
	if err != nil {
		return err
	}
	*i = id
	return nil
}
