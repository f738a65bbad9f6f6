// Package events defines the student lifecycle notifications published to
// the configured broker.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	StudentCreated Type = "student.created"
	StudentUpdated Type = "student.updated"
	StudentDeleted Type = "student.deleted"
)

type StudentEvent struct {
	EventID    string    `json:"eventId"`
	Type       Type      `json:"type"`
	StudentID  string    `json:"studentId"`
	Email      string    `json:"email,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewStudentEvent(t Type, studentID, email string) StudentEvent {
	return StudentEvent{
		EventID:    uuid.NewString(),
		Type:       t,
		StudentID:  studentID,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	}
}

// Publisher delivers student events. Implementations must be safe for
// concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event StudentEvent) error
	Close() error
}

// Noop drops every event. Used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, StudentEvent) error { return nil }

func (Noop) Close() error { return nil }
