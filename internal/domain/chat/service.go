package chat

import (
	"context"
	"errors"
	"fmt"
)

// ErrPatientNotFound is returned when the referenced patient does not exist.
var ErrPatientNotFound = errors.New("patient not found")

// PatientSource reports whether a patient exists.
type PatientSource interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	messages Repository
	patients PatientSource
}

func NewService(messages Repository, patients PatientSource) *Service {
	return &Service{messages: messages, patients: patients}
}

func (s *Service) Create(ctx context.Context, m *Message) error {
	if m.PatientID == "" {
		return fmt.Errorf("patientId is required")
	}
	if m.SessionID == "" {
		return fmt.Errorf("sessionId is required")
	}
	if m.Content == "" {
		return fmt.Errorf("content is required")
	}
	if !validType(m.Type) {
		return fmt.Errorf("invalid message type %q", m.Type)
	}
	if m.Severity != nil && !ValidSeverity(*m.Severity) {
		return fmt.Errorf("invalid severity %q", *m.Severity)
	}

	ok, err := s.patients.Exists(ctx, m.PatientID)
	if err != nil {
		return fmt.Errorf("check patient: %w", err)
	}
	if !ok {
		return ErrPatientNotFound
	}

	return s.messages.Create(ctx, m)
}

// History returns the session's messages, oldest first.
func (s *Service) History(ctx context.Context, sessionID string) ([]Message, error) {
	return s.messages.ListBySession(ctx, sessionID)
}
