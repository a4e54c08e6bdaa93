package records

import (
	"context"
	"errors"
	"fmt"
)

// ErrPatientNotFound is returned when the referenced patient does not exist.
var ErrPatientNotFound = errors.New("patient not found")

// ErrDoctorNotFound is returned when the referenced doctor does not exist.
var ErrDoctorNotFound = errors.New("doctor not found")

// PatientSource reports whether a patient exists.
type PatientSource interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// DoctorSource reports whether a doctor exists.
type DoctorSource interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	events   Repository
	patients PatientSource
	doctors  DoctorSource
}

func NewService(events Repository, patients PatientSource, doctors DoctorSource) *Service {
	return &Service{events: events, patients: patients, doctors: doctors}
}

func (s *Service) Create(ctx context.Context, ev *HealthEvent) error {
	if ev.PatientID == "" {
		return fmt.Errorf("patientId is required")
	}
	if ev.Title == "" {
		return fmt.Errorf("title is required")
	}
	if ev.Description == "" {
		return fmt.Errorf("description is required")
	}
	if ev.EventDate.IsZero() {
		return fmt.Errorf("eventDate is required")
	}
	if !validEventType(ev.EventType) {
		return fmt.Errorf("invalid event type %q", ev.EventType)
	}
	if ev.Status == "" {
		ev.Status = StatusCompleted
	}
	if !validStatus(ev.Status) {
		return fmt.Errorf("invalid status %q", ev.Status)
	}

	ok, err := s.patients.Exists(ctx, ev.PatientID)
	if err != nil {
		return fmt.Errorf("check patient: %w", err)
	}
	if !ok {
		return ErrPatientNotFound
	}

	if ev.DoctorID != nil && *ev.DoctorID != "" {
		ok, err := s.doctors.Exists(ctx, *ev.DoctorID)
		if err != nil {
			return fmt.Errorf("check doctor: %w", err)
		}
		if !ok {
			return ErrDoctorNotFound
		}
	}

	return s.events.Create(ctx, ev)
}

// ListByPatient returns the patient's timeline, newest event first.
func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]HealthEvent, error) {
	ok, err := s.patients.Exists(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !ok {
		return nil, ErrPatientNotFound
	}
	return s.events.ListByPatient(ctx, patientID)
}
