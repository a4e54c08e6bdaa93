package scheduling

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no appointment exists for the given id.
var ErrNotFound = errors.New("appointment not found")

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) (*Appointment, error)
}
