package records

import "context"

type Repository interface {
	Create(ctx context.Context, ev *HealthEvent) error
	// ListByPatient returns the patient's timeline, newest event first.
	ListByPatient(ctx context.Context, patientID string) ([]HealthEvent, error)
}
