package directory

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no doctor exists for the given id.
var ErrNotFound = errors.New("doctor not found")

type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id string) (*Doctor, error)
	// List returns all doctors; a non-empty specialty restricts the result
	// to doctors whose specialty contains it, case-insensitively.
	List(ctx context.Context, specialty string) ([]Doctor, error)
	ListAvailable(ctx context.Context) ([]Doctor, error)
	UpdateAvailability(ctx context.Context, id string, available bool) (*Doctor, error)
}
