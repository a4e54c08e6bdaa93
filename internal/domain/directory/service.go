package directory

import (
	"context"
	"errors"
	"fmt"
)

type Service struct {
	doctors Repository
}

func NewService(doctors Repository) *Service {
	return &Service{doctors: doctors}
}

func (s *Service) Create(ctx context.Context, d *Doctor) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if d.Specialty == "" {
		return fmt.Errorf("specialty is required")
	}
	if d.Hospital == "" {
		return fmt.Errorf("hospital is required")
	}
	if d.Rating < 0 || d.Rating > 50 {
		return fmt.Errorf("rating must be between 0 and 50 tenths")
	}
	return s.doctors.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id string) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, specialty string) ([]Doctor, error) {
	return s.doctors.List(ctx, specialty)
}

func (s *Service) ListAvailable(ctx context.Context) ([]Doctor, error) {
	return s.doctors.ListAvailable(ctx)
}

func (s *Service) UpdateAvailability(ctx context.Context, id string, available bool) (*Doctor, error) {
	return s.doctors.UpdateAvailability(ctx, id, available)
}

// Exists reports whether a doctor record exists. Scheduling uses this for
// referential checks before booking an appointment.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.doctors.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
