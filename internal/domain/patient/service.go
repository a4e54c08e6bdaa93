package patient

import (
	"context"
	"errors"
	"fmt"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Contact == "" {
		return fmt.Errorf("contact is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("age must not be negative")
	}
	if p.ConditionType == "" {
		return fmt.Errorf("conditionType is required")
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id string) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

// Update applies a partial update and returns the updated record.
func (s *Service) Update(ctx context.Context, id string, params UpdateParams) (*Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		if *params.Name == "" {
			return nil, fmt.Errorf("name must not be empty")
		}
		p.Name = *params.Name
	}
	if params.Age != nil {
		if *params.Age < 0 {
			return nil, fmt.Errorf("age must not be negative")
		}
		p.Age = *params.Age
	}
	if params.ConditionType != nil {
		p.ConditionType = *params.ConditionType
	}
	if params.Contact != nil {
		if *params.Contact == "" {
			return nil, fmt.Errorf("contact must not be empty")
		}
		p.Contact = *params.Contact
	}
	if params.EmergencyContact != nil {
		p.EmergencyContact = params.EmergencyContact
	}

	if err := s.patients.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Exists reports whether a patient record exists. Other domains use this for
// referential checks before creating dependent records.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.patients.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
