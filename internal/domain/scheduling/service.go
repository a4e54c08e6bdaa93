package scheduling

import (
	"context"
	"errors"
	"fmt"
)

// ErrPatientNotFound is returned when the referenced patient does not exist.
var ErrPatientNotFound = errors.New("patient not found")

// ErrDoctorNotFound is returned when the referenced doctor does not exist.
var ErrDoctorNotFound = errors.New("doctor not found")

// PatientSource reports whether a patient exists. Wired to the patient
// service in main; declared here to keep the domains decoupled.
type PatientSource interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// DoctorSource reports whether a doctor exists.
type DoctorSource interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	appts    Repository
	patients PatientSource
	doctors  DoctorSource
}

func NewService(appts Repository, patients PatientSource, doctors DoctorSource) *Service {
	return &Service{appts: appts, patients: patients, doctors: doctors}
}

func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.PatientID == "" {
		return fmt.Errorf("patientId is required")
	}
	if a.DoctorID == "" {
		return fmt.Errorf("doctorId is required")
	}
	if a.AppointmentDate.IsZero() {
		return fmt.Errorf("appointmentDate is required")
	}
	if a.Status == "" {
		a.Status = StatusUpcoming
	}
	if !validStatus(a.Status) {
		return fmt.Errorf("invalid status %q", a.Status)
	}
	if !validType(a.Type) {
		return fmt.Errorf("invalid appointment type %q", a.Type)
	}

	ok, err := s.patients.Exists(ctx, a.PatientID)
	if err != nil {
		return fmt.Errorf("check patient: %w", err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", a.PatientID, ErrPatientNotFound)
	}

	ok, err = s.doctors.Exists(ctx, a.DoctorID)
	if err != nil {
		return fmt.Errorf("check doctor: %w", err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", a.DoctorID, ErrDoctorNotFound)
	}

	return s.appts.Create(ctx, a)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]Appointment, error) {
	return s.appts.ListByPatient(ctx, patientID)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID string) ([]Appointment, error) {
	return s.appts.ListByDoctor(ctx, doctorID)
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*Appointment, error) {
	if !validStatus(status) {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	return s.appts.UpdateStatus(ctx, id, status)
}
