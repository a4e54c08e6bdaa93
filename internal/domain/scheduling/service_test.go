package scheduling

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type mockRepo struct {
	appts  map[string]*Appointment
	nextID int
}

func newMockRepo() *mockRepo {
	return &mockRepo{appts: make(map[string]*Appointment)}
}

func (m *mockRepo) Create(_ context.Context, a *Appointment) error {
	if a.ID == "" {
		m.nextID++
		a.ID = fmt.Sprintf("generated-id-%d", m.nextID)
	}
	cp := *a
	m.appts[a.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*Appointment, error) {
	a, ok := m.appts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID string) ([]Appointment, error) {
	out := []Appointment{}
	for _, a := range m.appts {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockRepo) ListByDoctor(_ context.Context, doctorID string) ([]Appointment, error) {
	out := []Appointment{}
	for _, a := range m.appts {
		if a.DoctorID == doctorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockRepo) UpdateStatus(_ context.Context, id, status string) (*Appointment, error) {
	a, ok := m.appts[id]
	if !ok {
		return nil, ErrNotFound
	}
	a.Status = status
	cp := *a
	return &cp, nil
}

// existsSet satisfies both PatientSource and DoctorSource.
type existsSet map[string]bool

func (s existsSet) Exists(_ context.Context, id string) (bool, error) {
	return s[id], nil
}

func setupService() (*Service, *mockRepo) {
	repo := newMockRepo()
	patients := existsSet{"demo-patient-123": true}
	doctors := existsSet{"doc-1": true}
	return NewService(repo, patients, doctors), repo
}

func TestServiceCreateDefaultsStatus(t *testing.T) {
	svc, _ := setupService()

	a := &Appointment{
		PatientID:       "demo-patient-123",
		DoctorID:        "doc-1",
		AppointmentDate: time.Now().Add(24 * time.Hour),
		Type:            TypeConsultation,
	}
	if err := svc.Create(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != StatusUpcoming {
		t.Errorf("expected status %q, got %q", StatusUpcoming, a.Status)
	}
}

func TestServiceCreateUnknownPatient(t *testing.T) {
	svc, _ := setupService()

	a := &Appointment{
		PatientID:       "ghost",
		DoctorID:        "doc-1",
		AppointmentDate: time.Now(),
		Type:            TypeConsultation,
	}
	err := svc.Create(context.Background(), a)
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestServiceCreateUnknownDoctor(t *testing.T) {
	svc, _ := setupService()

	a := &Appointment{
		PatientID:       "demo-patient-123",
		DoctorID:        "ghost",
		AppointmentDate: time.Now(),
		Type:            TypeFollowUp,
	}
	err := svc.Create(context.Background(), a)
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestServiceCreateInvalidType(t *testing.T) {
	svc, _ := setupService()

	a := &Appointment{
		PatientID:       "demo-patient-123",
		DoctorID:        "doc-1",
		AppointmentDate: time.Now(),
		Type:            "surgery",
	}
	if err := svc.Create(context.Background(), a); err == nil {
		t.Fatal("expected error for invalid type")
	}
}

func TestServiceUpdateStatus(t *testing.T) {
	svc, repo := setupService()

	a := &Appointment{
		PatientID:       "demo-patient-123",
		DoctorID:        "doc-1",
		AppointmentDate: time.Now(),
		Type:            TypeAssessment,
	}
	if err := svc.Create(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), a.ID, StatusCancelled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != StatusCancelled {
		t.Errorf("expected cancelled, got %q", updated.Status)
	}
	if repo.appts[a.ID].Status != StatusCancelled {
		t.Error("status not persisted")
	}

	if _, err := svc.UpdateStatus(context.Background(), a.ID, "rescheduled"); err == nil {
		t.Error("expected error for invalid status")
	}
	if _, err := svc.UpdateStatus(context.Background(), "missing", StatusCompleted); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceListByPatientAndDoctor(t *testing.T) {
	svc, _ := setupService()

	for i := 0; i < 2; i++ {
		a := &Appointment{
			PatientID:       "demo-patient-123",
			DoctorID:        "doc-1",
			AppointmentDate: time.Now().Add(time.Duration(i) * time.Hour),
			Type:            TypeConsultation,
		}
		if err := svc.Create(context.Background(), a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	byPatient, err := svc.ListByPatient(context.Background(), "demo-patient-123")
	if err != nil || len(byPatient) != 2 {
		t.Errorf("expected 2 appointments for patient, got %d (%v)", len(byPatient), err)
	}
	byDoctor, err := svc.ListByDoctor(context.Background(), "doc-1")
	if err != nil || len(byDoctor) != 2 {
		t.Errorf("expected 2 appointments for doctor, got %d (%v)", len(byDoctor), err)
	}
	none, err := svc.ListByPatient(context.Background(), "other")
	if err != nil || len(none) != 0 {
		t.Errorf("expected no appointments, got %d (%v)", len(none), err)
	}
}
