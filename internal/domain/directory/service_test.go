package directory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
)

type mockRepo struct {
	doctors map[string]*Doctor
	nextID  int
}

func newMockRepo() *mockRepo {
	return &mockRepo{doctors: make(map[string]*Doctor)}
}

func (m *mockRepo) Create(_ context.Context, d *Doctor) error {
	if d.ID == "" {
		m.nextID++
		d.ID = fmt.Sprintf("generated-id-%d", m.nextID)
	}
	cp := *d
	m.doctors[d.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *mockRepo) List(_ context.Context, specialty string) ([]Doctor, error) {
	out := []Doctor{}
	for _, d := range m.doctors {
		if specialty != "" && !strings.Contains(strings.ToLower(d.Specialty), strings.ToLower(specialty)) {
			continue
		}
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockRepo) ListAvailable(_ context.Context) ([]Doctor, error) {
	out := []Doctor{}
	for _, d := range m.doctors {
		if d.IsAvailable {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockRepo) UpdateAvailability(_ context.Context, id string, available bool) (*Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, ErrNotFound
	}
	d.IsAvailable = available
	cp := *d
	return &cp, nil
}

func seedDoctors(t *testing.T, svc *Service) {
	t.Helper()
	doctors := []Doctor{
		{Name: "Dr. Priya Mehta", Specialty: "Child Psychology", Hospital: "Rural Health Center", Rating: 48, IsAvailable: true},
		{Name: "Dr. Rajesh Kumar", Specialty: "Pediatric Neurology", Hospital: "District Hospital", Rating: 46, IsAvailable: true},
		{Name: "Dr. Sunita Reddy", Specialty: "General Practitioner", Hospital: "Community Clinic", Rating: 44, IsAvailable: false},
	}
	for i := range doctors {
		if err := svc.Create(context.Background(), &doctors[i]); err != nil {
			t.Fatalf("seed doctor: %v", err)
		}
	}
}

func TestServiceCreateValidation(t *testing.T) {
	svc := NewService(newMockRepo())
	tests := []struct {
		name   string
		doctor Doctor
	}{
		{"missing name", Doctor{Specialty: "x", Hospital: "y", Rating: 40}},
		{"missing specialty", Doctor{Name: "a", Hospital: "y", Rating: 40}},
		{"missing hospital", Doctor{Name: "a", Specialty: "x", Rating: 40}},
		{"rating too high", Doctor{Name: "a", Specialty: "x", Hospital: "y", Rating: 51}},
		{"negative rating", Doctor{Name: "a", Specialty: "x", Hospital: "y", Rating: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.Create(context.Background(), &tt.doctor); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestServiceListSpecialtyFilter(t *testing.T) {
	svc := NewService(newMockRepo())
	seedDoctors(t, svc)

	got, err := svc.List(context.Background(), "psychology")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Dr. Priya Mehta" {
		t.Errorf("expected only the psychologist, got %+v", got)
	}

	all, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 doctors, got %d", len(all))
	}
}

func TestServiceListAvailable(t *testing.T) {
	svc := NewService(newMockRepo())
	seedDoctors(t, svc)

	got, err := svc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 available doctors, got %d", len(got))
	}
	for _, d := range got {
		if !d.IsAvailable {
			t.Errorf("unavailable doctor %s in available list", d.Name)
		}
	}
}

func TestServiceUpdateAvailability(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	seedDoctors(t, svc)

	var id string
	for _, d := range repo.doctors {
		if d.IsAvailable {
			id = d.ID
			break
		}
	}

	d, err := svc.UpdateAvailability(context.Background(), id, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.IsAvailable {
		t.Error("expected doctor to be unavailable after update")
	}

	if _, err := svc.UpdateAvailability(context.Background(), "missing", true); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
