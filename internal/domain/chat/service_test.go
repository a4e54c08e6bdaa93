package chat

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"
)

type mockRepo struct {
	messages []Message
	seq      int
}

func (m *mockRepo) Create(_ context.Context, msg *Message) error {
	m.seq++
	if msg.ID == "" {
		msg.ID = fmt.Sprintf("msg-%d", m.seq)
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().Add(time.Duration(m.seq) * time.Millisecond)
	}
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *mockRepo) ListBySession(_ context.Context, sessionID string) ([]Message, error) {
	out := []Message{}
	for _, msg := range m.messages {
		if msg.SessionID == sessionID {
			out = append(out, msg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type existsSet map[string]bool

func (s existsSet) Exists(_ context.Context, id string) (bool, error) {
	return s[id], nil
}

func setupService() (*Service, *mockRepo) {
	repo := &mockRepo{}
	return NewService(repo, existsSet{"demo-patient-123": true}), repo
}

func TestServiceCreate(t *testing.T) {
	svc, repo := setupService()

	m := &Message{PatientID: "demo-patient-123", Type: TypeUser, Content: "hello", SessionID: "s1"}
	if err := svc.Create(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.messages) != 1 {
		t.Error("message not persisted")
	}
}

func TestServiceCreateValidation(t *testing.T) {
	svc, _ := setupService()
	bad := "critical"

	tests := []struct {
		name string
		msg  Message
	}{
		{"missing patient", Message{Type: TypeUser, Content: "x", SessionID: "s1"}},
		{"missing session", Message{PatientID: "demo-patient-123", Type: TypeUser, Content: "x"}},
		{"missing content", Message{PatientID: "demo-patient-123", Type: TypeUser, SessionID: "s1"}},
		{"bad type", Message{PatientID: "demo-patient-123", Type: "bot", Content: "x", SessionID: "s1"}},
		{"bad severity", Message{PatientID: "demo-patient-123", Type: TypeAI, Content: "x", SessionID: "s1", Severity: &bad}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.Create(context.Background(), &tt.msg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestServiceCreateUnknownPatient(t *testing.T) {
	svc, _ := setupService()
	m := &Message{PatientID: "ghost", Type: TypeUser, Content: "x", SessionID: "s1"}
	if err := svc.Create(context.Background(), m); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestServiceHistoryOldestFirst(t *testing.T) {
	svc, _ := setupService()
	ctx := context.Background()

	contents := []string{"first", "second", "third"}
	for _, content := range contents {
		typ := TypeUser
		if content == "second" {
			typ = TypeAI
		}
		m := &Message{PatientID: "demo-patient-123", Type: typ, Content: content, SessionID: "s1"}
		if err := svc.Create(ctx, m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	other := &Message{PatientID: "demo-patient-123", Type: TypeUser, Content: "elsewhere", SessionID: "s2"}
	if err := svc.Create(ctx, other); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.History(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(got))
	}
	for i, want := range contents {
		if got[i].Content != want {
			t.Errorf("position %d: expected %q, got %q", i, want, got[i].Content)
		}
	}
}
