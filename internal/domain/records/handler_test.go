package records

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestHandlerCreate(t *testing.T) {
	svc, _ := setupService()
	h := NewHandler(svc)
	e := echo.New()

	body := `{"patientId":"demo-patient-123","eventType":"test","title":"Attention assessment","description":"Baseline attention span evaluation","eventDate":"2026-08-20T09:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/health-events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var got HealthEvent
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Errorf("expected status completed, got %q", got.Status)
	}
}

func TestHandlerCreateUnknownPatient(t *testing.T) {
	svc, _ := setupService()
	h := NewHandler(svc)
	e := echo.New()

	body := `{"patientId":"ghost","eventType":"note","title":"x","description":"y","eventDate":"2026-08-20T09:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/health-events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}

func TestHandlerListByPatient(t *testing.T) {
	svc, repo := setupService()
	h := NewHandler(svc)
	e := echo.New()

	repo.Create(context.Background(), &HealthEvent{
		PatientID: "demo-patient-123", EventType: TypeNote, Title: "seed",
		Description: "entry", EventDate: time.Now(), Status: StatusCompleted,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health-events/patient/demo-patient-123", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues("demo-patient-123")

	if err := h.ListByPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []HealthEvent
	json.Unmarshal(rec.Body.Bytes(), &got)
	if len(got) != 1 {
		t.Errorf("expected 1 event, got %d", len(got))
	}
}

func TestHandlerListUnknownPatient(t *testing.T) {
	svc, _ := setupService()
	h := NewHandler(svc)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/health-events/patient/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues("ghost")

	err := h.ListByPatient(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}
