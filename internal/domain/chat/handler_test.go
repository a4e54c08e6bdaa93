package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHandlerCreate(t *testing.T) {
	svc, _ := setupService()
	h := NewHandler(svc)
	e := echo.New()

	body := `{"patientId":"demo-patient-123","type":"user","content":"I have trouble focusing","sessionId":"s1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var got Message
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.ID == "" {
		t.Error("expected id in response")
	}
}

func TestHandlerCreateUnknownPatient(t *testing.T) {
	svc, _ := setupService()
	h := NewHandler(svc)
	e := echo.New()

	body := `{"patientId":"ghost","type":"user","content":"x","sessionId":"s1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}

func TestHandlerHistory(t *testing.T) {
	svc, repo := setupService()
	h := NewHandler(svc)
	e := echo.New()

	repo.Create(context.Background(), &Message{
		PatientID: "demo-patient-123", Type: TypeUser, Content: "hello", SessionID: "s1",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/chat/s1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("sessionId")
	c.SetParamValues("s1")

	if err := h.History(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []Message
	json.Unmarshal(rec.Body.Bytes(), &got)
	if len(got) != 1 || got[0].Content != "hello" {
		t.Errorf("unexpected history %+v", got)
	}
}
