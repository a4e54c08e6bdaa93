package triage

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"github.com/ruralcare/ruralcare/internal/domain/chat"
	"github.com/ruralcare/ruralcare/internal/platform/llm"
)

// ErrPatientNotFound is returned by a PatientSource for an unknown id.
var ErrPatientNotFound = errors.New("patient not found")

// PatientInfo is the patient context forwarded to the model.
type PatientInfo struct {
	ID            string
	Age           int
	ConditionType string
}

// PatientSource resolves patient context. Wired to the patient service in
// main.
type PatientSource interface {
	Info(ctx context.Context, id string) (*PatientInfo, error)
}

// MessageStore persists and replays chat turns; the chat service satisfies
// it directly.
type MessageStore interface {
	Create(ctx context.Context, m *chat.Message) error
	History(ctx context.Context, sessionID string) ([]chat.Message, error)
}

type Handler struct {
	svc      *Service
	patients PatientSource
	store    MessageStore
}

func NewHandler(svc *Service, patients PatientSource, store MessageStore) *Handler {
	return &Handler{svc: svc, patients: patients, store: store}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/ai-chat", h.AIChat)
	g.POST("/assess-symptoms", h.AssessSymptoms)
}

type aiChatRequest struct {
	PatientID string `json:"patientId"`
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

type aiChatResponse struct {
	UserMessage *chat.Message `json:"userMessage"`
	AIMessage   *chat.Message `json:"aiMessage"`
	Severity    string        `json:"severity,omitempty"`
}

// AIChat runs one conversational turn: it stores the user's message,
// generates a reply with the session history as context, stores the reply,
// and returns both stored records.
func (h *Handler) AIChat(c echo.Context) error {
	var req aiChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.PatientID == "" || req.Message == "" || req.SessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patientId, message and sessionId are required")
	}

	ctx := c.Request().Context()
	patient, err := h.patients.Info(ctx, req.PatientID)
	if errors.Is(err, ErrPatientNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to process AI chat")
	}

	// History is captured before the new message is stored so the model
	// sees it exactly once, as the final user turn.
	prior, err := h.store.History(ctx, req.SessionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to process AI chat")
	}
	formatted := lo.Map(prior, func(m chat.Message, _ int) llm.Message {
		role := llm.RoleAssistant
		if m.Type == chat.TypeUser {
			role = llm.RoleUser
		}
		return llm.Message{Role: role, Content: m.Content}
	})

	userMessage := &chat.Message{
		PatientID: req.PatientID,
		Type:      chat.TypeUser,
		Content:   req.Message,
		SessionID: req.SessionID,
	}
	if err := h.store.Create(ctx, userMessage); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to process AI chat")
	}

	reply := h.svc.GenerateResponse(ctx, req.Message, formatted, patient.Age, patient.ConditionType)

	aiMessage := &chat.Message{
		PatientID: req.PatientID,
		Type:      chat.TypeAI,
		Content:   reply.Response,
		SessionID: req.SessionID,
	}
	if reply.Severity != "" {
		aiMessage.Severity = &reply.Severity
	}
	if err := h.store.Create(ctx, aiMessage); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to process AI chat")
	}

	return c.JSON(http.StatusOK, aiChatResponse{
		UserMessage: userMessage,
		AIMessage:   aiMessage,
		Severity:    reply.Severity,
	})
}

type assessRequest struct {
	PatientID string `json:"patientId"`
	Symptoms  string `json:"symptoms"`
}

type assessResponse struct {
	Assessment
	SuggestedDoctors []string `json:"suggestedDoctors"`
}

// AssessSymptoms returns a structured severity assessment, with doctor
// suggestions attached when professional care is called for.
func (h *Handler) AssessSymptoms(c echo.Context) error {
	var req assessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.PatientID == "" || req.Symptoms == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patientId and symptoms are required")
	}

	ctx := c.Request().Context()
	patient, err := h.patients.Info(ctx, req.PatientID)
	if errors.Is(err, ErrPatientNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to assess symptoms")
	}

	assessment := h.svc.AssessSymptoms(ctx, req.Symptoms, patient.Age, patient.ConditionType)

	suggested := []string{}
	if assessment.RequiresProfessionalCare {
		suggested = h.svc.SuggestDoctors(ctx, req.Symptoms, assessment.SuggestedDoctor)
	}

	return c.JSON(http.StatusOK, assessResponse{
		Assessment:       assessment,
		SuggestedDoctors: suggested,
	})
}
