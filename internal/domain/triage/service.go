// Package triage hosts the AI side of the patient experience: free-form
// chat, symptom assessment, and doctor suggestions. Every operation here
// degrades to a safe canned answer instead of surfacing an LLM failure to
// the patient.
package triage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/ruralcare/ruralcare/internal/domain/chat"
	"github.com/ruralcare/ruralcare/internal/platform/llm"
)

// Severity labels reused from chat so stored messages and assessments agree.
const (
	SeverityMild     = chat.SeverityMild
	SeverityModerate = chat.SeverityModerate
	SeveritySevere   = chat.SeveritySevere
)

const replyMaxTokens = 300

// historyWindow is the number of trailing history turns sent to the model
// (three exchanges).
const historyWindow = 6

// symptomKeywords marks a chat message as symptom-related; such messages get
// a severity assessment alongside the conversational reply.
var symptomKeywords = []string{"symptom", "pain", "feel", "trouble", "difficulty"}

// Assessment is the structured result of a symptom assessment.
type Assessment struct {
	Severity                 string `json:"severity"`
	Recommendation           string `json:"recommendation"`
	RequiresProfessionalCare bool   `json:"requiresProfessionalCare"`
	SuggestedDoctor          string `json:"suggestedDoctor,omitempty"`
	SelfCareAdvice           string `json:"selfCareAdvice,omitempty"`
}

// ChatReply is the outcome of one conversational turn. Severity is empty
// unless the user's message looked symptom-related.
type ChatReply struct {
	Response string
	Severity string
}

// Doctor is the slice of the directory the suggester needs.
type Doctor struct {
	Name        string
	Specialty   string
	Hospital    string
	IsAvailable bool
}

// DoctorSource lists the directory. Wired to the directory service in main.
type DoctorSource interface {
	ListDoctors(ctx context.Context) ([]Doctor, error)
}

type Service struct {
	llm     llm.Client
	doctors DoctorSource
}

func NewService(client llm.Client, doctors DoctorSource) *Service {
	return &Service{llm: client, doctors: doctors}
}

// GenerateResponse produces a conversational reply to the user's message.
// History is the prior session turns, oldest first; only the trailing window
// is forwarded to the model. Never returns an error: LLM failures collapse
// to a canned reply.
func (s *Service) GenerateResponse(ctx context.Context, userMessage string, history []llm.Message, patientAge int, conditionType string) ChatReply {
	systemPrompt := fmt.Sprintf(chatSystemPromptFormat,
		describeAge(patientAge), describeCondition(conditionType))

	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userMessage})

	response, err := s.llm.Complete(ctx, llm.Request{
		Messages:  messages,
		MaxTokens: replyMaxTokens,
	})
	if err != nil {
		log.Error().Err(err).Msg("ai chat reply failed")
		return ChatReply{
			Response: "I'm having trouble responding right now. Please try again later or contact a healthcare provider if this is urgent.",
		}
	}
	if response == "" {
		response = "I understand you're looking for help. Please consider speaking with a healthcare provider for personalized guidance."
	}

	reply := ChatReply{Response: response}
	if isSymptomQuery(userMessage) {
		assessment := s.AssessSymptoms(ctx, userMessage, patientAge, conditionType)
		reply.Severity = assessment.Severity
	}
	return reply
}

// AssessSymptoms asks the model for a structured severity assessment. Never
// returns an error: on any failure the caller gets a cautious fallback that
// directs the patient to professional care.
func (s *Service) AssessSymptoms(ctx context.Context, symptoms string, patientAge int, conditionType string) Assessment {
	userPrompt := fmt.Sprintf(assessmentUserPromptFormat,
		describeAge(patientAge), describeCondition(conditionType), symptoms)

	raw, err := s.llm.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: assessmentSystemPrompt},
			{Role: llm.RoleUser, Content: userPrompt},
		},
		JSONObject: true,
	})
	if err != nil {
		log.Error().Err(err).Msg("ai assessment failed")
		return fallbackAssessment()
	}

	var parsed Assessment
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Error().Err(err).Msg("ai assessment returned malformed json")
		return fallbackAssessment()
	}
	// An empty object parses cleanly but carries no assessment; treat it
	// like a parse failure rather than defaulting field by field.
	if parsed == (Assessment{}) {
		log.Error().Msg("ai assessment returned an empty object")
		return fallbackAssessment()
	}

	if !chat.ValidSeverity(parsed.Severity) {
		parsed.Severity = SeverityModerate
	}
	if parsed.Recommendation == "" {
		parsed.Recommendation = "Please monitor symptoms and consult a healthcare provider if they persist."
	}
	return parsed
}

// SuggestDoctors picks up to three available doctors for the symptoms,
// preferring a specialty match, then symptom keywords, then general
// practitioners. Never returns an error.
func (s *Service) SuggestDoctors(ctx context.Context, symptoms, specialty string) []string {
	doctors, err := s.doctors.ListDoctors(ctx)
	if err != nil {
		log.Error().Err(err).Msg("doctor suggestion failed")
		return []string{"Please check our doctor directory for available specialists."}
	}

	available := lo.Filter(doctors, func(d Doctor, _ int) bool { return d.IsAvailable })
	if len(available) == 0 {
		return []string{"No doctors are currently available. Please try again later."}
	}

	relevant := available
	if specialty != "" {
		relevant = filterSpecialty(available, specialty)
	}

	if len(relevant) == 0 {
		lower := strings.ToLower(symptoms)
		switch {
		case strings.Contains(lower, "adhd") || strings.Contains(lower, "focus") || strings.Contains(lower, "attention"):
			relevant = lo.Filter(available, func(d Doctor, _ int) bool {
				return specialtyContains(d, "adhd") || specialtyContains(d, "neurologist")
			})
		case strings.Contains(lower, "autism") || strings.Contains(lower, "social") || strings.Contains(lower, "behavior"):
			relevant = lo.Filter(available, func(d Doctor, _ int) bool {
				return specialtyContains(d, "psychology") || specialtyContains(d, "neurologist")
			})
		}
	}

	if len(relevant) == 0 {
		relevant = lo.Filter(available, func(d Doctor, _ int) bool {
			return specialtyContains(d, "family") || specialtyContains(d, "general")
		})
	}
	if len(relevant) == 0 {
		relevant = lo.Slice(available, 0, 2)
	}

	return lo.Map(lo.Slice(relevant, 0, 3), func(d Doctor, _ int) string {
		return fmt.Sprintf("Dr. %s (%s) at %s", d.Name, d.Specialty, d.Hospital)
	})
}

func fallbackAssessment() Assessment {
	return Assessment{
		Severity:                 SeverityModerate,
		Recommendation:           "I'm unable to assess your symptoms right now. Please consult with a healthcare provider for proper evaluation.",
		RequiresProfessionalCare: true,
		SuggestedDoctor:          "General Practitioner",
	}
}

func isSymptomQuery(message string) bool {
	lower := strings.ToLower(message)
	return lo.SomeBy(symptomKeywords, func(kw string) bool {
		return strings.Contains(lower, kw)
	})
}

func filterSpecialty(doctors []Doctor, specialty string) []Doctor {
	return lo.Filter(doctors, func(d Doctor, _ int) bool {
		return specialtyContains(d, specialty)
	})
}

func specialtyContains(d Doctor, term string) bool {
	return strings.Contains(strings.ToLower(d.Specialty), strings.ToLower(term))
}
