package chat

import "time"

// Message types.
const (
	TypeUser = "user"
	TypeAI   = "ai"
)

// Severity labels attached to AI replies when the exchange looked
// symptom-related.
const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// Message is one turn in a chat session. SessionID groups the turns of one
// conversation; ordering within a session follows CreatedAt.
type Message struct {
	ID        string    `db:"id" json:"id"`
	PatientID string    `db:"patient_id" json:"patientId"`
	Type      string    `db:"type" json:"type"`
	Content   string    `db:"content" json:"content"`
	Severity  *string   `db:"severity" json:"severity,omitempty"`
	SessionID string    `db:"session_id" json:"sessionId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

func validType(t string) bool {
	return t == TypeUser || t == TypeAI
}

// ValidSeverity reports whether s is one of the known severity labels.
func ValidSeverity(s string) bool {
	return s == SeverityMild || s == SeverityModerate || s == SeveritySevere
}
