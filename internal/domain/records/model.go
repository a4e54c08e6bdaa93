package records

import "time"

// Health event types.
const (
	TypeAppointment  = "appointment"
	TypePrescription = "prescription"
	TypeTest         = "test"
	TypeNote         = "note"
)

// Health event statuses. Events default to completed; they are usually
// written after the fact.
const (
	StatusCompleted = "completed"
	StatusUpcoming  = "upcoming"
	StatusCancelled = "cancelled"
)

// HealthEvent is one entry in a patient's medical timeline. Metadata holds
// event-specific extras such as prescription details.
type HealthEvent struct {
	ID          string         `db:"id" json:"id"`
	PatientID   string         `db:"patient_id" json:"patientId"`
	DoctorID    *string        `db:"doctor_id" json:"doctorId,omitempty"`
	EventType   string         `db:"event_type" json:"eventType"`
	Title       string         `db:"title" json:"title"`
	Description string         `db:"description" json:"description"`
	EventDate   time.Time      `db:"event_date" json:"eventDate"`
	Status      string         `db:"status" json:"status"`
	Metadata    map[string]any `db:"metadata" json:"metadata,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
}

func validEventType(t string) bool {
	switch t {
	case TypeAppointment, TypePrescription, TypeTest, TypeNote:
		return true
	}
	return false
}

func validStatus(s string) bool {
	switch s {
	case StatusCompleted, StatusUpcoming, StatusCancelled:
		return true
	}
	return false
}
