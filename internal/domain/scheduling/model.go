package scheduling

import "time"

// Appointment statuses. New appointments default to upcoming.
const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment types.
const (
	TypeConsultation = "consultation"
	TypeFollowUp     = "follow-up"
	TypeAssessment   = "assessment"
)

type Appointment struct {
	ID              string    `db:"id" json:"id"`
	PatientID       string    `db:"patient_id" json:"patientId"`
	DoctorID        string    `db:"doctor_id" json:"doctorId"`
	AppointmentDate time.Time `db:"appointment_date" json:"appointmentDate"`
	Status          string    `db:"status" json:"status"`
	Type            string    `db:"type" json:"type"`
	Notes           *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

func validStatus(s string) bool {
	return s == StatusUpcoming || s == StatusCompleted || s == StatusCancelled
}

func validType(t string) bool {
	return t == TypeConsultation || t == TypeFollowUp || t == TypeAssessment
}
