package patient

import "time"

// Patient maps to the patients table. Condition type is free text in the
// store ("adhd", "autism", "other"); it is forwarded verbatim to the triage
// prompts, so no normalization happens here.
type Patient struct {
	ID               string    `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Age              int       `db:"age" json:"age"`
	ConditionType    string    `db:"condition_type" json:"conditionType"`
	Contact          string    `db:"contact" json:"contact"`
	EmergencyContact *string   `db:"emergency_contact" json:"emergencyContact,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}

// UpdateParams carries the fields of a partial patient update. Nil means
// "leave unchanged".
type UpdateParams struct {
	Name             *string `json:"name"`
	Age              *int    `json:"age"`
	ConditionType    *string `json:"conditionType"`
	Contact          *string `json:"contact"`
	EmergencyContact *string `json:"emergencyContact"`
}
