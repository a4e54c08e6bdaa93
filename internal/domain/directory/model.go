package directory

import "time"

// Doctor maps to the doctors table. Rating is stored in integer tenths of a
// star (48 means 4.8) so the column stays an integer and no float rounding
// leaks into the API.
type Doctor struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Specialty   string    `db:"specialty" json:"specialty"`
	Hospital    string    `db:"hospital" json:"hospital"`
	Phone       *string   `db:"phone" json:"phone,omitempty"`
	Email       *string   `db:"email" json:"email,omitempty"`
	IsAvailable bool      `db:"is_available" json:"isAvailable"`
	Rating      int       `db:"rating" json:"rating"`
	Distance    *string   `db:"distance" json:"distance,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
