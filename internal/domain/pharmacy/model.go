package pharmacy

import "time"

// Stock statuses for a medication at a pharmacy.
const (
	StockIn  = "in-stock"
	StockLow = "low-stock"
	StockOut = "out-of-stock"
)

// Pharmacy maps to the pharmacies table. Distance is display text relative
// to the village center ("0.5 km"); coordinates are kept as text so partial
// records from field surveys can be stored as collected.
type Pharmacy struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Hours     *string   `db:"hours" json:"hours,omitempty"`
	Distance  *string   `db:"distance" json:"distance,omitempty"`
	Latitude  *string   `db:"latitude" json:"latitude,omitempty"`
	Longitude *string   `db:"longitude" json:"longitude,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// MedicationStock is one pharmacy's stock entry for one medication. The pair
// (PharmacyID, MedicationName) is unique; writes upsert on it.
type MedicationStock struct {
	ID             string    `db:"id" json:"id"`
	PharmacyID     string    `db:"pharmacy_id" json:"pharmacyId"`
	MedicationName string    `db:"medication_name" json:"medicationName"`
	StockStatus    string    `db:"stock_status" json:"stockStatus"`
	LastUpdated    time.Time `db:"last_updated" json:"lastUpdated"`
}

func validStockStatus(s string) bool {
	return s == StockIn || s == StockLow || s == StockOut
}
