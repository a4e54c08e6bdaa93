package pharmacy

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no pharmacy exists for the given id.
var ErrNotFound = errors.New("pharmacy not found")

// ErrStockNotFound is returned when a pharmacy has no entry for a medication.
var ErrStockNotFound = errors.New("medication stock not found")

type Repository interface {
	Create(ctx context.Context, p *Pharmacy) error
	GetByID(ctx context.Context, id string) (*Pharmacy, error)
	List(ctx context.Context) ([]Pharmacy, error)

	// UpsertStock inserts the stock entry, or updates the status when an
	// entry for the same (pharmacy, medication) pair already exists.
	UpsertStock(ctx context.Context, st *MedicationStock) error
	GetStock(ctx context.Context, pharmacyID, medication string) (*MedicationStock, error)
	ListStock(ctx context.Context, pharmacyID string) ([]MedicationStock, error)
	// SearchStock returns all pharmacies' entries for medications whose name
	// contains the query, case-insensitively, plus the total match count.
	SearchStock(ctx context.Context, medication string, limit, offset int) ([]MedicationStock, int, error)
}
