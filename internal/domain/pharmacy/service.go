package pharmacy

import (
	"context"
	"fmt"
)

type Service struct {
	pharmacies Repository
}

func NewService(pharmacies Repository) *Service {
	return &Service{pharmacies: pharmacies}
}

func (s *Service) Create(ctx context.Context, p *Pharmacy) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Address == "" {
		return fmt.Errorf("address is required")
	}
	return s.pharmacies.Create(ctx, p)
}

func (s *Service) List(ctx context.Context) ([]Pharmacy, error) {
	return s.pharmacies.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Pharmacy, error) {
	return s.pharmacies.GetByID(ctx, id)
}

// UpsertStock records the stock status of a medication at a pharmacy,
// replacing any earlier entry for the same pair.
func (s *Service) UpsertStock(ctx context.Context, st *MedicationStock) error {
	if st.PharmacyID == "" {
		return fmt.Errorf("pharmacyId is required")
	}
	if st.MedicationName == "" {
		return fmt.Errorf("medicationName is required")
	}
	if !validStockStatus(st.StockStatus) {
		return fmt.Errorf("invalid stock status %q", st.StockStatus)
	}

	if _, err := s.pharmacies.GetByID(ctx, st.PharmacyID); err != nil {
		return err
	}
	return s.pharmacies.UpsertStock(ctx, st)
}

func (s *Service) GetStock(ctx context.Context, pharmacyID, medication string) (*MedicationStock, error) {
	return s.pharmacies.GetStock(ctx, pharmacyID, medication)
}

func (s *Service) ListStock(ctx context.Context, pharmacyID string) ([]MedicationStock, error) {
	return s.pharmacies.ListStock(ctx, pharmacyID)
}

func (s *Service) SearchStock(ctx context.Context, medication string, limit, offset int) ([]MedicationStock, int, error) {
	if medication == "" {
		return nil, 0, fmt.Errorf("medication query is required")
	}
	return s.pharmacies.SearchStock(ctx, medication, limit, offset)
}
