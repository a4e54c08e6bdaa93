package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ruralcare/ruralcare/internal/domain/directory"
	"github.com/ruralcare/ruralcare/internal/domain/patient"
	"github.com/ruralcare/ruralcare/internal/domain/pharmacy"
)

// DemoPatientID is the fixed id the demo client is hard-wired to.
const DemoPatientID = "demo-patient-123"

func strPtr(s string) *string { return &s }

// seedDemoData loads the demo patient, doctors, pharmacies, and medication
// stock used for local development. It is idempotent: if the demo patient
// already exists the whole load is skipped.
func seedDemoData(ctx context.Context, pool *pgxpool.Pool) error {
	patients := patient.NewRepo(pool)
	doctors := directory.NewRepo(pool)
	pharmacies := pharmacy.NewRepo(pool)

	if _, err := patients.GetByID(ctx, DemoPatientID); err == nil {
		fmt.Println("Demo data already present, nothing to do.")
		return nil
	} else if !errors.Is(err, patient.ErrNotFound) {
		return err
	}

	demo := &patient.Patient{
		ID:               DemoPatientID,
		Name:             "Demo Patient",
		Age:              12,
		ConditionType:    "ADHD",
		Contact:          "demo@example.com",
		EmergencyContact: strPtr("parent@example.com"),
	}
	if err := patients.Create(ctx, demo); err != nil {
		return fmt.Errorf("seed patient: %w", err)
	}

	demoDoctors := []directory.Doctor{
		{
			Name:        "Dr. Sarah Chen",
			Specialty:   "Pediatric Neurologist",
			Hospital:    "Rural Community Health Center",
			Phone:       strPtr("(555) 123-4567"),
			IsAvailable: true,
			Rating:      48,
			Distance:    strPtr("1.2 km"),
		},
		{
			Name:        "Dr. Michael Rodriguez",
			Specialty:   "ADHD Specialist",
			Hospital:    "Mountain View Clinic",
			Phone:       strPtr("(555) 987-6543"),
			IsAvailable: false,
			Rating:      46,
			Distance:    strPtr("2.5 km"),
		},
		{
			Name:        "Dr. Emily Watson",
			Specialty:   "Family Medicine",
			Hospital:    "Valley Health Services",
			Phone:       strPtr("(555) 456-7890"),
			IsAvailable: true,
			Rating:      49,
			Distance:    strPtr("0.8 km"),
		},
	}
	for i := range demoDoctors {
		if err := doctors.Create(ctx, &demoDoctors[i]); err != nil {
			return fmt.Errorf("seed doctor %s: %w", demoDoctors[i].Name, err)
		}
	}

	demoPharmacies := []pharmacy.Pharmacy{
		{
			Name:     "Green Valley Pharmacy",
			Address:  "123 Main Street, Valley Town",
			Phone:    strPtr("(555) 123-4567"),
			Hours:    strPtr("Open until 8:00 PM"),
			Distance: strPtr("0.5 km"),
		},
		{
			Name:     "Mountain View Drugs",
			Address:  "456 Hill Road, Highland",
			Phone:    strPtr("(555) 987-6543"),
			Hours:    strPtr("Open 24 hours"),
			Distance: strPtr("1.2 km"),
		},
	}
	medications := []pharmacy.MedicationStock{
		{MedicationName: "Methylphenidate (Ritalin)", StockStatus: pharmacy.StockIn},
		{MedicationName: "Aripiprazole (Abilify)", StockStatus: pharmacy.StockLow},
		{MedicationName: "Sertraline (Zoloft)", StockStatus: pharmacy.StockOut},
	}
	for i := range demoPharmacies {
		if err := pharmacies.Create(ctx, &demoPharmacies[i]); err != nil {
			return fmt.Errorf("seed pharmacy %s: %w", demoPharmacies[i].Name, err)
		}
		for _, med := range medications {
			stock := med
			stock.PharmacyID = demoPharmacies[i].ID
			if err := pharmacies.UpsertStock(ctx, &stock); err != nil {
				return fmt.Errorf("seed stock %s: %w", stock.MedicationName, err)
			}
		}
	}

	fmt.Println("Demo data loaded.")
	return nil
}
