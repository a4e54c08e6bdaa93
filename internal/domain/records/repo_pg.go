package records

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Create(ctx context.Context, ev *HealthEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	ev.CreatedAt = time.Now().UTC()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO health_events (id, patient_id, doctor_id, event_type, title, description, event_date, status, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		ev.ID, ev.PatientID, ev.DoctorID, ev.EventType, ev.Title, ev.Description,
		ev.EventDate, ev.Status, ev.Metadata, ev.CreatedAt,
	)
	return err
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID string) ([]HealthEvent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, doctor_id, event_type, title, description, event_date, status, metadata, created_at
		FROM health_events
		WHERE patient_id = $1
		ORDER BY event_date DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []HealthEvent{}
	for rows.Next() {
		var ev HealthEvent
		if err := rows.Scan(&ev.ID, &ev.PatientID, &ev.DoctorID, &ev.EventType, &ev.Title,
			&ev.Description, &ev.EventDate, &ev.Status, &ev.Metadata, &ev.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
