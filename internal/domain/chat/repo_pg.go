package chat

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

func (r *repoPG) Create(ctx context.Context, m *Message) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = time.Now().UTC()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO chat_messages (id, patient_id, type, content, severity, session_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.PatientID, m.Type, m.Content, m.Severity, m.SessionID, m.CreatedAt,
	)
	return err
}

func (r *repoPG) ListBySession(ctx context.Context, sessionID string) ([]Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, type, content, severity, session_id, created_at
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY created_at`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.PatientID, &m.Type, &m.Content,
			&m.Severity, &m.SessionID, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
