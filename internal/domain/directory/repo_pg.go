package directory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const doctorColumns = `id, name, specialty, hospital, phone, email, is_available, rating, distance, created_at`

func (r *repoPG) Create(ctx context.Context, d *Doctor) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.CreatedAt = time.Now().UTC()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO doctors (id, name, specialty, hospital, phone, email, is_available, rating, distance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		d.ID, d.Name, d.Specialty, d.Hospital, d.Phone, d.Email, d.IsAvailable, d.Rating, d.Distance, d.CreatedAt,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id string) (*Doctor, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+doctorColumns+` FROM doctors WHERE id = $1`, id)
	d, err := scanDoctor(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *repoPG) List(ctx context.Context, specialty string) ([]Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors ORDER BY name`
	args := []any{}
	if specialty != "" {
		query = `SELECT ` + doctorColumns + ` FROM doctors WHERE specialty ILIKE '%' || $1 || '%' ORDER BY name`
		args = append(args, specialty)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDoctors(rows)
}

func (r *repoPG) ListAvailable(ctx context.Context) ([]Doctor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+doctorColumns+` FROM doctors WHERE is_available = true ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDoctors(rows)
}

func (r *repoPG) UpdateAvailability(ctx context.Context, id string, available bool) (*Doctor, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE doctors SET is_available = $2 WHERE id = $1
		RETURNING `+doctorColumns,
		id, available,
	)
	d, err := scanDoctor(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Specialty, &d.Hospital, &d.Phone,
		&d.Email, &d.IsAvailable, &d.Rating, &d.Distance, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func collectDoctors(rows pgx.Rows) ([]Doctor, error) {
	doctors := []Doctor{}
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		doctors = append(doctors, *d)
	}
	return doctors, rows.Err()
}
