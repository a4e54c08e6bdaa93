package pharmacy

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

const pharmacyColumns = `id, name, address, phone, hours, distance, latitude, longitude, created_at`
const stockColumns = `id, pharmacy_id, medication_name, stock_status, last_updated`

func (r *repoPG) Create(ctx context.Context, p *Pharmacy) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now().UTC()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO pharmacies (id, name, address, phone, hours, distance, latitude, longitude, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.Name, p.Address, p.Phone, p.Hours, p.Distance, p.Latitude, p.Longitude, p.CreatedAt,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id string) (*Pharmacy, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+pharmacyColumns+` FROM pharmacies WHERE id = $1`, id)

	var p Pharmacy
	err := row.Scan(&p.ID, &p.Name, &p.Address, &p.Phone, &p.Hours,
		&p.Distance, &p.Latitude, &p.Longitude, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) List(ctx context.Context) ([]Pharmacy, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+pharmacyColumns+` FROM pharmacies ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pharmacies := []Pharmacy{}
	for rows.Next() {
		var p Pharmacy
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.Phone, &p.Hours,
			&p.Distance, &p.Latitude, &p.Longitude, &p.CreatedAt); err != nil {
			return nil, err
		}
		pharmacies = append(pharmacies, p)
	}
	return pharmacies, rows.Err()
}

func (r *repoPG) UpsertStock(ctx context.Context, st *MedicationStock) error {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	st.LastUpdated = time.Now().UTC()

	// The conflict target matches the UNIQUE(pharmacy_id, medication_name)
	// constraint; on update the existing row's id wins.
	row := r.pool.QueryRow(ctx, `
		INSERT INTO medication_stock (id, pharmacy_id, medication_name, stock_status, last_updated)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (pharmacy_id, medication_name) DO UPDATE SET
			stock_status = EXCLUDED.stock_status,
			last_updated = EXCLUDED.last_updated
		RETURNING id`,
		st.ID, st.PharmacyID, st.MedicationName, st.StockStatus, st.LastUpdated,
	)
	return row.Scan(&st.ID)
}

func (r *repoPG) GetStock(ctx context.Context, pharmacyID, medication string) (*MedicationStock, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+stockColumns+` FROM medication_stock
		WHERE pharmacy_id = $1 AND medication_name = $2`,
		pharmacyID, medication)

	var st MedicationStock
	err := row.Scan(&st.ID, &st.PharmacyID, &st.MedicationName, &st.StockStatus, &st.LastUpdated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrStockNotFound
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *repoPG) ListStock(ctx context.Context, pharmacyID string) ([]MedicationStock, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+stockColumns+` FROM medication_stock
		WHERE pharmacy_id = $1 ORDER BY medication_name`, pharmacyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStock(rows)
}

func (r *repoPG) SearchStock(ctx context.Context, medication string, limit, offset int) ([]MedicationStock, int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM medication_stock
		WHERE medication_name ILIKE '%' || $1 || '%'`, medication).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+stockColumns+` FROM medication_stock
		WHERE medication_name ILIKE '%' || $1 || '%'
		ORDER BY medication_name
		LIMIT $2 OFFSET $3`, medication, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	stock, err := collectStock(rows)
	if err != nil {
		return nil, 0, err
	}
	return stock, total, nil
}

func collectStock(rows pgx.Rows) ([]MedicationStock, error) {
	stock := []MedicationStock{}
	for rows.Next() {
		var st MedicationStock
		if err := rows.Scan(&st.ID, &st.PharmacyID, &st.MedicationName,
			&st.StockStatus, &st.LastUpdated); err != nil {
			return nil, err
		}
		stock = append(stock, st)
	}
	return stock, rows.Err()
}
