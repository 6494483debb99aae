package postgres

import (
	"context"
	"database/sql"
	"time"

	"petclinic-api/internal/domain/visits"
)

type VisitsRepo struct {
	db *sql.DB
}

func NewVisitsRepo(db *sql.DB) *VisitsRepo {
	return &VisitsRepo{db: db}
}

func (r *VisitsRepo) Create(ctx context.Context, v visits.Visit) (visits.Visit, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO visits (pet_id, vet_id, visit_date, description, cost)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`, v.PetID, toNullInt(v.VetID), v.VisitDate, toNullString(v.Description), toNullFloat(v.Cost)).Scan(&v.ID)
	if err != nil {
		return visits.Visit{}, err
	}
	return v, nil
}

func (r *VisitsRepo) Update(ctx context.Context, v visits.Visit) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE visits
		SET pet_id = $2, vet_id = $3, visit_date = $4, description = $5, cost = $6
		WHERE id = $1
	`, v.ID, v.PetID, toNullInt(v.VetID), v.VisitDate, toNullString(v.Description), toNullFloat(v.Cost))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return visits.ErrNotFound
	}
	return nil
}

func (r *VisitsRepo) GetByID(ctx context.Context, id int64) (visits.Visit, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, vet_id, visit_date, description, cost
		FROM visits
		WHERE id = $1
	`, id)

	v, err := scanVisit(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return visits.Visit{}, visits.ErrNotFound
		}
		return visits.Visit{}, err
	}
	return v, nil
}

func (r *VisitsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM visits WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return visits.ErrNotFound
	}
	return nil
}

func (r *VisitsRepo) ListAll(ctx context.Context) ([]visits.Visit, error) {
	return r.list(ctx, `
		SELECT id, pet_id, vet_id, visit_date, description, cost
		FROM visits ORDER BY id ASC
	`)
}

func (r *VisitsRepo) ListByPetID(ctx context.Context, petID int64) ([]visits.Visit, error) {
	return r.list(ctx, `
		SELECT id, pet_id, vet_id, visit_date, description, cost
		FROM visits WHERE pet_id = $1 ORDER BY id ASC
	`, petID)
}

func (r *VisitsRepo) ListByVetID(ctx context.Context, vetID int64) ([]visits.Visit, error) {
	return r.list(ctx, `
		SELECT id, pet_id, vet_id, visit_date, description, cost
		FROM visits WHERE vet_id = $1 ORDER BY id ASC
	`, vetID)
}

// BETWEEN es inclusivo en ambos extremos, igual que el contrato del finder.
func (r *VisitsRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]visits.Visit, error) {
	return r.list(ctx, `
		SELECT id, pet_id, vet_id, visit_date, description, cost
		FROM visits WHERE visit_date BETWEEN $1 AND $2 ORDER BY id ASC
	`, start, end)
}

func (r *VisitsRepo) ListByDate(ctx context.Context, date time.Time) ([]visits.Visit, error) {
	return r.list(ctx, `
		SELECT id, pet_id, vet_id, visit_date, description, cost
		FROM visits WHERE visit_date = $1 ORDER BY id ASC
	`, date)
}

func (r *VisitsRepo) ListByPetIDAndDate(ctx context.Context, petID int64, date time.Time) ([]visits.Visit, error) {
	return r.list(ctx, `
		SELECT id, pet_id, vet_id, visit_date, description, cost
		FROM visits WHERE pet_id = $1 AND visit_date = $2 ORDER BY id ASC
	`, petID, date)
}

func (r *VisitsRepo) list(ctx context.Context, query string, args ...any) ([]visits.Visit, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]visits.Visit, 0)
	for rows.Next() {
		v, err := scanVisit(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanVisit(scan func(dest ...any) error) (visits.Visit, error) {
	var (
		v    visits.Visit
		vet  sql.NullInt64
		desc sql.NullString
		cost sql.NullFloat64
	)
	if err := scan(&v.ID, &v.PetID, &vet, &v.VisitDate, &desc, &cost); err != nil {
		return visits.Visit{}, err
	}

	if vet.Valid {
		n := vet.Int64
		v.VetID = &n
	}
	if desc.Valid {
		v.Description = desc.String
	}
	if cost.Valid {
		c := cost.Float64
		v.Cost = &c
	}

	// visit_date es DATE; pgx lo mapea a time.Time en medianoche UTC
	v.VisitDate = visits.DateOnly(v.VisitDate)
	return v, nil
}

func toNullInt(n *int64) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *n, Valid: true}
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func toNullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
