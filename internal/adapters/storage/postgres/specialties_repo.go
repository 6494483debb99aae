package postgres

import (
	"context"
	"database/sql"

	"petclinic-api/internal/domain/specialties"
)

type SpecialtiesRepo struct {
	db *sql.DB
}

func NewSpecialtiesRepo(db *sql.DB) *SpecialtiesRepo {
	return &SpecialtiesRepo{db: db}
}

func (r *SpecialtiesRepo) Create(ctx context.Context, sp specialties.Specialty) (specialties.Specialty, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO specialties (name) VALUES ($1) RETURNING id
	`, sp.Name).Scan(&sp.ID)
	if err != nil {
		return specialties.Specialty{}, err
	}
	return sp, nil
}

func (r *SpecialtiesRepo) Update(ctx context.Context, sp specialties.Specialty) error {
	res, err := r.db.ExecContext(ctx, `UPDATE specialties SET name = $2 WHERE id = $1`, sp.ID, sp.Name)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return specialties.ErrNotFound
	}
	return nil
}

func (r *SpecialtiesRepo) GetByID(ctx context.Context, id int64) (specialties.Specialty, error) {
	var sp specialties.Specialty
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM specialties WHERE id = $1`, id).
		Scan(&sp.ID, &sp.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return specialties.Specialty{}, specialties.ErrNotFound
		}
		return specialties.Specialty{}, err
	}
	return sp, nil
}

func (r *SpecialtiesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM specialties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return specialties.ErrNotFound
	}
	return nil
}

func (r *SpecialtiesRepo) ListAll(ctx context.Context) ([]specialties.Specialty, error) {
	return r.list(ctx, `SELECT id, name FROM specialties ORDER BY id ASC`)
}

func (r *SpecialtiesRepo) ListByName(ctx context.Context, name string) ([]specialties.Specialty, error) {
	return r.list(ctx, `SELECT id, name FROM specialties WHERE name = $1 ORDER BY id ASC`, name)
}

func (r *SpecialtiesRepo) list(ctx context.Context, query string, args ...any) ([]specialties.Specialty, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]specialties.Specialty, 0)
	for rows.Next() {
		var sp specialties.Specialty
		if err := rows.Scan(&sp.ID, &sp.Name); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}
