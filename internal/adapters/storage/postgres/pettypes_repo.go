package postgres

import (
	"context"
	"database/sql"

	"petclinic-api/internal/domain/pettypes"
)

// La tabla se llama "types" en el esquema heredado de petclinic.
type PetTypesRepo struct {
	db *sql.DB
}

func NewPetTypesRepo(db *sql.DB) *PetTypesRepo {
	return &PetTypesRepo{db: db}
}

func (r *PetTypesRepo) Create(ctx context.Context, pt pettypes.PetType) (pettypes.PetType, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO types (name) VALUES ($1) RETURNING id
	`, pt.Name).Scan(&pt.ID)
	if err != nil {
		return pettypes.PetType{}, err
	}
	return pt, nil
}

func (r *PetTypesRepo) Update(ctx context.Context, pt pettypes.PetType) error {
	res, err := r.db.ExecContext(ctx, `UPDATE types SET name = $2 WHERE id = $1`, pt.ID, pt.Name)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pettypes.ErrNotFound
	}
	return nil
}

func (r *PetTypesRepo) GetByID(ctx context.Context, id int64) (pettypes.PetType, error) {
	var pt pettypes.PetType
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM types WHERE id = $1`, id).
		Scan(&pt.ID, &pt.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return pettypes.PetType{}, pettypes.ErrNotFound
		}
		return pettypes.PetType{}, err
	}
	return pt, nil
}

func (r *PetTypesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pettypes.ErrNotFound
	}
	return nil
}

func (r *PetTypesRepo) ListAll(ctx context.Context) ([]pettypes.PetType, error) {
	return r.list(ctx, `SELECT id, name FROM types ORDER BY id ASC`)
}

func (r *PetTypesRepo) ListByName(ctx context.Context, name string) ([]pettypes.PetType, error) {
	return r.list(ctx, `SELECT id, name FROM types WHERE name = $1 ORDER BY id ASC`, name)
}

func (r *PetTypesRepo) list(ctx context.Context, query string, args ...any) ([]pettypes.PetType, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pettypes.PetType, 0)
	for rows.Next() {
		var pt pettypes.PetType
		if err := rows.Scan(&pt.ID, &pt.Name); err != nil {
			return nil, err
		}
		out = append(out, pt)
	}
	return out, rows.Err()
}
