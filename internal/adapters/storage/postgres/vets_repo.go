package postgres

import (
	"context"
	"database/sql"

	"petclinic-api/internal/domain/vets"
)

type VetsRepo struct {
	db *sql.DB
}

func NewVetsRepo(db *sql.DB) *VetsRepo {
	return &VetsRepo{db: db}
}

func (r *VetsRepo) Create(ctx context.Context, v vets.Vet) (vets.Vet, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO vets (first_name, last_name) VALUES ($1,$2) RETURNING id
	`, v.FirstName, v.LastName).Scan(&v.ID)
	if err != nil {
		return vets.Vet{}, err
	}
	return v, nil
}

func (r *VetsRepo) Update(ctx context.Context, v vets.Vet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vets SET first_name = $2, last_name = $3 WHERE id = $1
	`, v.ID, v.FirstName, v.LastName)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return vets.ErrNotFound
	}
	return nil
}

func (r *VetsRepo) GetByID(ctx context.Context, id int64) (vets.Vet, error) {
	var v vets.Vet
	err := r.db.QueryRowContext(ctx, `SELECT id, first_name, last_name FROM vets WHERE id = $1`, id).
		Scan(&v.ID, &v.FirstName, &v.LastName)
	if err != nil {
		if err == sql.ErrNoRows {
			return vets.Vet{}, vets.ErrNotFound
		}
		return vets.Vet{}, err
	}
	return v, nil
}

func (r *VetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return vets.ErrNotFound
	}
	return nil
}

func (r *VetsRepo) ListAll(ctx context.Context) ([]vets.Vet, error) {
	return r.list(ctx, `SELECT id, first_name, last_name FROM vets ORDER BY id ASC`)
}

func (r *VetsRepo) ListByFirstName(ctx context.Context, firstName string) ([]vets.Vet, error) {
	return r.list(ctx, `SELECT id, first_name, last_name FROM vets WHERE first_name = $1 ORDER BY id ASC`, firstName)
}

func (r *VetsRepo) ListByLastName(ctx context.Context, lastName string) ([]vets.Vet, error) {
	return r.list(ctx, `SELECT id, first_name, last_name FROM vets WHERE last_name = $1 ORDER BY id ASC`, lastName)
}

func (r *VetsRepo) list(ctx context.Context, query string, args ...any) ([]vets.Vet, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vets.Vet, 0)
	for rows.Next() {
		var v vets.Vet
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
