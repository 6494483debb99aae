package postgres

import (
	"context"
	"database/sql"

	"petclinic-api/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO owners (first_name, last_name, address, city, telephone)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`, o.FirstName, o.LastName, o.Address, o.City, o.Telephone).Scan(&o.ID)
	if err != nil {
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE owners
		SET first_name = $2, last_name = $3, address = $4, city = $5, telephone = $6
		WHERE id = $1
	`, o.ID, o.FirstName, o.LastName, o.Address, o.City, o.Telephone)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE id = $1
	`, id)

	var o owners.Owner
	if err := row.Scan(&o.ID, &o.FirstName, &o.LastName, &o.Address, &o.City, &o.Telephone); err != nil {
		if err == sql.ErrNoRows {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM owners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}

func (r *OwnersRepo) ListAll(ctx context.Context) ([]owners.Owner, error) {
	return r.list(ctx, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		ORDER BY id ASC
	`)
}

func (r *OwnersRepo) ListByFirstName(ctx context.Context, firstName string) ([]owners.Owner, error) {
	return r.list(ctx, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE first_name = $1
		ORDER BY id ASC
	`, firstName)
}

func (r *OwnersRepo) ListByLastName(ctx context.Context, lastName string) ([]owners.Owner, error) {
	return r.list(ctx, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE last_name = $1
		ORDER BY id ASC
	`, lastName)
}

func (r *OwnersRepo) ListByCity(ctx context.Context, city string) ([]owners.Owner, error) {
	return r.list(ctx, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE city = $1
		ORDER BY id ASC
	`, city)
}

func (r *OwnersRepo) list(ctx context.Context, query string, args ...any) ([]owners.Owner, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		var o owners.Owner
		if err := rows.Scan(&o.ID, &o.FirstName, &o.LastName, &o.Address, &o.City, &o.Telephone); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
