package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petclinic-api/internal/domain/vetspecialties"

	"github.com/jackc/pgx/v5/pgconn"
)

// La unicidad del par la da la PK compuesta de vet_specialties; la violación
// de unicidad (23505) se traduce a ErrDuplicate del dominio.
type VetSpecialtiesRepo struct {
	db *sql.DB
}

func NewVetSpecialtiesRepo(db *sql.DB) *VetSpecialtiesRepo {
	return &VetSpecialtiesRepo{db: db}
}

func (r *VetSpecialtiesRepo) Create(ctx context.Context, vs vetspecialties.VetSpecialty) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vet_specialties (vet_id, specialty_id) VALUES ($1,$2)
	`, vs.VetID, vs.SpecialtyID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return vetspecialties.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *VetSpecialtiesRepo) GetByID(ctx context.Context, key vetspecialties.Key) (vetspecialties.VetSpecialty, error) {
	var vs vetspecialties.VetSpecialty
	err := r.db.QueryRowContext(ctx, `
		SELECT vet_id, specialty_id
		FROM vet_specialties
		WHERE vet_id = $1 AND specialty_id = $2
	`, key.VetID, key.SpecialtyID).Scan(&vs.VetID, &vs.SpecialtyID)
	if err != nil {
		if err == sql.ErrNoRows {
			return vetspecialties.VetSpecialty{}, vetspecialties.ErrNotFound
		}
		return vetspecialties.VetSpecialty{}, err
	}
	return vs, nil
}

func (r *VetSpecialtiesRepo) Delete(ctx context.Context, key vetspecialties.Key) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM vet_specialties WHERE vet_id = $1 AND specialty_id = $2
	`, key.VetID, key.SpecialtyID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return vetspecialties.ErrNotFound
	}
	return nil
}

func (r *VetSpecialtiesRepo) ListAll(ctx context.Context) ([]vetspecialties.VetSpecialty, error) {
	return r.list(ctx, `
		SELECT vet_id, specialty_id FROM vet_specialties
		ORDER BY vet_id ASC, specialty_id ASC
	`)
}

func (r *VetSpecialtiesRepo) ListByVetID(ctx context.Context, vetID int64) ([]vetspecialties.VetSpecialty, error) {
	return r.list(ctx, `
		SELECT vet_id, specialty_id FROM vet_specialties
		WHERE vet_id = $1
		ORDER BY specialty_id ASC
	`, vetID)
}

func (r *VetSpecialtiesRepo) ListBySpecialtyID(ctx context.Context, specialtyID int64) ([]vetspecialties.VetSpecialty, error) {
	return r.list(ctx, `
		SELECT vet_id, specialty_id FROM vet_specialties
		WHERE specialty_id = $1
		ORDER BY vet_id ASC
	`, specialtyID)
}

func (r *VetSpecialtiesRepo) list(ctx context.Context, query string, args ...any) ([]vetspecialties.VetSpecialty, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vetspecialties.VetSpecialty, 0)
	for rows.Next() {
		var vs vetspecialties.VetSpecialty
		if err := rows.Scan(&vs.VetID, &vs.SpecialtyID); err != nil {
			return nil, err
		}
		out = append(out, vs)
	}
	return out, rows.Err()
}
