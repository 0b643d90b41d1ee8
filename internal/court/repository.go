package court

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines storage access for courts.
type Repository interface {
	Create(ctx context.Context, crt *Court) error
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context) ([]*Court, error)
	Update(ctx context.Context, crt *Court) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a Repository backed by a pgx pool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, crt *Court) error {
	const query = `
		INSERT INTO public.courts (name, description, available)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, crt.Name, crt.Description, crt.Available).
		Scan(&crt.ID, &crt.CreatedAt)
	if err != nil {
		return fmt.Errorf("create court failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Court, error) {
	const query = `
		SELECT id, name, description, available, photo_path, created_at
		FROM public.courts
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var crt Court
	if err := row.Scan(&crt.ID, &crt.Name, &crt.Description, &crt.Available, &crt.PhotoPath, &crt.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get court failed: %w", err)
	}
	return &crt, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Court, error) {
	const query = `
		SELECT id, name, description, available, photo_path, created_at
		FROM public.courts
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list courts failed: %w", err)
	}
	defer rows.Close()

	var courts []*Court
	for rows.Next() {
		var crt Court
		if err := rows.Scan(&crt.ID, &crt.Name, &crt.Description, &crt.Available, &crt.PhotoPath, &crt.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan court failed: %w", err)
		}
		courts = append(courts, &crt)
	}

	return courts, nil
}

func (r *pgxRepository) Update(ctx context.Context, crt *Court) error {
	const query = `
		UPDATE public.courts
		SET name = $1, description = $2, available = $3, photo_path = $4
		WHERE id = $5
	`
	ct, err := r.pool.Exec(ctx, query, crt.Name, crt.Description, crt.Available, crt.PhotoPath, crt.ID)
	if err != nil {
		return fmt.Errorf("update court failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.courts WHERE id = $1`

	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete court failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
