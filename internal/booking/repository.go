package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines storage access for bookings.
type Repository interface {
	// Create inserts the booking. The bookings table carries an exclusion
	// constraint on (court_id, booked_on, interval); a violation maps to
	// ErrTimeConflict, which is what resolves racing create requests.
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListAll(ctx context.Context) ([]*Booking, error)
	Delete(ctx context.Context, id string) error

	// HasOverlap checks for a conflicting booking on the same court and
	// the same storage day.
	HasOverlap(ctx context.Context, courtID string, bookedOn, startsAt, endsAt time.Time) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a Repository backed by a pgx pool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("court_id", "user_id", "booked_on", "starts_at", "ends_at").
		Values(b.CourtID, b.UserID, b.BookedOn, b.StartsAt, b.EndsAt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrTimeConflict
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	const query = `
		SELECT id, court_id, user_id, booked_on, starts_at, ends_at, created_at
		FROM public.bookings
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var b Booking
	if err := row.Scan(&b.ID, &b.CourtID, &b.UserID, &b.BookedOn, &b.StartsAt, &b.EndsAt, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) ListAll(ctx context.Context) ([]*Booking, error) {
	const query = `
		SELECT id, court_id, user_id, booked_on, starts_at, ends_at, created_at
		FROM public.bookings
		ORDER BY booked_on, starts_at
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.CourtID, &b.UserID, &b.BookedOn, &b.StartsAt, &b.EndsAt, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) HasOverlap(ctx context.Context, courtID string, bookedOn, startsAt, endsAt time.Time) (bool, error) {
	// Half-open intervals: existing.start < new.end AND existing.end > new.start.
	// Scoped to the same court and the same storage day.
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.Eq{"booked_on": bookedOn}).
		Where(squirrel.Lt{"starts_at": endsAt}).
		Where(squirrel.Gt{"ends_at": startsAt})

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return false, fmt.Errorf("build check overlap query failed: %w", err)
	}

	query := "SELECT EXISTS (" + sql + ")"

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check overlap failed: %w", err)
	}
	return exists, nil
}
