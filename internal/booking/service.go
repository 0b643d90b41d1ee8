package booking

import (
	"context"
	"errors"

	"github.com/esteveseverson/fastapi-playtime/internal/court"
	"github.com/esteveseverson/fastapi-playtime/internal/user"
)

// CreateRequest carries a proposed reservation in local wall values.
type CreateRequest struct {
	CourtID string
	Date    string // "2006-01-02"
	Start   string // "15:04:05" or "15:04"
	End     string
}

// Service defines the booking business logic.
type Service interface {
	// Create validates and persists a reservation for the actor. The
	// owner is always the actor; callers cannot book on behalf of others.
	Create(ctx context.Context, actor *user.User, req CreateRequest) (*View, error)

	// ListAll returns every booking partitioned into past and future.
	// Admin only.
	ListAll(ctx context.Context, actor *user.User) (*Listing, error)

	GetByID(ctx context.Context, id string) (*View, error)

	// Cancel deletes a booking. Permitted for the owner and for admins.
	Cancel(ctx context.Context, actor *user.User, id string) error
}

type service struct {
	repo   Repository
	courts court.Service
	conv   Converter
	clock  Clock
}

// NewService creates a booking Service.
func NewService(repo Repository, courts court.Service, conv Converter, clock Clock) Service {
	return &service{
		repo:   repo,
		courts: courts,
		conv:   conv,
		clock:  clock,
	}
}

// Create runs the validation rules in fixed order: court exists, court
// available, slot not in the past, then the conflict check against the
// same court and storage day. The first failing rule decides the error.
func (s *service) Create(ctx context.Context, actor *user.User, req CreateRequest) (*View, error) {
	crt, err := s.courts.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	if !crt.Available {
		return nil, ErrCourtUnavailable
	}

	nowLocal := s.conv.LocalNow(s.clock.Now())
	if err := s.conv.CheckTiming(nowLocal, req.Date, req.Start); err != nil {
		return nil, err
	}

	bookedOn, startsAt, endsAt, err := s.conv.ToStorage(req.Date, req.Start, req.End)
	if err != nil {
		return nil, err
	}

	hasOverlap, err := s.repo.HasOverlap(ctx, req.CourtID, bookedOn, startsAt, endsAt)
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, ErrTimeConflict
	}

	b := &Booking{
		CourtID:  req.CourtID,
		UserID:   actor.ID,
		BookedOn: bookedOn,
		StartsAt: startsAt,
		EndsAt:   endsAt,
	}

	// The insert can still fail with ErrTimeConflict if a concurrent
	// request won the slot between the check and the insert; the DB
	// exclusion constraint is the authority.
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	view := s.viewOf(b)
	return &view, nil
}

func (s *service) ListAll(ctx context.Context, actor *user.User) (*Listing, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	bookings, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// Future means the storage date lies strictly after today's local
	// date. The comparison is date-only: a booking running right now on
	// today's date lands in Past.
	today := s.conv.LocalNow(s.clock.Now()).Truncate(day)

	listing := &Listing{
		Past:   []View{},
		Future: []View{},
	}
	for _, b := range bookings {
		if b.BookedOn.After(today) {
			listing.Future = append(listing.Future, s.viewOf(b))
		} else {
			listing.Past = append(listing.Past, s.viewOf(b))
		}
	}

	return listing, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*View, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := s.viewOf(b)
	return &view, nil
}

func (s *service) Cancel(ctx context.Context, actor *user.User, id string) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if b.UserID != actor.ID && !actor.IsAdmin() {
		return ErrPermissionDenied
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) viewOf(b *Booking) View {
	date, start, end := s.conv.ToDisplay(b.StartsAt, b.EndsAt)
	return View{
		ID:      b.ID,
		CourtID: b.CourtID,
		UserID:  b.UserID,
		Date:    date,
		Start:   start,
		End:     end,
	}
}
