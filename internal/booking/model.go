package booking

import (
	"net/http"
	"time"

	"github.com/esteveseverson/fastapi-playtime/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrCourtNotFound    = apperror.New(http.StatusNotFound, "court not found")
	ErrCourtUnavailable = apperror.New(http.StatusForbidden, "court is not available for booking")
	ErrPastDate         = apperror.New(http.StatusBadRequest, "booking date has already passed")
	ErrPastTime         = apperror.New(http.StatusBadRequest, "booking time has already passed")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrTimeConflict     = apperror.New(http.StatusConflict, "time slot already booked for this court")
	ErrAdminOnly        = apperror.New(http.StatusUnauthorized, "only admins can list all bookings")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "only admins or the booking owner can cancel")
)

// Booking is a reserved time slot on a court ("agendamento"). All three
// time fields are storage values: BookedOn is the UTC calendar day that
// conflict checks are scoped to, StartsAt/EndsAt are UTC instants.
type Booking struct {
	ID        string // UUID
	CourtID   string
	UserID    string
	BookedOn  time.Time
	StartsAt  time.Time
	EndsAt    time.Time
	CreatedAt time.Time
}

// View is the caller-facing representation of a booking, with the date
// and times converted back to local wall values.
type View struct {
	ID      string
	CourtID string
	UserID  string
	Date    string // "2006-01-02"
	Start   string // "15:04:05"
	End     string // "15:04:05"
}

// Listing partitions the admin-wide view into past and future bookings,
// each ordered by (date, start) ascending.
type Listing struct {
	Past   []View
	Future []View
}
