package http

import (
	"github.com/esteveseverson/fastapi-playtime/internal/booking"
)

// BookingResponse is the API representation of a booking, with date and
// times in local wall values.
type BookingResponse struct {
	ID      string `json:"id"`
	CourtID string `json:"court_id"`
	UserID  string `json:"user_id"`
	Date    string `json:"date"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// NewBookingResponse converts a display view to the API shape.
func NewBookingResponse(v *booking.View) BookingResponse {
	return BookingResponse{
		ID:      v.ID,
		CourtID: v.CourtID,
		UserID:  v.UserID,
		Date:    v.Date,
		Start:   v.Start,
		End:     v.End,
	}
}

// ListingResponse groups all bookings by temporal status.
type ListingResponse struct {
	Past   []BookingResponse `json:"past"`
	Future []BookingResponse `json:"future"`
}

// NewListingResponse converts a listing to the API shape.
func NewListingResponse(l *booking.Listing) ListingResponse {
	resp := ListingResponse{
		Past:   make([]BookingResponse, 0, len(l.Past)),
		Future: make([]BookingResponse, 0, len(l.Future)),
	}
	for i := range l.Past {
		resp.Past = append(resp.Past, NewBookingResponse(&l.Past[i]))
	}
	for i := range l.Future {
		resp.Future = append(resp.Future, NewBookingResponse(&l.Future[i]))
	}
	return resp
}

// CreateBookingRequest is the payload for reserving a slot. Date and
// times are local wall values; the server converts them for storage.
type CreateBookingRequest struct {
	CourtID string `json:"court_id" binding:"required,uuid"`
	Date    string `json:"date" binding:"required"`
	Start   string `json:"start" binding:"required"`
	End     string `json:"end" binding:"required"`
}
