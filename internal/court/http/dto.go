package http

import (
	"time"

	"github.com/esteveseverson/fastapi-playtime/internal/court"
)

// CourtResponse is the API representation of a court.
type CourtResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	HasPhoto    bool      `json:"has_photo"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCourtResponse converts a domain court to its API representation.
func NewCourtResponse(crt *court.Court) CourtResponse {
	return CourtResponse{
		ID:          crt.ID,
		Name:        crt.Name,
		Description: crt.Description,
		Available:   crt.Available,
		HasPhoto:    crt.PhotoPath != nil,
		CreatedAt:   crt.CreatedAt,
	}
}

// CreateCourtRequest is the payload for court creation.
type CreateCourtRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
}

// UpdateCourtRequest is the payload for partial court updates. Pointers
// distinguish "not sent" from zero values.
type UpdateCourtRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}
