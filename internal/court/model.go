package court

import (
	"net/http"
	"time"

	"github.com/esteveseverson/fastapi-playtime/internal/pkg/apperror"
)

var (
	ErrNotFound  = apperror.New(http.StatusNotFound, "court not found")
	ErrEmptyName = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrNoPhoto   = apperror.New(http.StatusNotFound, "court has no photo")
)

// Court is a bookable asset ("quadra"). Available gates whether new
// bookings are accepted; flipping it off does not touch existing ones.
type Court struct {
	ID          string // UUID
	Name        string
	Description string
	Available   bool
	PhotoPath   *string
	CreatedAt   time.Time
}
