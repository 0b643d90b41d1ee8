package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/esteveseverson/fastapi-playtime/internal/pkg/apperror"
)

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON shape of confirmation replies.
type MessageResponse struct {
	Message string `json:"message"`
}

// Error writes a JSON error reply. AppError values decide their own
// status code; anything else becomes a 500 without leaking details.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// Message writes a JSON confirmation reply with the given status.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, MessageResponse{Message: msg})
}
