package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/esteveseverson/fastapi-playtime/internal/auth"
	"github.com/esteveseverson/fastapi-playtime/internal/booking"
	"github.com/esteveseverson/fastapi-playtime/internal/pkg/response"
	"github.com/esteveseverson/fastapi-playtime/internal/user"
)

type Handler struct {
	service     booking.Service
	userService user.Service
}

func NewHandler(service booking.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
	}
}

// actor resolves the authenticated caller to a full user, including the
// role the authorization rules need.
func (h *Handler) actor(c *gin.Context) (*user.User, bool) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil, false
	}

	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil, false
	}
	return u, true
}

// Create reserves a slot for the authenticated caller.
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actor, ok := h.actor(c)
	if !ok {
		return
	}

	view, err := h.service.Create(c.Request.Context(), actor, booking.CreateRequest{
		CourtID: req.CourtID,
		Date:    req.Date,
		Start:   req.Start,
		End:     req.End,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(view))
}

// List returns every booking partitioned into past and future. Admin only.
func (h *Handler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	listing, err := h.service.ListAll(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewListingResponse(listing))
}

// Get returns a single booking by ID.
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	view, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(view))
}

// Delete cancels a booking. Owner or admin only.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	actor, ok := h.actor(c)
	if !ok {
		return
	}

	if err := h.service.Cancel(c.Request.Context(), actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "booking cancelled")
}
