package http

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/esteveseverson/fastapi-playtime/internal/court"
	"github.com/esteveseverson/fastapi-playtime/internal/pkg/response"
	"github.com/esteveseverson/fastapi-playtime/internal/pkg/storage"
)

const (
	maxPhotoSize    = 8 << 20 // 8 MiB
	thumbnailWidth  = 640
	thumbnailHeight = 480
)

type Handler struct {
	service   court.Service
	store     storage.Storage
	processor *storage.ImageProcessor
}

func NewHandler(service court.Service, store storage.Storage, processor *storage.ImageProcessor) *Handler {
	return &Handler{
		service:   service,
		store:     store,
		processor: processor,
	}
}

func (h *Handler) List(c *gin.Context) {
	courts, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list courts"})
		return
	}

	items := make([]CourtResponse, 0, len(courts))
	for _, crt := range courts {
		items = append(items, NewCourtResponse(crt))
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	crt, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(crt))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	// New courts are bookable unless the request says otherwise.
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	crt, err := h.service.Create(c.Request.Context(), court.CreateRequest{
		Name:        req.Name,
		Description: req.Description,
		Available:   available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCourtResponse(crt))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	crt, err := h.service.Update(c.Request.Context(), id, court.UpdateRequest{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(crt))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadPhoto stores a court photo plus a JPEG thumbnail.
func (h *Handler) UploadPhoto(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	if fileHeader.Size > maxPhotoSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "photo too large"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only jpeg and png photos are accepted"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read photo"})
		return
	}
	defer file.Close()

	ctx := c.Request.Context()

	photoPath := fmt.Sprintf("courts/%s%s", id, ext)
	if err := h.store.Save(ctx, photoPath, file); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store photo"})
		return
	}

	// Re-open for the thumbnail pass; multipart files support seeking but
	// a fresh reader keeps this independent of that detail.
	thumbSrc, err := fileHeader.Open()
	if err == nil {
		defer thumbSrc.Close()
		if thumb, terr := h.processor.GenerateThumbnail(thumbSrc, thumbnailWidth, thumbnailHeight); terr == nil {
			_ = h.store.Save(ctx, fmt.Sprintf("courts/%s_thumb.jpg", id), thumb)
		}
	}

	crt, err := h.service.AttachPhoto(ctx, id, photoPath)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(crt))
}

// GetPhoto streams the stored court photo.
func (h *Handler) GetPhoto(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	crt, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if crt.PhotoPath == nil {
		response.Error(c, court.ErrNoPhoto)
		return
	}

	reader, err := h.store.Get(c.Request.Context(), *crt.PhotoPath)
	if err != nil {
		response.Error(c, court.ErrNoPhoto)
		return
	}
	defer reader.Close()

	contentType := "image/jpeg"
	if strings.HasSuffix(*crt.PhotoPath, ".png") {
		contentType = "image/png"
	}

	c.DataFromReader(http.StatusOK, -1, contentType, reader, nil)
}
