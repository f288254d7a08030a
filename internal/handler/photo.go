package handler

import (
	"PhotoVault/internal/dto"
	"PhotoVault/internal/service"
	"PhotoVault/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PhotoHandler exposes the list and upload operations over HTTP.
type PhotoHandler struct {
	Svc *service.PhotoService
}

// NewPhotoHandler builds the photo handler.
func NewPhotoHandler(svc *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{Svc: svc}
}

// List returns the photos visible to the caller with signed URLs.
func (h *PhotoHandler) List(c *gin.Context) {
	ident, err := h.Svc.Ext.FromClaims(
		c.GetString("subject_id"),
		c.GetString("email"),
		c.GetString("role"),
	)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	resp, err := h.Svc.ListPhotos(c.Request.Context(), ident)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Upload validates and stores a photo, then its metadata record.
func (h *PhotoHandler) Upload(c *gin.Context) {
	ident, err := h.Svc.Ext.FromClaims(
		c.GetString("subject_id"),
		c.GetString("email"),
		c.GetString("role"),
	)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	var req dto.UploadPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, err)
		return
	}
	resp, err := h.Svc.UploadPhoto(c.Request.Context(), ident, &req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
