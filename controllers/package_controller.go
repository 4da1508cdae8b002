package controllers

import (
	"net/http"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

// PackageController handles the admin package mutations.
type PackageController struct {
	Svc   *services.PackageService
	Media *services.MediaService
}

func NewPackageController(svc *services.PackageService, media *services.MediaService) *PackageController {
	return &PackageController{Svc: svc, Media: media}
}

// POST /admin/packages
func (ctl *PackageController) Create(c *gin.Context) {
	var input services.PackageCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	pkg, err := ctl.Svc.Create(c.Request.Context(), input)
	if err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	c.JSON(http.StatusCreated, pkg.View())
}

// PUT /admin/packages/:id — partial update, only supplied fields change.
func (ctl *PackageController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	pkg, err := ctl.Svc.Update(c.Request.Context(), id, fields)
	if err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	c.JSON(http.StatusOK, pkg.View())
}

// DELETE /admin/packages/:id
func (ctl *PackageController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctl.Svc.Delete(c.Request.Context(), id); err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Paquete eliminado correctamente")
}

type promotePayload struct {
	Promoted *bool `json:"promoted" binding:"required"`
}

// PUT /admin/packages/:id/promote
func (ctl *PackageController) Promote(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var payload promotePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "'promoted' is required")
		return
	}

	pkg, err := ctl.Svc.Promote(c.Request.Context(), id, *payload.Promoted)
	if err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	c.JSON(http.StatusOK, pkg.View())
}

type carouselOrderPayload struct {
	CarouselOrder *int `json:"carousel_order" binding:"required"`
}

// PUT /admin/packages/:id/carousel-order
func (ctl *PackageController) SetCarouselOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var payload carouselOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "'carousel_order' is required")
		return
	}

	pkg, err := ctl.Svc.SetCarouselOrder(c.Request.Context(), id, *payload.CarouselOrder)
	if err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	c.JSON(http.StatusOK, pkg.View())
}

type reorderPayload struct {
	Orders []services.ReorderEntry `json:"orders" binding:"required"`
}

// POST /admin/packages/reorder-carousel — one transaction; invalid ids
// are skipped, the valid updates commit together.
func (ctl *PackageController) ReorderCarousel(c *gin.Context) {
	var payload reorderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "'orders' is required")
		return
	}

	applied, err := ctl.Svc.ReorderCarousel(c.Request.Context(), payload.Orders)
	if err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applied": applied})
}

// POST /admin/upload-cover-image — multipart upload, returns the
// provider URL to attach as a package cover.
func (ctl *PackageController) UploadCoverImage(c *gin.Context) {
	data, filename, ok := readUpload(c, ctl.Media, "file")
	if !ok {
		return
	}

	url, ok := uploadToProvider(c, ctl.Media, data, filename, "covers")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
