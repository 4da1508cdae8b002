package controllers

import (
	"net/http"

	"travel-backend/services"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the public read API.
type CatalogController struct {
	Svc *services.CatalogService
}

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: svc}
}

// GET /packages
func (ctl *CatalogController) GetPackages(c *gin.Context) {
	views, err := ctl.Svc.ListPackages(c.Request.Context())
	if err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	c.JSON(http.StatusOK, views)
}

// GET /packages/promoted
func (ctl *CatalogController) GetPromoted(c *gin.Context) {
	views, err := ctl.Svc.ListPromoted(c.Request.Context())
	if err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	c.JSON(http.StatusOK, views)
}

// GET /packages/:id
func (ctl *CatalogController) GetPackage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := ctl.Svc.GetPackage(c.Request.Context(), id)
	if err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /packages/:id/hotels
func (ctl *CatalogController) GetHotels(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	hotels, err := ctl.Svc.ListHotels(c.Request.Context(), id)
	if err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"hotels":       hotels,
		"destinations": services.HotelsByDestination(hotels),
	})
}

// GET /packages/:id/gallery
func (ctl *CatalogController) GetGallery(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	images, err := ctl.Svc.ListGallery(c.Request.Context(), id)
	if err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	c.JSON(http.StatusOK, images)
}

// GET /packages/:id/info
func (ctl *CatalogController) GetInfo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	rows, err := ctl.Svc.ListInfo(c.Request.Context(), id)
	if err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /packages/:id/features
func (ctl *CatalogController) GetFeatures(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	rows, err := ctl.Svc.ListFeatures(c.Request.Context(), id)
	if err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	c.JSON(http.StatusOK, rows)
}
