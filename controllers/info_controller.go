package controllers

import (
	"net/http"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

// InfoController handles the admin mutations on info rows and feature
// rows; the two share the ordering discipline so they share a service.
type InfoController struct {
	Svc *services.InfoService
}

func NewInfoController(svc *services.InfoService) *InfoController {
	return &InfoController{Svc: svc}
}

// POST /admin/packages/:id/info
func (ctl *InfoController) CreateInfo(c *gin.Context) {
	packageID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.InfoCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	row, err := ctl.Svc.CreateInfo(c.Request.Context(), packageID, input)
	if err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	c.JSON(http.StatusCreated, row)
}

// PUT /admin/packages/:id/info/:infoId
func (ctl *InfoController) UpdateInfo(c *gin.Context) {
	packageID, ok := parseID(c, "id")
	if !ok {
		return
	}
	infoID, ok := parseID(c, "infoId")
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	row, err := ctl.Svc.UpdateInfo(c.Request.Context(), packageID, infoID, fields)
	if err != nil {
		respondDBError(c, err, "Información no encontrada")
		return
	}
	c.JSON(http.StatusOK, row)
}

// DELETE /admin/packages/:id/info/:infoId
func (ctl *InfoController) DeleteInfo(c *gin.Context) {
	packageID, ok := parseID(c, "id")
	if !ok {
		return
	}
	infoID, ok := parseID(c, "infoId")
	if !ok {
		return
	}

	if err := ctl.Svc.DeleteInfo(c.Request.Context(), packageID, infoID); err != nil {
		respondDBError(c, err, "Información no encontrada")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Información eliminada correctamente")
}

// POST /admin/packages/:id/features
func (ctl *InfoController) CreateFeature(c *gin.Context) {
	packageID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.FeatureCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "'text' is required")
		return
	}

	row, err := ctl.Svc.CreateFeature(c.Request.Context(), packageID, input)
	if err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	c.JSON(http.StatusCreated, row)
}

// PUT /admin/packages/:id/features/:featureId
func (ctl *InfoController) UpdateFeature(c *gin.Context) {
	packageID, ok := parseID(c, "id")
	if !ok {
		return
	}
	featureID, ok := parseID(c, "featureId")
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	row, err := ctl.Svc.UpdateFeature(c.Request.Context(), packageID, featureID, fields)
	if err != nil {
		respondDBError(c, err, "Característica no encontrada")
		return
	}
	c.JSON(http.StatusOK, row)
}

// DELETE /admin/packages/:id/features/:featureId
func (ctl *InfoController) DeleteFeature(c *gin.Context) {
	packageID, ok := parseID(c, "id")
	if !ok {
		return
	}
	featureID, ok := parseID(c, "featureId")
	if !ok {
		return
	}

	if err := ctl.Svc.DeleteFeature(c.Request.Context(), packageID, featureID); err != nil {
		respondDBError(c, err, "Característica no encontrada")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Característica eliminada correctamente")
}
