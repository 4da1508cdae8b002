package controllers

import (
	"net/http"

	"travel-backend/config"
	"travel-backend/services"

	"github.com/gin-gonic/gin"
)

// ConfigController serves liveness and the public configuration values
// the front-end needs before rendering.
type ConfigController struct {
	Cfg   *config.Config
	Media *services.MediaService
}

func NewConfigController(cfg *config.Config, media *services.MediaService) *ConfigController {
	return &ConfigController{Cfg: cfg, Media: media}
}

// GET /health
func (ctl *ConfigController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "ARMAN TRAVEL API funcionando correctamente",
	})
}

// GET /config
func (ctl *ConfigController) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"contact_email":         ctl.Cfg.ContactEmail,
		"whatsapp_number":       ctl.Cfg.WhatsAppNumber,
		"cloudinary_configured": ctl.Media.Configured(),
	})
}

// GET /config/contact
func (ctl *ConfigController) GetContactConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"contact_email":   ctl.Cfg.ContactEmail,
		"whatsapp_number": ctl.Cfg.WhatsAppNumber,
	})
}
