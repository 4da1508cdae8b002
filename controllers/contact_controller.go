package controllers

import (
	"log"
	"net/http"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

// ContactController takes inbound inquiries. Persistence is the only
// guarantee; the email relay is best-effort and never fails the request.
type ContactController struct {
	Svc    *services.ContactService
	Mailer *services.Mailer
}

func NewContactController(svc *services.ContactService, mailer *services.Mailer) *ContactController {
	return &ContactController{Svc: svc, Mailer: mailer}
}

// POST /contact
func (ctl *ContactController) Create(c *gin.Context) {
	var input services.ContactCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	msg, err := ctl.Svc.Create(input)
	if err != nil {
		respondDBError(c, err, "Mensaje no encontrado")
		return
	}

	if err := ctl.Mailer.SendContactNotification(msg); err != nil {
		log.Printf("warning: contact notification failed (message %d persisted): %v", msg.ID, err)
	}

	utils.JSONMessage(c, http.StatusOK, "Mensaje enviado correctamente")
}

// GET /admin/contact-messages
func (ctl *ContactController) List(c *gin.Context) {
	messages, err := ctl.Svc.List()
	if err != nil {
		respondDBError(c, err, "Mensaje no encontrado")
		return
	}
	c.JSON(http.StatusOK, messages)
}
