package controllers

import (
	"net/http"
	"strings"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthController issues and refreshes admin tokens. It never learns how
// credentials are stored; that is the CredentialStore's business.
type AuthController struct {
	Creds         services.CredentialStore
	SecretKey     string
	ExpiryMinutes int
}

func NewAuthController(creds services.CredentialStore, secretKey string, expiryMinutes int) *AuthController {
	return &AuthController{Creds: creds, SecretKey: secretKey, ExpiryMinutes: expiryMinutes}
}

// POST /admin/login
func (ctl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	// Same answer for wrong user and wrong password.
	if !ctl.Creds.Verify(username, payload.Password) {
		utils.JSONError(c, http.StatusUnauthorized, "Credenciales incorrectas")
		return
	}

	token, err := utils.GenerateToken(username, ctl.SecretKey, ctl.ExpiryMinutes)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// POST /admin/refresh-token — bearer-gated; reissues a token for the
// already-authenticated subject without re-presenting credentials.
func (ctl *AuthController) RefreshToken(c *gin.Context) {
	username := c.GetString("username")
	if username == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid authentication credentials")
		return
	}

	token, err := utils.GenerateToken(username, ctl.SecretKey, ctl.ExpiryMinutes)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}
