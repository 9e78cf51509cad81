package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"travel-backend/services"
	"travel-backend/utils"
)

type loginPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPayload struct {
	Email string `json:"email"`
}

type resetPasswordPayload struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// Login accepts either identifier field; which one the service compares is
// its configuration, so both login form variants share this handler.
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	identifier := strings.TrimSpace(payload.Username)
	if ctrl.Auth.IdentifierField == services.IdentifierEmail {
		identifier = strings.TrimSpace(payload.Email)
	}

	result, err := ctrl.Auth.Login(identifier, payload.Password)
	if err != nil {
		// Never reveal which field was wrong.
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"token":         result.Token,
		"redirect_path": result.RedirectPath,
		"user": gin.H{
			"id":        result.User.ID,
			"full_name": result.User.FullName,
			"role":      result.User.Role,
		},
	})
}

func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	var payload forgotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	email := strings.TrimSpace(payload.Email)
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "email required"})
		return
	}

	ctrl.Auth.ForgotPassword(email)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "If this email exists, a reset link was sent.",
	})
}

func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	var payload resetPasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	// Validate before touching the database so a mismatch or short password
	// never consumes the token.
	if payload.ConfirmPassword != "" && payload.Password != payload.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "passwords do not match"})
		return
	}

	if err := ctrl.Auth.ResetPassword(payload.Token, payload.Password); err != nil {
		switch {
		case strings.Contains(err.Error(), "validation"):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		case strings.Contains(err.Error(), "invalid_or_expired_token"):
			utils.JSONErrorCode(c, http.StatusBadRequest, "error.invalidOrExpiredToken", "reset link is invalid or expired")
		default:
			utils.JSONErrorCode(c, http.StatusInternalServerError, "error.internal", "could not reset password")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "password updated"})
}
