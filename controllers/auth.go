package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeil-marcom/site_end/models"
	"github.com/jeil-marcom/site_end/repository"
	"github.com/jeil-marcom/site_end/utils"
)

// AuthController issues and acknowledges dashboard session tokens.
type AuthController struct {
	admins AdminStore
	tokens *utils.TokenManager
}

// NewAuthController wires the auth endpoints.
func NewAuthController(admins AdminStore, tokens *utils.TokenManager) *AuthController {
	return &AuthController{admins: admins, tokens: tokens}
}

// Login handles POST /api/auth/admin/login.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "Email and password are required", http.StatusBadRequest)
		return
	}

	user, err := ac.admins.FindByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		utils.Logger.Info().Str("email", req.Email).Msg("login failed: unknown email")
		utils.ErrorResponse(c, "Invalid email or password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		utils.Logger.Info().Str("email", req.Email).Msg("login failed: bad password")
		utils.ErrorResponse(c, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := ac.tokens.GenerateToken(*user)
	if err != nil {
		utils.ErrorResponse(c, "Failed to generate login token", http.StatusInternalServerError)
		return
	}

	utils.Logger.Info().Str("email", user.Email).Msg("admin logged in")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless; the client
// discards its copy and this just acknowledges.
func (ac *AuthController) Logout(c *gin.Context) {
	if user, err := utils.UserFromContext(c); err == nil {
		utils.Logger.Info().Str("email", user.Email).Msg("admin logged out")
	}
	utils.SuccessResponse(c, nil, "Logged out successfully")
}
