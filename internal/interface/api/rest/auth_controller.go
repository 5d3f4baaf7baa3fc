package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hospital-manager-api/internal/application/ports"
	authDTO "hospital-manager-api/internal/interface/api/rest/dto/auth"
	"hospital-manager-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	authService ports.Auth
	logger      *zap.Logger
}

func NewAuthController(
	r *gin.Engine,
	authService ports.Auth,
	logger *zap.Logger,
) *AuthController {
	ac := &AuthController{
		authService: authService,
		logger:      logger,
	}

	r.POST(RouteLogin, ac.LoginHandler)
	r.POST(RoutePasswordReset, ac.PasswordResetHandler)
	r.POST(RoutePasswordResetConfirm, ac.PasswordResetConfirmHandler)

	return ac
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req authDTO.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateLogin(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	tok, err := ac.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, authDTO.LoginResponse{AccessToken: tok})
}

func (ac *AuthController) PasswordResetHandler(c *gin.Context) {
	var req authDTO.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidatePasswordReset(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	tok, err := ac.authService.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusCreated, authDTO.PasswordResetResponse{Token: tok})
}

func (ac *AuthController) PasswordResetConfirmHandler(c *gin.Context) {
	var req authDTO.PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidatePasswordResetConfirm(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	if err := ac.authService.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
