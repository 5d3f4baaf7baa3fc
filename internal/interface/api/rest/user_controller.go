package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hospital-manager-api/internal/application/ports"
	domain "hospital-manager-api/internal/domain/user"
	userDTO "hospital-manager-api/internal/interface/api/rest/dto/user"
	"hospital-manager-api/internal/interface/api/rest/middleware"
	"hospital-manager-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.GET(RouteUsers, middleware.RequireAnyRole(domain.RoleAdmin, domain.RoleManager), uc.GetUsersHandler)
	// GET by id and DELETE stay open: the admin service calls them during
	// doctor sagas and carries no identity headers of its own
	r.GET(RouteUser, uc.GetUserHandler)
	r.POST(RouteUsers, uc.RegisterUserHandler)
	r.PUT(RouteUser, middleware.RequireAnyRole(domain.RoleAdmin, domain.RoleManager), uc.UpdateUserHandler)
	r.DELETE(RouteUser, uc.DeleteUserHandler)
	r.GET(RouteCenterActiveUsers, uc.HasActiveUsersHandler)

	return uc
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users, err := uc.userService.FindUsers(c.Request.Context(), page)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, userDTO.ResponseData{
		Data: userDTO.ToResponseUsers(users),
	})
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("user_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a positive integer"})
		return
	}

	includeDisabled := c.Query("include_disabled") == "true"

	u, err := uc.userService.FindUserByID(c.Request.Context(), domain.ID(id), includeDisabled)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, userDTO.ToResponseUser(*u))
}

func (uc *UserController) RegisterUserHandler(c *gin.Context) {
	var req userDTO.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUser(&req, true); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := uc.userService.RegisterUser(c.Request.Context(), userDTO.ToDomainUser(req), req.Password)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, userDTO.ToResponseUser(*u))
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("user_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a positive integer"})
		return
	}

	var req userDTO.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUser(&req, false); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	uDomain := userDTO.ToDomainUser(req)
	uDomain.ID = domain.ID(id)

	u, err := uc.userService.UpdateUser(c.Request.Context(), uDomain)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, userDTO.ToResponseUser(*u))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("user_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a positive integer"})
		return
	}

	hard := c.Query("hard") == "true"

	if err := uc.userService.DeleteUser(c.Request.Context(), domain.ID(id), hard); err != nil {
		respondError(c, uc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (uc *UserController) HasActiveUsersHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("center_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "center_id must be a positive integer"})
		return
	}

	busy, err := uc.userService.HasActiveUsersInCenter(c.Request.Context(), id)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"value": busy})
}
