package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hospital-manager-api/internal/application/ports"
	domain "hospital-manager-api/internal/domain/center"
	"hospital-manager-api/internal/domain/user"
	centerDTO "hospital-manager-api/internal/interface/api/rest/dto/center"
	"hospital-manager-api/internal/interface/api/rest/middleware"
	"hospital-manager-api/internal/interface/api/rest/validator"
)

type CenterController struct {
	centerService ports.CenterService
	logger        *zap.Logger
}

func NewCenterController(
	r *gin.Engine,
	centerService ports.CenterService,
	logger *zap.Logger,
) *CenterController {
	cc := &CenterController{
		centerService: centerService,
		logger:        logger,
	}

	// GET by id doubles as the existence probe used by the peer services
	r.GET(RouteCenters, cc.GetCentersHandler)
	r.GET(RouteCenter, cc.GetCenterHandler)
	r.POST(RouteCenters, middleware.RequireAnyRole(user.RoleAdmin, user.RoleManager), cc.CreateCenterHandler)
	r.PUT(RouteCenter, middleware.RequireAnyRole(user.RoleAdmin, user.RoleManager), cc.UpdateCenterHandler)
	r.DELETE(RouteCenter, middleware.RequireAnyRole(user.RoleAdmin), cc.DeleteCenterHandler)

	return cc
}

func (cc *CenterController) GetCentersHandler(c *gin.Context) {
	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	centers, err := cc.centerService.FindCenters(c.Request.Context(), page)
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, centerDTO.ResponseData{
		Data: centerDTO.ToResponses(centers),
	})
}

func (cc *CenterController) GetCenterHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("center_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "center_id must be a positive integer"})
		return
	}

	ctr, err := cc.centerService.FindCenterByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, centerDTO.ToResponse(*ctr))
}

func (cc *CenterController) CreateCenterHandler(c *gin.Context) {
	var req centerDTO.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateCenter(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	ctr, err := cc.centerService.CreateCenter(c.Request.Context(), centerDTO.ToDomain(req))
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, centerDTO.ToResponse(*ctr))
}

func (cc *CenterController) UpdateCenterHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("center_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "center_id must be a positive integer"})
		return
	}

	var req centerDTO.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateCenter(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	cDomain := centerDTO.ToDomain(req)
	cDomain.ID = domain.ID(id)

	ctr, err := cc.centerService.UpdateCenter(c.Request.Context(), cDomain)
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, centerDTO.ToResponse(*ctr))
}

func (cc *CenterController) DeleteCenterHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("center_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "center_id must be a positive integer"})
		return
	}

	if err := cc.centerService.DeleteCenter(c.Request.Context(), domain.ID(id)); err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
