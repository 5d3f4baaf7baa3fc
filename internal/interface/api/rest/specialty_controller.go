package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hospital-manager-api/internal/application/ports"
	domain "hospital-manager-api/internal/domain/specialty"
	"hospital-manager-api/internal/domain/user"
	specialtyDTO "hospital-manager-api/internal/interface/api/rest/dto/specialty"
	"hospital-manager-api/internal/interface/api/rest/middleware"
	"hospital-manager-api/internal/interface/api/rest/validator"
)

type SpecialtyController struct {
	specialtyService ports.SpecialtyService
	logger           *zap.Logger
}

func NewSpecialtyController(
	r *gin.Engine,
	specialtyService ports.SpecialtyService,
	logger *zap.Logger,
) *SpecialtyController {
	sc := &SpecialtyController{
		specialtyService: specialtyService,
		logger:           logger,
	}

	r.GET(RouteSpecialties, sc.GetSpecialtiesHandler)
	r.GET(RouteSpecialty, sc.GetSpecialtyHandler)
	r.POST(RouteSpecialties, middleware.RequireAnyRole(user.RoleAdmin, user.RoleManager), sc.CreateSpecialtyHandler)
	r.PUT(RouteSpecialty, middleware.RequireAnyRole(user.RoleAdmin, user.RoleManager), sc.UpdateSpecialtyHandler)
	r.DELETE(RouteSpecialty, middleware.RequireAnyRole(user.RoleAdmin), sc.DeleteSpecialtyHandler)

	return sc
}

func (sc *SpecialtyController) GetSpecialtiesHandler(c *gin.Context) {
	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	specialties, err := sc.specialtyService.FindSpecialties(c.Request.Context(), page)
	if err != nil {
		respondError(c, sc.logger, err)
		return
	}

	c.JSON(http.StatusOK, specialtyDTO.ResponseData{
		Data: specialtyDTO.ToResponses(specialties),
	})
}

func (sc *SpecialtyController) GetSpecialtyHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("specialty_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "specialty_id must be a positive integer"})
		return
	}

	s, err := sc.specialtyService.FindSpecialtyByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		respondError(c, sc.logger, err)
		return
	}

	c.JSON(http.StatusOK, specialtyDTO.ToResponse(*s))
}

func (sc *SpecialtyController) CreateSpecialtyHandler(c *gin.Context) {
	var req specialtyDTO.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateSpecialty(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	s, err := sc.specialtyService.CreateSpecialty(c.Request.Context(), specialtyDTO.ToDomain(req))
	if err != nil {
		respondError(c, sc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, specialtyDTO.ToResponse(*s))
}

func (sc *SpecialtyController) UpdateSpecialtyHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("specialty_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "specialty_id must be a positive integer"})
		return
	}

	var req specialtyDTO.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateSpecialty(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	sDomain := specialtyDTO.ToDomain(req)
	sDomain.ID = domain.ID(id)

	s, err := sc.specialtyService.UpdateSpecialty(c.Request.Context(), sDomain)
	if err != nil {
		respondError(c, sc.logger, err)
		return
	}

	c.JSON(http.StatusOK, specialtyDTO.ToResponse(*s))
}

func (sc *SpecialtyController) DeleteSpecialtyHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("specialty_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "specialty_id must be a positive integer"})
		return
	}

	if err := sc.specialtyService.DeleteSpecialty(c.Request.Context(), domain.ID(id)); err != nil {
		respondError(c, sc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
