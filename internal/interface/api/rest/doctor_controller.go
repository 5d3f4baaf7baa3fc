package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hospital-manager-api/internal/application/ports"
	domain "hospital-manager-api/internal/domain/doctor"
	"hospital-manager-api/internal/domain/user"
	doctorDTO "hospital-manager-api/internal/interface/api/rest/dto/doctor"
	"hospital-manager-api/internal/interface/api/rest/middleware"
	"hospital-manager-api/internal/interface/api/rest/validator"
)

type DoctorController struct {
	doctorService ports.DoctorService
	logger        *zap.Logger
}

func NewDoctorController(
	r *gin.Engine,
	doctorService ports.DoctorService,
	logger *zap.Logger,
) *DoctorController {
	dc := &DoctorController{
		doctorService: doctorService,
		logger:        logger,
	}

	r.GET(RouteDoctors, dc.GetDoctorsHandler)
	r.GET(RouteDoctor, dc.GetDoctorHandler)
	r.POST(RouteDoctors, middleware.RequireAnyRole(user.RoleAdmin, user.RoleManager), dc.RegisterDoctorHandler)
	r.PUT(RouteDoctor, middleware.RequireAnyRole(user.RoleAdmin, user.RoleManager), dc.UpdateDoctorHandler)
	// removing a doctor touches two services, so it takes both hats
	r.DELETE(RouteDoctor, middleware.RequireAllRoles(user.RoleAdmin, user.RoleManager), dc.DeleteDoctorHandler)

	return dc
}

func (dc *DoctorController) GetDoctorsHandler(c *gin.Context) {
	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctors, err := dc.doctorService.FindDoctors(c.Request.Context(), page)
	if err != nil {
		respondError(c, dc.logger, err)
		return
	}

	c.JSON(http.StatusOK, doctorDTO.ResponseData{
		Data: doctorDTO.ToResponses(doctors),
	})
}

func (dc *DoctorController) GetDoctorHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("doctor_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doctor_id must be a positive integer"})
		return
	}

	d, err := dc.doctorService.FindDoctorByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		respondError(c, dc.logger, err)
		return
	}

	c.JSON(http.StatusOK, doctorDTO.ToResponse(*d))
}

func (dc *DoctorController) RegisterDoctorHandler(c *gin.Context) {
	var req doctorDTO.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateRegisterDoctor(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	d, err := dc.doctorService.RegisterDoctor(c.Request.Context(), doctorDTO.ToRegister(req))
	if err != nil {
		respondError(c, dc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, doctorDTO.ToResponse(*d))
}

func (dc *DoctorController) UpdateDoctorHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("doctor_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doctor_id must be a positive integer"})
		return
	}

	var req doctorDTO.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	d, err := dc.doctorService.UpdateDoctor(c.Request.Context(), domain.Doctor{
		ID:          domain.ID(id),
		Version:     req.Version,
		SpecialtyID: req.SpecialtyID,
	})
	if err != nil {
		respondError(c, dc.logger, err)
		return
	}

	c.JSON(http.StatusOK, doctorDTO.ToResponse(*d))
}

func (dc *DoctorController) DeleteDoctorHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("doctor_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doctor_id must be a positive integer"})
		return
	}

	if err := dc.doctorService.DeleteDoctor(c.Request.Context(), domain.ID(id)); err != nil {
		respondError(c, dc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
