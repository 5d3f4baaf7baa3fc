package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hospital-manager-api/internal/application/ports"
	domain "hospital-manager-api/internal/domain/consultation"
	"hospital-manager-api/internal/domain/user"
	consultationDTO "hospital-manager-api/internal/interface/api/rest/dto/consultation"
	"hospital-manager-api/internal/interface/api/rest/middleware"
	"hospital-manager-api/internal/interface/api/rest/validator"
)

type ConsultationController struct {
	consultationService ports.ConsultationService
	logger              *zap.Logger
}

func NewConsultationController(
	r *gin.Engine,
	consultationService ports.ConsultationService,
	logger *zap.Logger,
) *ConsultationController {
	cc := &ConsultationController{
		consultationService: consultationService,
		logger:              logger,
	}

	r.GET(RouteConsultations, cc.GetConsultationsHandler)
	r.GET(RouteConsultation, cc.GetConsultationHandler)
	r.POST(RouteConsultations, middleware.RequireAnyRole(user.RoleDoctor), cc.CreateConsultationHandler)
	r.PUT(RouteConsultation, middleware.RequireAnyRole(user.RoleDoctor, user.RoleManager), cc.UpdateConsultationHandler)
	r.DELETE(RouteConsultation, middleware.RequireAnyRole(user.RoleAdmin, user.RoleManager), cc.DeleteConsultationHandler)

	// probes for the admin service's delete sagas
	r.GET(RouteDoctorFutureAppointments, cc.HasFutureAppointmentsHandler)
	r.GET(RouteCenterActiveAppointments, cc.HasActiveAppointmentsHandler)

	return cc
}

func (cc *ConsultationController) GetConsultationsHandler(c *gin.Context) {
	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	consultations, err := cc.consultationService.FindConsultations(c.Request.Context(), page)
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, consultationDTO.ResponseData{
		Data: consultationDTO.ToResponses(consultations),
	})
}

func (cc *ConsultationController) GetConsultationHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("consultation_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "consultation_id must be a positive integer"})
		return
	}

	con, err := cc.consultationService.FindConsultationByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, consultationDTO.ToResponse(*con))
}

func (cc *ConsultationController) CreateConsultationHandler(c *gin.Context) {
	var req consultationDTO.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateConsultation(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	con, err := cc.consultationService.CreateConsultation(c.Request.Context(), consultationDTO.ToDomain(req))
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, consultationDTO.ToResponse(*con))
}

func (cc *ConsultationController) UpdateConsultationHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("consultation_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "consultation_id must be a positive integer"})
		return
	}

	var req consultationDTO.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateConsultation(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	cDomain := consultationDTO.ToDomain(req)
	cDomain.ID = domain.ID(id)

	con, err := cc.consultationService.UpdateConsultation(c.Request.Context(), cDomain)
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, consultationDTO.ToResponse(*con))
}

func (cc *ConsultationController) DeleteConsultationHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("consultation_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "consultation_id must be a positive integer"})
		return
	}

	if err := cc.consultationService.DeleteConsultation(c.Request.Context(), domain.ID(id)); err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (cc *ConsultationController) HasFutureAppointmentsHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("doctor_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doctor_id must be a positive integer"})
		return
	}

	busy, err := cc.consultationService.HasFutureAppointments(c.Request.Context(), id)
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"value": busy})
}

func (cc *ConsultationController) HasActiveAppointmentsHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("center_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "center_id must be a positive integer"})
		return
	}

	busy, err := cc.consultationService.HasActiveAppointmentsInCenter(c.Request.Context(), id)
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"value": busy})
}
