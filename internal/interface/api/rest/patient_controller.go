package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hospital-manager-api/internal/application/ports"
	domain "hospital-manager-api/internal/domain/patient"
	"hospital-manager-api/internal/domain/user"
	patientDTO "hospital-manager-api/internal/interface/api/rest/dto/patient"
	"hospital-manager-api/internal/interface/api/rest/middleware"
	"hospital-manager-api/internal/interface/api/rest/validator"
)

type PatientController struct {
	patientService ports.PatientService
	logger         *zap.Logger
}

func NewPatientController(
	r *gin.Engine,
	patientService ports.PatientService,
	logger *zap.Logger,
) *PatientController {
	pc := &PatientController{
		patientService: patientService,
		logger:         logger,
	}

	r.GET(RoutePatients, pc.GetPatientsHandler)
	r.GET(RoutePatient, pc.GetPatientHandler)
	r.POST(RoutePatients, middleware.RequireAnyRole(user.RoleAdmin, user.RoleManager, user.RoleDoctor), pc.CreatePatientHandler)
	r.PUT(RoutePatient, middleware.RequireAnyRole(user.RoleAdmin, user.RoleManager, user.RoleDoctor), pc.UpdatePatientHandler)
	r.DELETE(RoutePatient, middleware.RequireAnyRole(user.RoleAdmin, user.RoleManager), pc.DeletePatientHandler)
	r.GET(RouteCenterActivePatients, pc.HasActivePatientsHandler)

	return pc
}

func (pc *PatientController) GetPatientsHandler(c *gin.Context) {
	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patients, err := pc.patientService.FindPatients(c.Request.Context(), page)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusOK, patientDTO.ResponseData{
		Data: patientDTO.ToResponses(patients),
	})
}

func (pc *PatientController) GetPatientHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("patient_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patient_id must be a positive integer"})
		return
	}

	p, err := pc.patientService.FindPatientByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusOK, patientDTO.ToResponse(*p))
}

func (pc *PatientController) CreatePatientHandler(c *gin.Context) {
	var req patientDTO.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidatePatient(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	pDomain, err := patientDTO.ToDomain(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	p, err := pc.patientService.CreatePatient(c.Request.Context(), pDomain)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, patientDTO.ToResponse(*p))
}

func (pc *PatientController) UpdatePatientHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("patient_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patient_id must be a positive integer"})
		return
	}

	var req patientDTO.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidatePatient(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	pDomain, err := patientDTO.ToDomain(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	pDomain.ID = domain.ID(id)

	p, err := pc.patientService.UpdatePatient(c.Request.Context(), pDomain)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusOK, patientDTO.ToResponse(*p))
}

func (pc *PatientController) DeletePatientHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("patient_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patient_id must be a positive integer"})
		return
	}

	if err := pc.patientService.DeletePatient(c.Request.Context(), domain.ID(id)); err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (pc *PatientController) HasActivePatientsHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("center_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "center_id must be a positive integer"})
		return
	}

	busy, err := pc.patientService.HasActivePatientsInCenter(c.Request.Context(), id)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"value": busy})
}
