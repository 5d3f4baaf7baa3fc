package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth                 = RouteApiV1 + "/auth"
	RouteLogin                = RouteAuth + "/login"
	RoutePasswordReset        = RouteAuth + "/password-reset"
	RoutePasswordResetConfirm = RoutePasswordReset + "/confirm"

	// identity service
	RouteUsers             = RouteApiV1 + "/users"
	RouteUser              = RouteUsers + "/:user_id"
	RouteCenterActiveUsers = RouteApiV1 + "/centers/:center_id/active-users"

	// admin service
	RouteCenters     = RouteApiV1 + "/centers"
	RouteCenter      = RouteCenters + "/:center_id"
	RouteSpecialties = RouteApiV1 + "/specialties"
	RouteSpecialty   = RouteSpecialties + "/:specialty_id"
	RouteDoctors     = RouteApiV1 + "/doctors"
	RouteDoctor      = RouteDoctors + "/:doctor_id"

	// consulting service
	RoutePatients                 = RouteApiV1 + "/patients"
	RoutePatient                  = RoutePatients + "/:patient_id"
	RouteConsultations            = RouteApiV1 + "/consultations"
	RouteConsultation             = RouteConsultations + "/:consultation_id"
	RouteDoctorFutureAppointments = RouteApiV1 + "/doctors/:doctor_id/future-appointments"
	RouteCenterActiveAppointments = RouteApiV1 + "/centers/:center_id/active-appointments"
	RouteCenterActivePatients     = RouteApiV1 + "/centers/:center_id/active-patients"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
