package routers

import (
	"clinic-console-service/internal/app/delivery/http/middlewares"
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, ctrls *Controllers) {
	router.Use(middlewares.RequireRoles(models.RoleAdmin))

	attachCRUDRoutes(router, constvars.ConsoleResourceClinics, ctrls.Clinics)
	attachCRUDRoutes(router, constvars.ConsoleResourceClinicAdmins, ctrls.ClinicAdmins)
	attachCRUDRoutes(router, constvars.ConsoleResourceSpecialities, ctrls.Specialities)
	attachCRUDRoutes(router, constvars.ConsoleResourceStudies, ctrls.Studies)
}

func attachClinicRoutes(router chi.Router, middlewares *middlewares.Middlewares, ctrls *Controllers) {
	router.Use(middlewares.RequireRoles(models.RoleClinic))

	attachCRUDRoutes(router, constvars.ConsoleResourceDoctors, ctrls.Doctors)
	attachCRUDRoutes(router, constvars.ConsoleResourcePatients, ctrls.Patients)
	attachReadRoutes(router, constvars.ConsoleResourceConsultations, ctrls.Consultations)
}

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, ctrls *Controllers) {
	router.Use(middlewares.RequireRoles(models.RoleDoctor))

	router.Get("/clinics", ctrls.Doctor.FindClinics)
	router.Put("/clinics/selected", ctrls.Doctor.SelectClinic)
	attachCRUDRoutes(router, constvars.ConsoleResourceConsultations, ctrls.Consultations)
	attachReadRoutes(router, constvars.ConsoleResourcePatients, ctrls.Patients)
}

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, ctrls *Controllers) {
	router.Use(middlewares.RequireRoles(models.RolePatient))

	attachReadRoutes(router, constvars.ConsoleResourceConsultations, ctrls.Consultations)
	router.Get("/profile", ctrls.Auth.Me)
}

// attachConsoleRoutes serves every role: dropdowns, ui state, toasts and exports.
func attachConsoleRoutes(router chi.Router, ctrls *Controllers) {
	resourcePath := fmt.Sprintf("/{%s}", constvars.URLParamResource)

	router.Get("/lookups"+resourcePath, ctrls.Lookup.Lookup)
	router.Post("/exports"+resourcePath, ctrls.Export.Export)

	router.Get("/ui-state", ctrls.UIState.Get)
	router.Post("/ui-state/actions", ctrls.UIState.Dispatch)

	router.Get("/toasts", ctrls.UIState.GetToasts)
	router.Delete("/toasts", ctrls.UIState.ClearToasts)
}
