package routers

import (
	"clinic-console-service/internal/app/config"
	"clinic-console-service/internal/app/delivery/http/controllers"
	"clinic-console-service/internal/app/delivery/http/middlewares"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/dto/responses"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Auth    *controllers.AuthController
	Doctor  *controllers.DoctorController
	Lookup  *controllers.LookupController
	UIState *controllers.UIStateController
	Export  *controllers.ExportController

	Clinics       *controllers.ResourceController[responses.Clinic, requests.Clinic]
	ClinicAdmins  *controllers.ResourceController[responses.ClinicAdmin, requests.ClinicAdmin]
	Doctors       *controllers.ResourceController[responses.Doctor, requests.Doctor]
	Patients      *controllers.ResourceController[responses.Patient, requests.Patient]
	Specialities  *controllers.ResourceController[responses.Speciality, requests.Speciality]
	Studies       *controllers.ResourceController[responses.Study, requests.Study]
	Consultations *controllers.ResourceController[responses.MedicalConsultation, requests.MedicalConsultation]
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig.App.FrontendDomain),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	if internalConfig.App.MaxRequests > 0 {
		window := time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
		if window <= 0 {
			window = time.Second
		}
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, window))
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)
	router.Use(middlewares.RequestTimeout)

	endpointPrefix := "/" + strings.Trim(internalConfig.App.EndpointPrefix, "/")
	versionPrefix := "/" + strings.Trim(internalConfig.App.Version, "/")

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, ctrls.Auth)
			})

			r.Group(func(r chi.Router) {
				r.Use(middlewares.Authenticate)

				r.Get("/navigation", ctrls.Auth.Navigation)
				attachConsoleRoutes(r, ctrls)

				r.Route("/admin", func(r chi.Router) {
					attachAdminRoutes(r, middlewares, ctrls)
				})
				r.Route("/clinic", func(r chi.Router) {
					attachClinicRoutes(r, middlewares, ctrls)
				})
				r.Route("/doctor", func(r chi.Router) {
					attachDoctorRoutes(r, middlewares, ctrls)
				})
				r.Route("/patient", func(r chi.Router) {
					attachPatientRoutes(r, middlewares, ctrls)
				})
			})
		})
	})
}

func allowedOrigins(frontendDomain string) []string {
	origins := []string{}
	for _, origin := range strings.Split(frontendDomain, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
