package main

import (
	"clinic-console-service/internal/app/config"
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/app/delivery/http/controllers"
	"clinic-console-service/internal/app/delivery/http/middlewares"
	"clinic-console-service/internal/app/delivery/http/routers"
	"clinic-console-service/internal/app/drivers/database"
	"clinic-console-service/internal/app/drivers/logger"
	"clinic-console-service/internal/app/drivers/messaging"
	"clinic-console-service/internal/app/drivers/storage"
	"clinic-console-service/internal/app/services/clinicapi"
	"clinic-console-service/internal/app/services/core/auth"
	"clinic-console-service/internal/app/services/core/doctors"
	"clinic-console-service/internal/app/services/core/exports"
	"clinic-console-service/internal/app/services/core/resources"
	"clinic-console-service/internal/app/services/core/session"
	"clinic-console-service/internal/app/services/core/uistate"
	"clinic-console-service/internal/app/services/shared/activity"
	"clinic-console-service/internal/app/services/shared/locker"
	"clinic-console-service/internal/app/services/shared/querycache"
	"clinic-console-service/internal/app/services/shared/ratelimiter"
	"clinic-console-service/internal/app/services/shared/redis"
	sharedStorage "clinic-console-service/internal/app/services/shared/storage"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/dto/responses"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started",
			zap.String("port", internalConfig.App.Port),
			zap.String("version", Version),
			zap.String("tag", Tag),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close drivers: %v\n", err)
	}
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	cfg := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, log)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)

	queryCache := querycache.NewDisabledQueryCache()
	if cfg.Cache.Enabled {
		queryCache = querycache.NewQueryCache(redisRepository, log)
	}

	activityPublisher, err := activity.NewActivityPublisher(bootstrap.RabbitMQ, cfg.RabbitMQ.ActivityQueue, log)
	if err != nil {
		return err
	}

	var exportStorage contracts.Storage
	if bootstrap.Minio != nil {
		exportStorage = sharedStorage.NewMinioStorage(bootstrap.Minio)
	}

	// Session
	sessionService := session.NewSessionService(redisRepository, log)

	// Clinic backend
	baseClient := clinicapi.NewBaseClient(cfg, sessionService, lockService, log)
	authClient := clinicapi.NewAuthClient(baseClient, log)
	doctorClient := clinicapi.NewDoctorClient(baseClient, log)

	// Usecases
	authUsecase := auth.NewAuthUsecase(authClient, doctorClient, sessionService, cfg, log)
	doctorUsecase := doctors.NewDoctorUsecase(doctorClient, sessionService, log)
	uiStateUsecase := uistate.NewUIStateUsecase(redisRepository, lockService, cfg, log)
	scopes := resources.NewScopeResolver(doctorUsecase)

	clinicUsecase := resources.NewUsecase[responses.Clinic, requests.Clinic](
		constvars.ConsoleResourceClinics, "Clinic",
		clinicapi.NewResourceClient[responses.Clinic](baseClient, constvars.ResourceClinics, log),
		queryCache, scopes, uiStateUsecase, activityPublisher, cfg, log,
	)
	clinicAdminUsecase := resources.NewUsecase[responses.ClinicAdmin, requests.ClinicAdmin](
		constvars.ConsoleResourceClinicAdmins, "Clinic administrator",
		clinicapi.NewResourceClient[responses.ClinicAdmin](baseClient, constvars.ResourceClinicAdministrators, log),
		queryCache, scopes, uiStateUsecase, activityPublisher, cfg, log,
	)
	doctorResourceUsecase := resources.NewUsecase[responses.Doctor, requests.Doctor](
		constvars.ConsoleResourceDoctors, "Doctor",
		clinicapi.NewResourceClient[responses.Doctor](baseClient, constvars.ResourceDoctors, log),
		queryCache, scopes, uiStateUsecase, activityPublisher, cfg, log,
	)
	patientUsecase := resources.NewUsecase[responses.Patient, requests.Patient](
		constvars.ConsoleResourcePatients, "Patient",
		clinicapi.NewResourceClient[responses.Patient](baseClient, constvars.ResourcePatients, log),
		queryCache, scopes, uiStateUsecase, activityPublisher, cfg, log,
	)
	specialityUsecase := resources.NewUsecase[responses.Speciality, requests.Speciality](
		constvars.ConsoleResourceSpecialities, "Speciality",
		clinicapi.NewResourceClient[responses.Speciality](baseClient, constvars.ResourceMedicalSpecialties, log),
		queryCache, scopes, uiStateUsecase, activityPublisher, cfg, log,
	)
	studyUsecase := resources.NewUsecase[responses.Study, requests.Study](
		constvars.ConsoleResourceStudies, "Study",
		clinicapi.NewResourceClient[responses.Study](baseClient, constvars.ResourceMedicalTests, log),
		queryCache, scopes, uiStateUsecase, activityPublisher, cfg, log,
	)
	consultationUsecase := resources.NewUsecase[responses.MedicalConsultation, requests.MedicalConsultation](
		constvars.ConsoleResourceConsultations, "Consultation",
		clinicapi.NewResourceClient[responses.MedicalConsultation](baseClient, constvars.ResourceMedicalConsultations, log),
		queryCache, scopes, uiStateUsecase, activityPublisher, cfg, log,
	)

	registry := resources.NewRegistry(
		clinicUsecase,
		clinicAdminUsecase,
		doctorResourceUsecase,
		patientUsecase,
		specialityUsecase,
		studyUsecase,
		consultationUsecase,
	)
	exportUsecase := exports.NewExportUsecase(registry, exportStorage, resourceLimiter, cfg, log)

	// Delivery
	middlewares := middlewares.NewMiddlewares(log, authUsecase, cfg)
	routers.SetupRoutes(bootstrap.Router, cfg, middlewares, &routers.Controllers{
		Auth:    controllers.NewAuthController(log, authUsecase),
		Doctor:  controllers.NewDoctorController(log, doctorUsecase),
		Lookup:  controllers.NewLookupController(log, registry),
		UIState: controllers.NewUIStateController(log, uiStateUsecase),
		Export:  controllers.NewExportController(log, exportUsecase),

		Clinics:       controllers.NewResourceController[responses.Clinic, requests.Clinic](log, clinicUsecase, uiStateUsecase),
		ClinicAdmins:  controllers.NewResourceController[responses.ClinicAdmin, requests.ClinicAdmin](log, clinicAdminUsecase, uiStateUsecase),
		Doctors:       controllers.NewResourceController[responses.Doctor, requests.Doctor](log, doctorResourceUsecase, uiStateUsecase),
		Patients:      controllers.NewResourceController[responses.Patient, requests.Patient](log, patientUsecase, uiStateUsecase),
		Specialities:  controllers.NewResourceController[responses.Speciality, requests.Speciality](log, specialityUsecase, uiStateUsecase),
		Studies:       controllers.NewResourceController[responses.Study, requests.Study](log, studyUsecase, uiStateUsecase),
		Consultations: controllers.NewResourceController[responses.MedicalConsultation, requests.MedicalConsultation](log, consultationUsecase, uiStateUsecase),
	})

	return nil
}
