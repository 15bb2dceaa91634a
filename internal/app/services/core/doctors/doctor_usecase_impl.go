package doctors

import (
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/dto/responses"
	"clinic-console-service/internal/pkg/exceptions"
	"clinic-console-service/internal/pkg/utils"
	"context"
	"errors"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorClient   contracts.DoctorClient
	SessionService contracts.SessionService
	Log            *zap.Logger
}

func NewDoctorUsecase(
	doctorClient contracts.DoctorClient,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorClient:   doctorClient,
		SessionService: sessionService,
		Log:            logger,
	}
}

// FindClinics returns the clinics saved at login, reloading them from the
// backend when the session has none.
func (uc *doctorUsecase) FindClinics(ctx context.Context, session *models.Session) (*responses.DoctorClinics, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.FindClinics called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	clinics, err := uc.availableClinics(ctx, session)
	if err != nil {
		return nil, err
	}

	selectedClinicID, err := uc.SessionService.GetSelectedClinic(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}
	if selectedClinicID == "" && len(clinics) > 0 {
		selectedClinicID = clinics[0].ID
		err = uc.SessionService.SetSelectedClinic(ctx, session.SessionID, selectedClinicID)
		if err != nil {
			return nil, err
		}
	}

	return &responses.DoctorClinics{
		Clinics:          clinics,
		SelectedClinicID: selectedClinicID,
	}, nil
}

func (uc *doctorUsecase) SelectClinic(ctx context.Context, session *models.Session, request *requests.SelectClinic) (*responses.DoctorClinics, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.SelectClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingResourceIDKey, request.ClinicID),
	)

	clinics, err := uc.availableClinics(ctx, session)
	if err != nil {
		return nil, err
	}
	if !containsClinic(clinics, request.ClinicID) {
		utils.LogSecurityEvent(uc.Log, "clinic_not_available", requestID,
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.String(constvars.LoggingResourceIDKey, request.ClinicID),
		)
		return nil, exceptions.ErrClinicNotAvailable(nil, request.ClinicID)
	}

	err = uc.SessionService.SetSelectedClinic(ctx, session.SessionID, request.ClinicID)
	if err != nil {
		uc.Log.Error("doctorUsecase.SelectClinic error calling SessionService.SetSelectedClinic",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.DoctorClinics{
		Clinics:          clinics,
		SelectedClinicID: request.ClinicID,
	}, nil
}

func (uc *doctorUsecase) SelectedClinicID(ctx context.Context, session *models.Session) (string, error) {
	clinicID, err := uc.SessionService.GetSelectedClinic(ctx, session.SessionID)
	if err != nil {
		return "", err
	}
	if clinicID == "" {
		return "", exceptions.ErrNoClinicSelected(errors.New(session.SessionID))
	}
	return clinicID, nil
}

func (uc *doctorUsecase) availableClinics(ctx context.Context, session *models.Session) ([]responses.Clinic, error) {
	clinics, err := uc.SessionService.GetDoctorClinics(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}
	if len(clinics) > 0 {
		return clinics, nil
	}

	clinics, err = uc.DoctorClient.FindClinics(utils.ContextWithSession(ctx, session), session.UserID)
	if err != nil {
		uc.Log.Error("doctorUsecase.availableClinics error calling DoctorClient.FindClinics",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.SessionService.SaveDoctorClinics(ctx, session.SessionID, clinics)
	if err != nil {
		return nil, err
	}
	return clinics, nil
}

func containsClinic(clinics []responses.Clinic, clinicID string) bool {
	for _, clinic := range clinics {
		if clinic.ID == clinicID {
			return true
		}
	}
	return false
}
