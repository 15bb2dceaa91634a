package auth

import (
	"clinic-console-service/internal/app/config"
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/dto/responses"
	"clinic-console-service/internal/pkg/exceptions"
	"clinic-console-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthClient     contracts.AuthClient
	DoctorClient   contracts.DoctorClient
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	now            func() time.Time
}

func NewAuthUsecase(
	authClient contracts.AuthClient,
	doctorClient contracts.DoctorClient,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		AuthClient:     authClient,
		DoctorClient:   doctorClient,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		Log:            logger,
		now:            time.Now,
	}
}

// Login authenticates against the clinic backend and opens a console session
// holding the backend token pair. Doctors additionally get their clinics
// persisted with the first one selected.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	backendLogin, err := uc.AuthClient.Login(ctx, request)
	if err != nil {
		utils.LogSecurityEvent(uc.Log, "login_rejected", requestID)
		return nil, err
	}

	err = uc.fillFromClaims(backendLogin)
	if err != nil {
		uc.Log.Error("authUsecase.Login error decoding backend token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	role, err := models.ParseUserType(backendLogin.UserType)
	if err != nil {
		utils.LogSecurityEvent(uc.Log, "login_unknown_user_type", requestID,
			zap.Int("user_type", backendLogin.UserType),
		)
		return nil, exceptions.ErrUnknownUserType(err, backendLogin.UserType)
	}

	now := uc.now()
	session := &models.Session{
		SessionID:    utils.GenerateSessionID(),
		UserID:       backendLogin.UserID,
		Email:        backendLogin.Email,
		FullName:     backendLogin.FullName,
		Role:         role,
		AccessToken:  backendLogin.AccessToken,
		RefreshToken: backendLogin.RefreshToken,
		CreatedAt:    now,
		ExpiresAt:    now.Add(uc.InternalConfig.Session.TTL()),
	}
	if session.Email == "" {
		session.Email = request.Email
	}
	if role == models.RoleClinic {
		session.ClinicID = backendLogin.ClinicID
		if session.ClinicID == "" {
			session.ClinicID = backendLogin.UserID
		}
	}

	err = uc.SessionService.CreateSession(ctx, session)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling SessionService.CreateSession",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.tokenTTL())
	if err != nil {
		_ = uc.SessionService.Logout(ctx, session.SessionID)
		return nil, err
	}

	response := &responses.Login{
		Token:      token,
		Role:       role.String(),
		RedirectTo: constvars.DashboardRoute,
		ExpiresAt:  session.ExpiresAt.Unix(),
	}

	if role == models.RoleDoctor {
		selectedClinicID, err := uc.loadDoctorClinics(utils.ContextWithSession(ctx, session), session)
		if err != nil {
			uc.Log.Error("authUsecase.Login error loading doctor clinics",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, session.UserID),
				zap.Error(err),
			)
			_ = uc.SessionService.Logout(context.WithoutCancel(ctx), session.SessionID)
			return nil, err
		}
		response.SelectedClinicID = selectedClinicID
	}

	utils.LogBusinessEvent(uc.Log, "console_login", requestID,
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingRoleKey, role.String()),
	)
	return response, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	err := uc.SessionService.Logout(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error calling SessionService.Logout",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *authUsecase) Profile(ctx context.Context, session *models.Session) (*responses.Profile, error) {
	uc.Log.Debug("authUsecase.Profile called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	return &responses.Profile{
		UserID:     session.UserID,
		Email:      session.Email,
		FullName:   session.FullName,
		Role:       session.Role.String(),
		ClinicID:   session.ClinicID,
		Navigation: NavigationFor(session.Role),
	}, nil
}

func (uc *authUsecase) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}
	return uc.SessionService.GetSession(ctx, sessionID)
}

// NavigationFor converts the role menu into its response shape.
func NavigationFor(role models.Role) []responses.NavigationItem {
	items := role.Navigation()
	navigation := make([]responses.NavigationItem, 0, len(items))
	for _, item := range items {
		navigation = append(navigation, responses.NavigationItem{
			Label:    item.Label,
			Route:    item.Route,
			Resource: item.Resource,
		})
	}
	return navigation
}

// fillFromClaims completes the login answer with the access token claims for
// the fields the backend body left out.
func (uc *authUsecase) fillFromClaims(backendLogin *responses.BackendLogin) error {
	if backendLogin.UserType != 0 && backendLogin.UserID != "" {
		return nil
	}

	claims, err := utils.DecodeBackendClaims(backendLogin.AccessToken)
	if err != nil {
		return err
	}
	if backendLogin.UserType == 0 {
		backendLogin.UserType = claims.UserType
	}
	if backendLogin.UserID == "" {
		backendLogin.UserID = claims.UserID
	}
	if backendLogin.ClinicID == "" {
		backendLogin.ClinicID = claims.ClinicID
	}
	if backendLogin.Email == "" {
		backendLogin.Email = claims.Email
	}
	return nil
}

func (uc *authUsecase) loadDoctorClinics(ctx context.Context, session *models.Session) (string, error) {
	clinics, err := uc.DoctorClient.FindClinics(ctx, session.UserID)
	if err != nil {
		return "", err
	}

	err = uc.SessionService.SaveDoctorClinics(ctx, session.SessionID, clinics)
	if err != nil {
		return "", err
	}
	if len(clinics) == 0 {
		return "", nil
	}

	selectedClinicID := clinics[0].ID
	err = uc.SessionService.SetSelectedClinic(ctx, session.SessionID, selectedClinicID)
	if err != nil {
		return "", err
	}
	return selectedClinicID, nil
}

func (uc *authUsecase) tokenTTL() time.Duration {
	if uc.InternalConfig.JWT.ExpTimeInHour > 0 {
		return time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	}
	return uc.InternalConfig.Session.TTL()
}
