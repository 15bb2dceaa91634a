package clinicapi

import (
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/dto/responses"
	"clinic-console-service/internal/pkg/exceptions"
	"clinic-console-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type authClient struct {
	Base *BaseClient
	Log  *zap.Logger
}

func NewAuthClient(base *BaseClient, logger *zap.Logger) contracts.AuthClient {
	return &authClient{
		Base: base,
		Log:  logger,
	}
}

// Login exchanges credentials for a backend token pair. Any 400, 401 or 403
// from the backend is reported as invalid credentials.
func (c *authClient) Login(ctx context.Context, request *requests.Login) (*responses.BackendLogin, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("authClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result := new(responses.BackendLogin)
	err := c.Base.DoAnonymous(ctx, &Request{
		Method: constvars.MethodPost,
		Path:   constvars.ResourceAuthLogin,
		Body:   requests.BackendLogin{Email: request.Email, Password: request.Password},
	}, result)
	if err != nil {
		switch exceptions.StatusCodeOf(err) {
		case constvars.StatusBadRequest, constvars.StatusUnauthorized, constvars.StatusForbidden, constvars.StatusNotFound:
			return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
		default:
			return nil, err
		}
	}

	if result.AccessToken == "" {
		return nil, exceptions.ErrParseBackendToken(nil)
	}
	return result, nil
}

func (c *authClient) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	c.Log.Info("authClient.Refresh called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return c.Base.callRefresh(ctx, refreshToken)
}
