package controllers

import (
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/app/services/core/auth"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	// Bind and validate body
	request := new(requests.Login)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))

	// Send it to be processed by usecase
	result, err := ctrl.AuthUsecase.Login(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(r.Context(), err))
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, result)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.AuthUsecase.Logout(r.Context(), session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(r.Context(), err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	profile, err := ctrl.AuthUsecase.Profile(r.Context(), session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(r.Context(), err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileSuccess, profile)
}

func (ctrl *AuthController) Navigation(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNavigationSuccessfully, auth.NavigationFor(session.Role))
}
