package controllers

import (
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type UIStateController struct {
	Log            *zap.Logger
	UIStateUsecase contracts.UIStateUsecase
}

func NewUIStateController(logger *zap.Logger, uiStateUsecase contracts.UIStateUsecase) *UIStateController {
	return &UIStateController{
		Log:            logger,
		UIStateUsecase: uiStateUsecase,
	}
}

func (ctrl *UIStateController) Get(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	state, err := ctrl.UIStateUsecase.Get(r.Context(), session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(r.Context(), err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUIStateSuccessfully, state)
}

func (ctrl *UIStateController) Dispatch(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UIStateAction)
	err = utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	state, err := ctrl.UIStateUsecase.Dispatch(r.Context(), session, request.ToAction())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(r.Context(), err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DispatchUIStateSuccessfully, state)
}

func (ctrl *UIStateController) GetToasts(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	state, err := ctrl.UIStateUsecase.Get(r.Context(), session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(r.Context(), err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetToastsSuccessfully, state.Toasts.Items)
}

func (ctrl *UIStateController) ClearToasts(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	state, err := ctrl.UIStateUsecase.ClearToasts(r.Context(), session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(r.Context(), err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClearToastsSuccessfully, state.Toasts.Items)
}
