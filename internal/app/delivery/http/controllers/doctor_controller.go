package controllers

import (
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
	}
}

func (ctrl *DoctorController) FindClinics(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.DoctorUsecase.FindClinics(r.Context(), session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(r.Context(), err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorClinicsSuccessfully, result)
}

func (ctrl *DoctorController) SelectClinic(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.SelectClinic)
	err = utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.DoctorUsecase.SelectClinic(r.Context(), session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(r.Context(), err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SelectClinicSuccessfully, result)
}
