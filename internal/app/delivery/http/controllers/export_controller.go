package controllers

import (
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/exceptions"
	"clinic-console-service/internal/pkg/utils"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ExportController struct {
	Log           *zap.Logger
	ExportUsecase contracts.ExportUsecase
}

func NewExportController(logger *zap.Logger, exportUsecase contracts.ExportUsecase) *ExportController {
	return &ExportController{
		Log:           logger,
		ExportUsecase: exportUsecase,
	}
}

// Export accepts an empty body to export the whole list.
func (ctrl *ExportController) Export(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	resource, err := urlParam(r, constvars.URLParamResource)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.Export)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil && !errors.Is(err, io.EOF) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.SearchTerm = strings.TrimSpace(request.SearchTerm)
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.ExportUsecase.Export(r.Context(), session, resource, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(r.Context(), err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateExportSuccessfully, result)
}
