package controllers

import (
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/exceptions"
	"clinic-console-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// LookupController feeds the lazy-loaded dropdowns of the console forms.
type LookupController struct {
	Log      *zap.Logger
	Registry contracts.LookupRegistry
}

func NewLookupController(logger *zap.Logger, registry contracts.LookupRegistry) *LookupController {
	return &LookupController{
		Log:      logger,
		Registry: registry,
	}
}

func (ctrl *LookupController) Lookup(w http.ResponseWriter, r *http.Request) {
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

	query := r.URL.Query()
	page, err := strconv.Atoi(query.Get(constvars.URLQueryParamPage))
	if err != nil || page < 1 {
		page = constvars.DefaultPage
	}
	searchTerm := query.Get(constvars.BackendQueryParamSearchTerm)
	if searchTerm == "" {
		searchTerm = query.Get(constvars.URLQueryParamSearchTerm)
	}
	request := &requests.Lookup{
		SearchTerm: strings.TrimSpace(searchTerm),
		Page:       page,
	}
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	source, err := ctrl.Registry.Source(session.Role, resource)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	options, err := source.Lookup(r.Context(), session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(r.Context(), err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetLookupSuccessfully, resource), options)
}
