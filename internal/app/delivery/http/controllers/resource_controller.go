package controllers

import (
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/dto/responses"
	"clinic-console-service/internal/pkg/exceptions"
	"clinic-console-service/internal/pkg/utils"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// ResourceController exposes the CRUD screen of one resource.
type ResourceController[T responses.Entity, F requests.Form] struct {
	Log             *zap.Logger
	ResourceUsecase contracts.ResourceUsecase[T, F]
	UIStateUsecase  contracts.UIStateUsecase
}

func NewResourceController[T responses.Entity, F requests.Form](
	logger *zap.Logger,
	resourceUsecase contracts.ResourceUsecase[T, F],
	uiStateUsecase contracts.UIStateUsecase,
) *ResourceController[T, F] {
	return &ResourceController[T, F]{
		Log:             logger,
		ResourceUsecase: resourceUsecase,
		UIStateUsecase:  uiStateUsecase,
	}
}

// FindAll lists one page. Without a page query param the page the user last
// viewed on this screen is used.
func (ctrl *ResourceController[T, F]) FindAll(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	params := utils.BuildQueryParams(r)
	if !r.URL.Query().Has(constvars.URLQueryParamPage) {
		state, err := ctrl.UIStateUsecase.Get(r.Context(), session)
		if err == nil {
			pagination := state.PaginationFor(ctrl.ResourceUsecase.Name())
			params.Page = pagination.Page
			params.PageSize = pagination.PageSize
		}
	}
	err = utils.ValidateStruct(params)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.ResourceUsecase.FindAll(r.Context(), session, params)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(r.Context(), err))
		return
	}

	pagination := utils.BuildPaginationResponse(result.TotalCount, params.Page, params.PageSize, r.URL.Path)
	message := fmt.Sprintf(constvars.GetResourcesSuccessfully, ctrl.ResourceUsecase.Name())
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, message, pagination, result.Items)
}

func (ctrl *ResourceController[T, F]) FindByID(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	id, err := urlParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	entity, err := ctrl.ResourceUsecase.FindByID(r.Context(), session, id)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(r.Context(), err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccessfully, ctrl.ResourceUsecase.Name()), entity)
}

func (ctrl *ResourceController[T, F]) Create(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	form := new(F)
	err = utils.DecodeAndValidate(r, form)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	entity, err := ctrl.ResourceUsecase.Create(r.Context(), session, form)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(r.Context(), err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, fmt.Sprintf(constvars.CreateResourceSuccessfully, ctrl.ResourceUsecase.Name()), entity)
}

func (ctrl *ResourceController[T, F]) Update(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	id, err := urlParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	form := new(F)
	err = utils.DecodeAndValidate(r, form)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	entity, err := ctrl.ResourceUsecase.Update(r.Context(), session, id, form)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(r.Context(), err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.UpdateResourceSuccessfully, ctrl.ResourceUsecase.Name()), entity)
}

func (ctrl *ResourceController[T, F]) Delete(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	id, err := urlParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.ResourceUsecase.Delete(r.Context(), session, id)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(r.Context(), err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.DeleteResourceSuccessfully, ctrl.ResourceUsecase.Name()), nil)
}
