package utils

import (
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/exceptions"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

func BuildQueryParams(r *http.Request) *requests.QueryParams {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get(constvars.URLQueryParamPage))
	if err != nil || page <= 0 {
		page = constvars.DefaultPage
	}

	pageSize, err := strconv.Atoi(query.Get(constvars.URLQueryParamPageSize))
	if err != nil || pageSize <= 0 {
		pageSize = constvars.DefaultPageSize
	}
	if pageSize > constvars.MaxPageSize {
		pageSize = constvars.MaxPageSize
	}

	return &requests.QueryParams{
		Page:       page,
		PageSize:   pageSize,
		SearchTerm: strings.TrimSpace(query.Get(constvars.URLQueryParamSearchTerm)),
	}
}

// DecodeAndValidate reads the JSON body into dst and validates it.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
