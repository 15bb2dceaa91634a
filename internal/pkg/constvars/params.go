package constvars

const (
	URLParamID       = "id"
	URLParamResource = "resource"
)

const (
	URLQueryParamPage       = "page"
	URLQueryParamPageSize   = "page_size"
	URLQueryParamSearchTerm = "search_term"
)

// Query params understood by the clinic backend.
const (
	BackendQueryParamPageIndex  = "pageIndex"
	BackendQueryParamPageSize   = "pageSize"
	BackendQueryParamSearchTerm = "searchTerm"
	BackendQueryParamClinicID   = "clinicId"
	BackendQueryParamDoctorID   = "doctorId"
	BackendQueryParamPatientID  = "patientId"
)

const (
	DefaultPage        = 1
	DefaultPageSize    = 10
	MaxPageSize        = 100
	LookupPageSize     = 20
	ExportPageSize     = 100
	ExportMaxPageCount = 500
)

const (
	ExportRateLimitGroup           = "export"
	ExportQuotaPerWindow           = 5
	ExportRateLimitWindowInSeconds = 60
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
