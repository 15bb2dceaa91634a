package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	LoginSuccess   = "successfully login"
	LogoutSuccess  = "successfully logout"
	ProfileSuccess = "get profile successfully"

	GetNavigationSuccessfully    = "get navigation successfully"
	GetResourcesSuccessfully     = "get %s successfully"
	GetResourceSuccessfully      = "get %s detail successfully"
	CreateResourceSuccessfully   = "%s created successfully"
	UpdateResourceSuccessfully   = "%s updated successfully"
	DeleteResourceSuccessfully   = "%s deleted successfully"
	GetLookupSuccessfully        = "get %s options successfully"
	GetDoctorClinicsSuccessfully = "get doctor clinics successfully"
	SelectClinicSuccessfully     = "clinic selected successfully"
	GetUIStateSuccessfully       = "get ui state successfully"
	DispatchUIStateSuccessfully  = "ui state updated successfully"
	GetToastsSuccessfully        = "get toasts successfully"
	ClearToastsSuccessfully      = "toasts cleared successfully"
	CreateExportSuccessfully     = "export created successfully"
)

// Toast texts shown after screen actions.
const (
	ToastSummarySuccess      = "Success"
	ToastSummaryError        = "Error"
	ToastDetailCreatedFormat = "%s created"
	ToastDetailUpdatedFormat = "%s updated"
	ToastDetailDeletedFormat = "%s deleted"
	ToastDetailGenericError  = "Something went wrong, please try again"
)
