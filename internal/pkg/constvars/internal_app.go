package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CLNC_CNSL_"
)

// Backend REST resources.
const (
	ResourceAuthLogin            = "/auth/login"
	ResourceAuthRefresh          = "/auth/refresh"
	ResourceClinics              = "clinics"
	ResourceClinicAdministrators = "clinicadministrators"
	ResourceDoctors              = "doctors"
	ResourcePatients             = "patients"
	ResourceMedicalTests         = "medicaltests"
	ResourceMedicalSpecialties   = "medicalspecialties"
	ResourceMedicalConsultations = "medicalconsultations"
	ResourceDoctorClinicsFormat  = "/doctors/%s/clinics"
)

// Console route names, used by lookups, exports and navigation.
const (
	ConsoleResourceClinics       = "clinics"
	ConsoleResourceClinicAdmins  = "clinic-admins"
	ConsoleResourceDoctors       = "doctors"
	ConsoleResourcePatients      = "patients"
	ConsoleResourceStudies       = "studies"
	ConsoleResourceSpecialities  = "specialities"
	ConsoleResourceConsultations = "consultations"
)

const (
	DashboardRoute = "/dashboard"
)

// Backend userType values.
const (
	UserTypeAdmin   = 1
	UserTypeClinic  = 2
	UserTypeDoctor  = 3
	UserTypePatient = 4
)

// Claims read from backend access tokens.
const (
	BackendClaimUserType = "userType"
	BackendClaimUserID   = "userId"
	BackendClaimSubject  = "sub"
	BackendClaimClinicID = "clinicId"
	BackendClaimEmail    = "email"
)

const (
	ConsoleClaimSessionID = "session_id"
)

const (
	RedisKeySessionFormat          = "session:%s"
	RedisKeyDoctorClinicsFormat    = "session:%s:doctor:available_clinics"
	RedisKeySelectedClinicFormat   = "session:%s:doctor:selected_clinic_id"
	RedisKeyUIStateFormat          = "session:%s:ui_state"
	RedisKeyUIStateLockFormat      = "lock:session:%s:ui_state"
	RedisKeyTokenRefreshLockFormat = "lock:session:%s:token_refresh"
	RedisKeyQueryCacheEntryFormat  = "querycache:entry:%s"
	RedisKeyQueryCacheTagFormat    = "querycache:tag:%s"
)

const (
	CacheTagListSuffix = "LIST"
	CacheTagFormat     = "%s:%s"
)

const (
	ExportObjectNameFormat = "%s/%s-%s.csv"
)
