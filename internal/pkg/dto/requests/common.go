package requests

// Form is a console form that converts into the body the backend expects.
type Form interface {
	ToPayload() interface{}
}

// ScopeAware forms receive the session scope before being sent, so a doctor
// cannot create a consultation outside the selected clinic.
type ScopeAware interface {
	ApplyScope(scope Scope)
}

// Scope narrows backend queries to what the session may see.
type Scope struct {
	ClinicID  string
	DoctorID  string
	PatientID string
}

func (s Scope) IsZero() bool {
	return s.ClinicID == "" && s.DoctorID == "" && s.PatientID == ""
}

// LookupOption is the value picked in a lazy-loaded dropdown.
type LookupOption struct {
	Value string `json:"value" validate:"required"`
	Label string `json:"label"`
}

func lookupValue(option *LookupOption) string {
	if option == nil {
		return ""
	}
	return option.Value
}

type QueryParams struct {
	Page       int    `validate:"gte=1"`
	PageSize   int    `validate:"gte=1,lte=100"`
	SearchTerm string `validate:"max=100"`
	Scope      Scope
}

type Lookup struct {
	SearchTerm string `validate:"max=100"`
	Page       int    `validate:"gte=1"`
}

type Export struct {
	SearchTerm string `json:"search_term" validate:"max=100"`
}
