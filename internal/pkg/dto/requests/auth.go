package requests

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// BackendLogin is the body of the backend /auth/login call.
type BackendLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type BackendRefresh struct {
	RefreshToken string `json:"refreshToken"`
}

type SelectClinic struct {
	ClinicID string `json:"clinic_id" validate:"required"`
}
