package responses

// BackendLogin is what /auth/login of the clinic backend answers.
type BackendLogin struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserType     int    `json:"userType"`
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	ClinicID     string `json:"clinicId"`
}

type Login struct {
	Token            string `json:"token"`
	Role             string `json:"role"`
	RedirectTo       string `json:"redirect_to"`
	ExpiresAt        int64  `json:"expires_at"`
	SelectedClinicID string `json:"selected_clinic_id,omitempty"`
}

type Profile struct {
	UserID     string           `json:"user_id"`
	Email      string           `json:"email"`
	FullName   string           `json:"full_name,omitempty"`
	Role       string           `json:"role"`
	ClinicID   string           `json:"clinic_id,omitempty"`
	Navigation []NavigationItem `json:"navigation"`
}

type NavigationItem struct {
	Label    string `json:"label"`
	Route    string `json:"route"`
	Resource string `json:"resource,omitempty"`
}

type DoctorClinics struct {
	Clinics          []Clinic `json:"clinics"`
	SelectedClinicID string   `json:"selected_clinic_id,omitempty"`
}
