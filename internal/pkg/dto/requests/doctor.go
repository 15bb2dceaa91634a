package requests

type Doctor struct {
	FirstName     string        `json:"first_name" validate:"required,max=50"`
	LastName      string        `json:"last_name" validate:"required,max=50"`
	Email         string        `json:"email" validate:"required,email"`
	Phone         string        `json:"phone" validate:"required,phone"`
	LicenseNumber string        `json:"license_number" validate:"required,max=30"`
	Password      string        `json:"password" validate:"omitempty,min=6"`
	Speciality    *LookupOption `json:"speciality" validate:"required"`
	ClinicID      string        `json:"-"`
}

type DoctorPayload struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"licenseNumber"`
	Password      string `json:"password,omitempty"`
	SpecialityID  string `json:"medicalSpecialtyId"`
	ClinicID      string `json:"clinicId,omitempty"`
}

func (f *Doctor) ApplyScope(scope Scope) {
	if scope.ClinicID != "" {
		f.ClinicID = scope.ClinicID
	}
}

func (f Doctor) ToPayload() interface{} {
	return DoctorPayload{
		FirstName:     f.FirstName,
		LastName:      f.LastName,
		Email:         f.Email,
		Phone:         f.Phone,
		LicenseNumber: f.LicenseNumber,
		Password:      f.Password,
		SpecialityID:  lookupValue(f.Speciality),
		ClinicID:      f.ClinicID,
	}
}
