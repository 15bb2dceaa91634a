package requests

type Clinic struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"required,max=200"`
	Phone   string `json:"phone" validate:"required,phone"`
	Email   string `json:"email" validate:"required,email"`
}

type ClinicPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (f Clinic) ToPayload() interface{} {
	return ClinicPayload(f)
}

type ClinicAdmin struct {
	FirstName string        `json:"first_name" validate:"required,max=50"`
	LastName  string        `json:"last_name" validate:"required,max=50"`
	Email     string        `json:"email" validate:"required,email"`
	Phone     string        `json:"phone" validate:"required,phone"`
	Password  string        `json:"password" validate:"omitempty,min=6"`
	Clinic    *LookupOption `json:"clinic" validate:"required"`
}

type ClinicAdminPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password,omitempty"`
	ClinicID  string `json:"clinicId"`
}

func (f ClinicAdmin) ToPayload() interface{} {
	return ClinicAdminPayload{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Phone:     f.Phone,
		Password:  f.Password,
		ClinicID:  lookupValue(f.Clinic),
	}
}
