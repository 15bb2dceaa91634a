package requests

type Patient struct {
	FirstName      string `json:"first_name" validate:"required,max=50"`
	LastName       string `json:"last_name" validate:"required,max=50"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,phone"`
	DocumentNumber string `json:"document_number" validate:"required,numeric,min=6,max=12"`
	BirthDate      string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Gender         string `json:"gender" validate:"required,oneof=male female other"`
	Address        string `json:"address" validate:"omitempty,max=200"`
	Password       string `json:"password" validate:"omitempty,min=6"`
}

type PatientPayload struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DocumentNumber string `json:"documentNumber"`
	BirthDate      string `json:"birthDate"`
	Gender         string `json:"gender"`
	Address        string `json:"address,omitempty"`
	Password       string `json:"password,omitempty"`
}

func (f Patient) ToPayload() interface{} {
	return PatientPayload(f)
}
