package responses

type Patient struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DocumentNumber string `json:"documentNumber"`
	BirthDate      string `json:"birthDate"`
	Gender         string `json:"gender"`
	Address        string `json:"address,omitempty"`
}

func (p Patient) GetID() string { return p.ID }

func (p Patient) ToLookupOption() LookupOption {
	label := fullName(p.FirstName, p.LastName)
	if p.DocumentNumber != "" {
		label += " - " + p.DocumentNumber
	}
	return LookupOption{Value: p.ID, Label: label}
}

func (p Patient) CSVHeader() []string {
	return []string{"id", "first_name", "last_name", "email", "phone", "document_number", "birth_date", "gender"}
}

func (p Patient) CSVRecord() []string {
	return []string{p.ID, p.FirstName, p.LastName, p.Email, p.Phone, p.DocumentNumber, p.BirthDate, p.Gender}
}
