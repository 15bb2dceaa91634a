package responses

type Doctor struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	LicenseNumber  string `json:"licenseNumber"`
	SpecialityID   string `json:"medicalSpecialtyId"`
	SpecialityName string `json:"medicalSpecialtyName,omitempty"`
	ClinicID       string `json:"clinicId,omitempty"`
}

func (d Doctor) GetID() string { return d.ID }

func (d Doctor) ToLookupOption() LookupOption {
	label := fullName(d.FirstName, d.LastName)
	if d.SpecialityName != "" {
		label += " (" + d.SpecialityName + ")"
	}
	return LookupOption{Value: d.ID, Label: label}
}

func (d Doctor) CSVHeader() []string {
	return []string{"id", "first_name", "last_name", "email", "phone", "license_number", "speciality"}
}

func (d Doctor) CSVRecord() []string {
	return []string{d.ID, d.FirstName, d.LastName, d.Email, d.Phone, d.LicenseNumber, d.SpecialityName}
}
