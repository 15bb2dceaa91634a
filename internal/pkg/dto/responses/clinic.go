package responses

import "strings"

type Clinic struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (c Clinic) GetID() string { return c.ID }

func (c Clinic) ToLookupOption() LookupOption {
	return LookupOption{Value: c.ID, Label: c.Name}
}

func (c Clinic) CSVHeader() []string {
	return []string{"id", "name", "address", "phone", "email"}
}

func (c Clinic) CSVRecord() []string {
	return []string{c.ID, c.Name, c.Address, c.Phone, c.Email}
}

type ClinicAdmin struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ClinicID   string `json:"clinicId"`
	ClinicName string `json:"clinicName,omitempty"`
}

func (a ClinicAdmin) GetID() string { return a.ID }

func (a ClinicAdmin) ToLookupOption() LookupOption {
	return LookupOption{Value: a.ID, Label: fullName(a.FirstName, a.LastName)}
}

func (a ClinicAdmin) CSVHeader() []string {
	return []string{"id", "first_name", "last_name", "email", "phone", "clinic_id", "clinic_name"}
}

func (a ClinicAdmin) CSVRecord() []string {
	return []string{a.ID, a.FirstName, a.LastName, a.Email, a.Phone, a.ClinicID, a.ClinicName}
}

func fullName(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}
