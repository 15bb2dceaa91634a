package responses

type Speciality struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s Speciality) GetID() string { return s.ID }

func (s Speciality) ToLookupOption() LookupOption {
	return LookupOption{Value: s.ID, Label: s.Name}
}

func (s Speciality) CSVHeader() []string {
	return []string{"id", "name", "description"}
}

func (s Speciality) CSVRecord() []string {
	return []string{s.ID, s.Name, s.Description}
}

// Study is a medical test that can be ordered during a consultation.
type Study struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s Study) GetID() string { return s.ID }

func (s Study) ToLookupOption() LookupOption {
	return LookupOption{Value: s.ID, Label: s.Name}
}

func (s Study) CSVHeader() []string {
	return []string{"id", "name", "description"}
}

func (s Study) CSVRecord() []string {
	return []string{s.ID, s.Name, s.Description}
}
