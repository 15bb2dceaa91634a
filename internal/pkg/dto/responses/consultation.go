package responses

import "strings"

type MedicalConsultation struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Reason      string   `json:"reason"`
	Diagnosis   string   `json:"diagnosis"`
	Treatment   string   `json:"treatment"`
	DoctorID    string   `json:"doctorId"`
	DoctorName  string   `json:"doctorName,omitempty"`
	PatientID   string   `json:"patientId"`
	PatientName string   `json:"patientName,omitempty"`
	ClinicID    string   `json:"clinicId"`
	ClinicName  string   `json:"clinicName,omitempty"`
	StudyIDs    []string `json:"medicalTestIds,omitempty"`
}

func (c MedicalConsultation) GetID() string { return c.ID }

func (c MedicalConsultation) ToLookupOption() LookupOption {
	return LookupOption{Value: c.ID, Label: strings.TrimSpace(c.Date + " " + c.PatientName)}
}

func (c MedicalConsultation) CSVHeader() []string {
	return []string{"id", "date", "reason", "diagnosis", "treatment", "doctor", "patient", "clinic", "studies"}
}

func (c MedicalConsultation) CSVRecord() []string {
	return []string{c.ID, c.Date, c.Reason, c.Diagnosis, c.Treatment, c.DoctorName, c.PatientName, c.ClinicName, strings.Join(c.StudyIDs, ";")}
}
