package requests

type MedicalConsultation struct {
	Date      string         `json:"date" validate:"required,datetime=2006-01-02"`
	Reason    string         `json:"reason" validate:"required,max=500"`
	Diagnosis string         `json:"diagnosis" validate:"omitempty,max=1000"`
	Treatment string         `json:"treatment" validate:"omitempty,max=1000"`
	Doctor    *LookupOption  `json:"doctor" validate:"omitempty"`
	Patient   *LookupOption  `json:"patient" validate:"required"`
	Clinic    *LookupOption  `json:"clinic" validate:"omitempty"`
	Studies   []LookupOption `json:"studies" validate:"omitempty,dive"`
}

type MedicalConsultationPayload struct {
	Date      string   `json:"date"`
	Reason    string   `json:"reason"`
	Diagnosis string   `json:"diagnosis"`
	Treatment string   `json:"treatment"`
	DoctorID  string   `json:"doctorId"`
	PatientID string   `json:"patientId"`
	ClinicID  string   `json:"clinicId"`
	StudyIDs  []string `json:"medicalTestIds"`
}

// ApplyScope pins the doctor and the clinic of a doctor session.
func (f *MedicalConsultation) ApplyScope(scope Scope) {
	if scope.ClinicID != "" {
		f.Clinic = &LookupOption{Value: scope.ClinicID}
	}
	if scope.DoctorID != "" {
		f.Doctor = &LookupOption{Value: scope.DoctorID}
	}
}

func (f MedicalConsultation) ToPayload() interface{} {
	studyIDs := make([]string, 0, len(f.Studies))
	for _, study := range f.Studies {
		studyIDs = append(studyIDs, study.Value)
	}
	return MedicalConsultationPayload{
		Date:      f.Date,
		Reason:    f.Reason,
		Diagnosis: f.Diagnosis,
		Treatment: f.Treatment,
		DoctorID:  lookupValue(f.Doctor),
		PatientID: lookupValue(f.Patient),
		ClinicID:  lookupValue(f.Clinic),
		StudyIDs:  studyIDs,
	}
}
