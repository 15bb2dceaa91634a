package models

import (
	"clinic-console-service/internal/pkg/constvars"
	"fmt"
)

// Role is the console persona a session acts as. The backend reports it as an
// integer userType; everything past login works with this enum.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleClinic  Role = "clinic"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

var AllRoles = []Role{RoleAdmin, RoleClinic, RoleDoctor, RolePatient}

func ParseUserType(userType int) (Role, error) {
	switch userType {
	case constvars.UserTypeAdmin:
		return RoleAdmin, nil
	case constvars.UserTypeClinic:
		return RoleClinic, nil
	case constvars.UserTypeDoctor:
		return RoleDoctor, nil
	case constvars.UserTypePatient:
		return RolePatient, nil
	default:
		return "", fmt.Errorf("unknown user type %d", userType)
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleClinic, RoleDoctor, RolePatient:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

type NavigationItem struct {
	Label    string `json:"label"`
	Route    string `json:"route"`
	Resource string `json:"resource,omitempty"`
}

// Navigation returns the dashboard menu of the role.
func (r Role) Navigation() []NavigationItem {
	home := NavigationItem{Label: "Dashboard", Route: constvars.DashboardRoute}

	switch r {
	case RoleAdmin:
		return []NavigationItem{
			home,
			{Label: "Clinics", Route: "/admin/clinics", Resource: constvars.ConsoleResourceClinics},
			{Label: "Clinic administrators", Route: "/admin/clinic-admins", Resource: constvars.ConsoleResourceClinicAdmins},
			{Label: "Specialities", Route: "/admin/specialities", Resource: constvars.ConsoleResourceSpecialities},
			{Label: "Studies", Route: "/admin/studies", Resource: constvars.ConsoleResourceStudies},
		}
	case RoleClinic:
		return []NavigationItem{
			home,
			{Label: "Doctors", Route: "/clinic/doctors", Resource: constvars.ConsoleResourceDoctors},
			{Label: "Patients", Route: "/clinic/patients", Resource: constvars.ConsoleResourcePatients},
			{Label: "Consultations", Route: "/clinic/consultations", Resource: constvars.ConsoleResourceConsultations},
		}
	case RoleDoctor:
		return []NavigationItem{
			home,
			{Label: "My clinics", Route: "/doctor/clinics"},
			{Label: "Consultations", Route: "/doctor/consultations", Resource: constvars.ConsoleResourceConsultations},
			{Label: "Patients", Route: "/doctor/patients", Resource: constvars.ConsoleResourcePatients},
		}
	case RolePatient:
		return []NavigationItem{
			home,
			{Label: "My consultations", Route: "/patient/consultations", Resource: constvars.ConsoleResourceConsultations},
			{Label: "Profile", Route: "/patient/profile"},
		}
	default:
		return []NavigationItem{}
	}
}

// ReadableResources lists the console resources the role may look up and
// export. It covers the role's screens plus the dropdowns of its forms.
func (r Role) ReadableResources() []string {
	switch r {
	case RoleAdmin:
		return []string{
			constvars.ConsoleResourceClinics,
			constvars.ConsoleResourceClinicAdmins,
			constvars.ConsoleResourceSpecialities,
			constvars.ConsoleResourceStudies,
		}
	case RoleClinic:
		return []string{
			constvars.ConsoleResourceDoctors,
			constvars.ConsoleResourcePatients,
			constvars.ConsoleResourceConsultations,
			constvars.ConsoleResourceSpecialities,
		}
	case RoleDoctor:
		return []string{
			constvars.ConsoleResourceConsultations,
			constvars.ConsoleResourcePatients,
			constvars.ConsoleResourceStudies,
		}
	case RolePatient:
		return []string{
			constvars.ConsoleResourceConsultations,
		}
	default:
		return []string{}
	}
}

func (r Role) CanRead(resource string) bool {
	for _, readable := range r.ReadableResources() {
		if readable == resource {
			return true
		}
	}
	return false
}
