package resources

import (
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/dto/requests"
	"context"
	"fmt"
)

type scopeResolver struct {
	DoctorUsecase contracts.DoctorUsecase
}

func NewScopeResolver(doctorUsecase contracts.DoctorUsecase) contracts.ScopeResolver {
	return &scopeResolver{DoctorUsecase: doctorUsecase}
}

// QueryScope narrows list queries: clinics see their own records, doctors the
// selected clinic and patients their own consultations.
func (s *scopeResolver) QueryScope(ctx context.Context, session *models.Session) (requests.Scope, error) {
	switch session.Role {
	case models.RoleAdmin:
		return requests.Scope{}, nil
	case models.RoleClinic:
		return requests.Scope{ClinicID: session.ClinicID}, nil
	case models.RoleDoctor:
		clinicID, err := s.DoctorUsecase.SelectedClinicID(ctx, session)
		if err != nil {
			return requests.Scope{}, err
		}
		return requests.Scope{ClinicID: clinicID}, nil
	case models.RolePatient:
		return requests.Scope{PatientID: session.UserID}, nil
	default:
		return requests.Scope{}, fmt.Errorf("unknown role %q", session.Role)
	}
}

// FormScope is QueryScope plus the doctor itself, so doctors only write
// consultations of their own.
func (s *scopeResolver) FormScope(ctx context.Context, session *models.Session) (requests.Scope, error) {
	scope, err := s.QueryScope(ctx, session)
	if err != nil {
		return scope, err
	}
	if session.Role == models.RoleDoctor {
		scope.DoctorID = session.UserID
	}
	return scope, nil
}
