package models

import (
	"testing"

	"clinic-console-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserType(t *testing.T) {
	tests := []struct {
		userType int
		expected Role
	}{
		{userType: 1, expected: RoleAdmin},
		{userType: 2, expected: RoleClinic},
		{userType: 3, expected: RoleDoctor},
		{userType: 4, expected: RolePatient},
	}

	for _, tt := range tests {
		role, err := ParseUserType(tt.userType)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, role)
		assert.True(t, role.Valid())
	}
}

func TestParseUserType_Unknown(t *testing.T) {
	for _, userType := range []int{0, 5, -1} {
		_, err := ParseUserType(userType)
		assert.Error(t, err)
	}
	assert.False(t, Role("nurse").Valid())
}

func TestRole_NavigationStartsWithDashboard(t *testing.T) {
	for _, role := range AllRoles {
		items := role.Navigation()
		require.NotEmpty(t, items, role)
		assert.Equal(t, constvars.DashboardRoute, items[0].Route)
	}
	assert.Empty(t, Role("nurse").Navigation())
}

func TestRole_NavigationResourcesAreReadable(t *testing.T) {
	for _, role := range AllRoles {
		for _, item := range role.Navigation() {
			if item.Resource == "" {
				continue
			}
			assert.True(t, role.CanRead(item.Resource), "%s cannot read %s", role, item.Resource)
		}
	}
}

func TestRole_CanRead(t *testing.T) {
	assert.True(t, RoleAdmin.CanRead(constvars.ConsoleResourceClinicAdmins))
	assert.False(t, RolePatient.CanRead(constvars.ConsoleResourceClinicAdmins))
	assert.True(t, RoleDoctor.CanRead(constvars.ConsoleResourceStudies))
	assert.False(t, RoleDoctor.CanRead(constvars.ConsoleResourceClinics))
}
