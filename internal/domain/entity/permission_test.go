package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPermissionMatrix(t *testing.T) {
	perms := []RolePermission{
		{RoleID: RoleIDAdmin, Resource: ResourceBranches, Action: ActionDelete, Allowed: true},
		{RoleID: RoleIDClient, Resource: ResourceMarketplace, Action: ActionView, Allowed: true},
		{RoleID: RoleIDClient, Resource: ResourceBranches, Action: ActionDelete, Allowed: false},
		{RoleID: 99, Resource: ResourceBranches, Action: ActionView, Allowed: true},
	}

	matrix := BuildPermissionMatrix(perms)

	assert.True(t, matrix["admin"][ResourceBranches][ActionDelete])
	assert.True(t, matrix["client"][ResourceMarketplace][ActionView])
	assert.False(t, matrix["client"][ResourceBranches][ActionDelete])

	// unknown role IDs are skipped
	assert.Len(t, matrix, 2)
}

func TestDefaultPermissions(t *testing.T) {
	perms := DefaultPermissions()

	// 4 roles x 8 resources x 4 actions
	require.Len(t, perms, 128)

	matrix := BuildPermissionMatrix(perms)

	// admins get everything
	for resource, actions := range matrix["admin"] {
		for action, allowed := range actions {
			assert.True(t, allowed, "admin %s %s", resource, action)
		}
	}

	// veterinarians can work appointments but not delete them
	assert.True(t, matrix["veterinarian"][ResourceAppointments][ActionEdit])
	assert.False(t, matrix["veterinarian"][ResourceAppointments][ActionDelete])
	assert.True(t, matrix["veterinarian"][ResourceClients][ActionView])
	assert.False(t, matrix["veterinarian"][ResourceClients][ActionEdit])
	assert.False(t, matrix["veterinarian"][ResourceInventory][ActionView])

	// receptionists manage the front desk, view-only elsewhere
	assert.True(t, matrix["receptionist"][ResourceAppointments][ActionDelete])
	assert.True(t, matrix["receptionist"][ResourceInventory][ActionView])
	assert.False(t, matrix["receptionist"][ResourceInventory][ActionEdit])
	assert.False(t, matrix["receptionist"][ResourceReports][ActionView])

	// clients book and browse but never delete
	assert.True(t, matrix["client"][ResourceAppointments][ActionCreate])
	assert.False(t, matrix["client"][ResourceAppointments][ActionEdit])
	assert.True(t, matrix["client"][ResourceCommunity][ActionCreate])
	assert.False(t, matrix["client"][ResourceCommunity][ActionDelete])
	assert.False(t, matrix["client"][ResourceBranches][ActionCreate])
}

func TestRoleNameLookups(t *testing.T) {
	assert.Equal(t, "admin", RoleNameByID(RoleIDAdmin))
	assert.Equal(t, "client", RoleNameByID(RoleIDClient))
	assert.Equal(t, "", RoleNameByID(99))

	assert.Equal(t, RoleIDVeterinarian, RoleIDByName("veterinarian"))
	assert.Equal(t, RoleIDReceptionist, RoleIDByName("receptionist"))
	assert.Equal(t, 0, RoleIDByName("janitor"))
}
