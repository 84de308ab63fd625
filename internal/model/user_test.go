package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWorkspaceMembershipsScanValue(t *testing.T) {
	wsID := uuid.New()
	memberships := WorkspaceMemberships{{WorkspaceID: wsID, Role: RoleCreator}}

	value, err := memberships.Value()
	assert.NoError(t, err)

	var scanned WorkspaceMemberships
	assert.NoError(t, scanned.Scan(value))
	assert.Equal(t, memberships, scanned)
}

func TestWorkspaceMembershipsScanNil(t *testing.T) {
	var scanned WorkspaceMemberships
	assert.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned)
}

func TestUserRoleIn(t *testing.T) {
	wsID := uuid.New()
	user := &User{
		Workspaces: WorkspaceMemberships{{WorkspaceID: wsID, Role: RoleMember}},
	}

	role, ok := user.RoleIn(wsID)
	assert.True(t, ok)
	assert.Equal(t, RoleMember, role)

	_, ok = user.RoleIn(uuid.New())
	assert.False(t, ok)
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleCreator))
	assert.True(t, ValidRole(RoleMember))
	assert.False(t, ValidRole("owner"))
	assert.False(t, ValidRole(""))
}
