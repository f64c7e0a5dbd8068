package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleUser, PermUpdateOwnProjects))
	assert.False(t, HasPermission(RoleUser, PermUpdateAnyProject))
	assert.False(t, HasPermission(RoleUser, PermManageUsers))

	assert.True(t, HasPermission(RoleAdmin, PermUpdateOwnProjects))
	assert.True(t, HasPermission(RoleAdmin, PermUpdateAnyProject))
	assert.True(t, HasPermission(RoleAdmin, PermManageUsers))

	assert.False(t, HasPermission(RoleGuest, PermUpdateOwnProjects))

	// unknown roles hold nothing
	assert.False(t, HasPermission(Role("banana"), PermUpdateOwnProjects))
}
