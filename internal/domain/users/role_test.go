package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleForUserCount(t *testing.T) {
	assert.Equal(t, RoleAdmin, RoleForUserCount(0), "first ever registration is the admin")
	assert.Equal(t, RoleUser, RoleForUserCount(1))
	assert.Equal(t, RoleUser, RoleForUserCount(500))
}
