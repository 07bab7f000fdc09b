package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/printers-api/internal/domain/entity"
)

func TestHasRole(t *testing.T) {
	admin := &entity.User{Roles: []entity.Role{entity.RoleAdmin, entity.RoleUser}}
	normal := &entity.User{Roles: []entity.Role{entity.RoleUser}}
	sinRoles := &entity.User{}

	assert.True(t, admin.HasRole(entity.RoleAdmin))
	assert.True(t, admin.HasRole(entity.RoleUser))
	assert.False(t, normal.HasRole(entity.RoleAdmin))
	assert.True(t, normal.HasRole(entity.RoleUser))
	assert.False(t, sinRoles.HasRole(entity.RoleUser))
}
