package service

import (
	"context"
	"errors"
	"testing"

	"elibrary-be/internal/constant"
	"elibrary-be/internal/dto"
	"elibrary-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func findRole(t *testing.T, db *gorm.DB, name string) *entity.Role {
	t.Helper()
	var role entity.Role
	require.NoError(t, db.Where("english_name = ?", name).First(&role).Error)
	return &role
}

func TestRolePermissionService_ListByRole(t *testing.T) {
	deps, db, _ := newTestDeps(t)
	seedAuthorization(t, db)
	librarian := findRole(t, db, constant.RoleLibrarian)
	svc := NewRolePermissionService(deps)

	res, err := svc.ListByRole(context.Background(), librarian.Id, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, dto.CodeSuccess, res.Code)
	require.Len(t, res.Data.Sources, 1)

	rule := res.Data.Sources[0]
	require.NotNil(t, rule.Feature)
	require.NotNil(t, rule.Permission)
	assert.Equal(t, constant.FeatureBookManagement, rule.Feature.EnglishName)
	assert.Equal(t, int(LevelModify), rule.Permission.PermissionLevel)

	admin := findRole(t, db, constant.RoleAdministration)
	empty, err := svc.ListByRole(context.Background(), admin.Id, 4, 10)
	require.NoError(t, err)
	assert.Equal(t, dto.CodeNoData, empty.Code)
	assert.Equal(t, 1, empty.Data.PageIndex)
}

func TestRolePermissionService_UpdatePermission(t *testing.T) {
	deps, db, publisher := newTestDeps(t)
	seedAuthorization(t, db)
	librarian := findRole(t, db, constant.RoleLibrarian)
	admin := findRole(t, db, constant.RoleAdministration)
	svc := NewRolePermissionService(deps)
	gate := NewAuthorizationService(deps.UowFactory, deps.Messages, deps.Logger)
	ctx := context.Background()

	var fullAccess entity.Permission
	require.NoError(t, db.Where("permission_level = ?", int(LevelFullAccess)).First(&fullAccess).Error)
	var feature entity.Feature
	require.NoError(t, db.First(&feature).Error)

	allowed, err := gate.IsAuthorized(ctx, constant.RoleLibrarian, feature.EnglishName, "DELETE")
	require.NoError(t, err)
	require.False(t, allowed)

	req := &dto.UpdateRolePermissionRequest{PermissionId: fullAccess.Id}
	res, err := svc.UpdatePermission(ctx, librarian.Id, feature.Id, req)
	require.NoError(t, err)
	assert.Equal(t, dto.CodeUpdateSuccess, res.Code)
	assert.True(t, res.Data)

	allowed, err = gate.IsAuthorized(ctx, constant.RoleLibrarian, feature.EnglishName, "DELETE")
	require.NoError(t, err)
	assert.True(t, allowed)

	again, err := svc.UpdatePermission(ctx, librarian.Id, feature.Id, req)
	require.NoError(t, err)
	assert.Equal(t, dto.CodeNoChanges, again.Code)

	// the administrator had no rule: one is created
	created, err := svc.UpdatePermission(ctx, admin.Id, feature.Id, req)
	require.NoError(t, err)
	assert.Equal(t, dto.CodeUpdateSuccess, created.Code)

	var rules int64
	require.NoError(t, db.Model(&entity.RolePermission{}).Count(&rules).Error)
	assert.Equal(t, int64(3), rules)

	assert.Equal(t, []string{"ROLE_PERMISSION_UPDATED", "ROLE_PERMISSION_CREATED"}, publisher.types())
}

func TestRolePermissionService_UpdatePermissionValidation(t *testing.T) {
	deps, db, _ := newTestDeps(t)
	seedAuthorization(t, db)
	librarian := findRole(t, db, constant.RoleLibrarian)
	svc := NewRolePermissionService(deps)
	ctx := context.Background()

	res, err := svc.UpdatePermission(ctx, librarian.Id, 1, &dto.UpdateRolePermissionRequest{})
	require.NoError(t, err)
	assert.Equal(t, dto.CodeValidationFailed, res.Code)
	assert.Contains(t, res.Errors, "permission_id")

	res, err = svc.UpdatePermission(ctx, librarian.Id, 99, &dto.UpdateRolePermissionRequest{PermissionId: 1})
	require.NoError(t, err)
	assert.Equal(t, dto.CodeValidationFailed, res.Code)
	assert.Contains(t, res.Errors, "feature_id")
}

func TestRolePermissionService_CreateDuplicatePair(t *testing.T) {
	deps, db, _ := newTestDeps(t)
	seedAuthorization(t, db)
	librarian := findRole(t, db, constant.RoleLibrarian)
	svc := NewRolePermissionService(deps)

	res, err := svc.Create(context.Background(), &dto.RolePermissionDto{RoleId: librarian.Id, FeatureId: 1, PermissionId: 2})
	require.NoError(t, err)
	assert.Equal(t, dto.CodeValidationFailed, res.Code)
	assert.Contains(t, res.Errors, "feature_id")
}

func TestRolePermissionService_CreateIgnoresClientKey(t *testing.T) {
	deps, db, _ := newTestDeps(t)
	seedAuthorization(t, db)
	admin := findRole(t, db, constant.RoleAdministration)
	svc := NewRolePermissionService(deps)

	res, err := svc.Create(context.Background(), &dto.RolePermissionDto{Id: 1, RoleId: admin.Id, FeatureId: 1, PermissionId: 2})
	require.NoError(t, err)
	assert.Equal(t, dto.CodeCreateSuccess, res.Code)
	assert.True(t, res.Data)

	var rule entity.RolePermission
	require.NoError(t, db.Where("role_id = ?", admin.Id).First(&rule).Error)
	assert.Equal(t, 3, rule.Id)

	var first entity.RolePermission
	require.NoError(t, db.First(&first, 1).Error)
	assert.NotEqual(t, admin.Id, first.RoleId)
}

func TestRolePermissionService_UpdatePermissionWriteFails(t *testing.T) {
	tests := []struct {
		name     string
		callback func(tx *gorm.DB)
		when     string
	}{
		{
			name:     "transaction failed",
			callback: func(tx *gorm.DB) { tx.AddError(errors.New("disk full")) },
			when:     "before",
		},
		{
			name:     "no rows affected",
			callback: func(tx *gorm.DB) { tx.RowsAffected = 0 },
			when:     "after",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, db, publisher := newTestDeps(t)
			seedAuthorization(t, db)
			librarian := findRole(t, db, constant.RoleLibrarian)
			svc := NewRolePermissionService(deps)

			onRules := func(tx *gorm.DB) {
				if tx.Statement.Table == "role_permissions" {
					tt.callback(tx)
				}
			}
			update := db.Callback().Update()
			if tt.when == "before" {
				require.NoError(t, update.Before("gorm:update").Register("test:role_permissions", onRules))
			} else {
				require.NoError(t, update.After("gorm:update").Register("test:role_permissions", onRules))
			}

			var fullAccess entity.Permission
			require.NoError(t, db.Where("permission_level = ?", int(LevelFullAccess)).First(&fullAccess).Error)

			res, err := svc.UpdatePermission(context.Background(), librarian.Id, 1, &dto.UpdateRolePermissionRequest{PermissionId: fullAccess.Id})
			require.NoError(t, err)
			assert.Equal(t, dto.CodeUpdateFail, res.Code)
			assert.True(t, res.IsFailure())
			assert.False(t, res.Data)
			assert.Empty(t, publisher.types())
		})
	}
}
