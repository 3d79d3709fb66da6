package seed

import (
	"context"
	"testing"

	"elibrary-be/internal/constant"
	"elibrary-be/internal/entity"
	"elibrary-be/internal/pkg/logger"
	"elibrary-be/internal/pkg/message"
	"elibrary-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSeedsReferenceData(t *testing.T) {
	db := testutil.OpenDB(t)
	seeder := NewSeeder(db, logger.NewNopLogger())

	sum, err := seeder.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{
		Roles:           3,
		Features:        5,
		Permissions:     5,
		RolePermissions: 15,
		SystemMessages:  len(message.Defaults),
	}, sum)

	var rule entity.RolePermission
	require.NoError(t, db.
		Joins("JOIN system_roles ON system_roles.id = role_permissions.role_id").
		Joins("JOIN system_features ON system_features.id = role_permissions.feature_id").
		Where("system_roles.english_name = ? AND system_features.english_name = ?", constant.RoleReader, constant.FeatureBookManagement).
		Preload("Permission").
		Take(&rule).Error)
	assert.Equal(t, constant.PermissionView, rule.Permission.EnglishName)
}

func TestRunIsIdempotent(t *testing.T) {
	db := testutil.OpenDB(t)
	seeder := NewSeeder(db, logger.NewNopLogger())

	_, err := seeder.Run(context.Background())
	require.NoError(t, err)

	sum, err := seeder.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)

	var count int64
	require.NoError(t, db.Model(&entity.RolePermission{}).Count(&count).Error)
	assert.Equal(t, int64(15), count)
}
