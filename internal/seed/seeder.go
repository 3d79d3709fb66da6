// Package seed writes the reference data the authorization gate and the
// message catalog need: roles, features, permission levels, default rules and
// the built-in system messages. Every step is idempotent.
package seed

import (
	"context"

	"elibrary-be/internal/constant"
	"elibrary-be/internal/entity"
	"elibrary-be/internal/pkg/logger"
	"elibrary-be/internal/pkg/message"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Summary struct {
	Roles           int
	Features        int
	Permissions     int
	RolePermissions int
	SystemMessages  int
}

var roles = []entity.Role{
	{EnglishName: constant.RoleAdministration, VietnameseName: "Quản trị"},
	{EnglishName: constant.RoleLibrarian, VietnameseName: "Thủ thư"},
	{EnglishName: constant.RoleReader, VietnameseName: "Bạn đọc"},
}

var features = []entity.Feature{
	{EnglishName: constant.FeatureBookManagement, VietnameseName: "Quản lý sách"},
	{EnglishName: constant.FeatureAuthorManagement, VietnameseName: "Quản lý tác giả"},
	{EnglishName: constant.FeatureCategoryManagement, VietnameseName: "Quản lý thể loại"},
	{EnglishName: constant.FeatureRolePermissionManagement, VietnameseName: "Quản lý phân quyền"},
	{EnglishName: constant.FeatureSystemMessageManagement, VietnameseName: "Quản lý thông báo hệ thống"},
}

var permissions = []entity.Permission{
	{EnglishName: constant.PermissionAccessDenied, VietnameseName: "Từ chối truy cập", PermissionLevel: 0},
	{EnglishName: constant.PermissionView, VietnameseName: "Xem", PermissionLevel: 1},
	{EnglishName: constant.PermissionModify, VietnameseName: "Sửa", PermissionLevel: 2},
	{EnglishName: constant.PermissionCreate, VietnameseName: "Tạo", PermissionLevel: 3},
	{EnglishName: constant.PermissionFullAccess, VietnameseName: "Toàn quyền", PermissionLevel: 4},
}

// rules maps role -> feature -> permission name. Pairs left out stay
// unconfigured, which the gate treats as allowed.
var rules = map[string]map[string]string{
	constant.RoleAdministration: {
		constant.FeatureBookManagement:           constant.PermissionFullAccess,
		constant.FeatureAuthorManagement:         constant.PermissionFullAccess,
		constant.FeatureCategoryManagement:       constant.PermissionFullAccess,
		constant.FeatureRolePermissionManagement: constant.PermissionFullAccess,
		constant.FeatureSystemMessageManagement:  constant.PermissionFullAccess,
	},
	constant.RoleLibrarian: {
		constant.FeatureBookManagement:           constant.PermissionFullAccess,
		constant.FeatureAuthorManagement:         constant.PermissionCreate,
		constant.FeatureCategoryManagement:       constant.PermissionCreate,
		constant.FeatureRolePermissionManagement: constant.PermissionAccessDenied,
		constant.FeatureSystemMessageManagement:  constant.PermissionView,
	},
	constant.RoleReader: {
		constant.FeatureBookManagement:           constant.PermissionView,
		constant.FeatureAuthorManagement:         constant.PermissionView,
		constant.FeatureCategoryManagement:       constant.PermissionView,
		constant.FeatureRolePermissionManagement: constant.PermissionAccessDenied,
		constant.FeatureSystemMessageManagement:  constant.PermissionAccessDenied,
	},
}

type Seeder struct {
	db     *gorm.DB
	logger logger.ILogger
}

func NewSeeder(db *gorm.DB, log logger.ILogger) *Seeder {
	return &Seeder{db: db, logger: log}
}

// Run seeds everything in one transaction.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		roleIds, n, err := seedNamed(tx, roles, func(r *entity.Role) (string, *int) { return r.EnglishName, &r.Id })
		if err != nil {
			return errors.Wrap(err, "seed roles")
		}
		sum.Roles = n

		featureIds, n, err := seedNamed(tx, features, func(f *entity.Feature) (string, *int) { return f.EnglishName, &f.Id })
		if err != nil {
			return errors.Wrap(err, "seed features")
		}
		sum.Features = n

		permissionIds, n, err := seedNamed(tx, permissions, func(p *entity.Permission) (string, *int) { return p.EnglishName, &p.Id })
		if err != nil {
			return errors.Wrap(err, "seed permissions")
		}
		sum.Permissions = n

		if sum.RolePermissions, err = seedRules(tx, roleIds, featureIds, permissionIds); err != nil {
			return errors.Wrap(err, "seed role permissions")
		}
		if sum.SystemMessages, err = seedMessages(tx); err != nil {
			return errors.Wrap(err, "seed system messages")
		}
		return nil
	})
	if err != nil {
		s.logger.Error("SEED", "Seeding failed", map[string]interface{}{"error": err})
		return Summary{}, err
	}

	s.logger.Info("SEED", "Seeding completed", map[string]interface{}{
		"roles":            sum.Roles,
		"features":         sum.Features,
		"permissions":      sum.Permissions,
		"role_permissions": sum.RolePermissions,
		"system_messages":  sum.SystemMessages,
	})
	return sum, nil
}

// seedNamed inserts rows missing by english_name and returns name -> id for
// all of them together with the number of inserted rows.
func seedNamed[T any](tx *gorm.DB, rows []T, keyOf func(*T) (string, *int)) (map[string]int, int, error) {
	ids := make(map[string]int, len(rows))
	created := 0
	for _, row := range rows {
		name, _ := keyOf(&row)

		var existing T
		err := tx.Where("english_name = ?", name).Take(&existing).Error
		switch {
		case err == nil:
			_, id := keyOf(&existing)
			ids[name] = *id
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&row).Error; err != nil {
				return nil, 0, err
			}
			_, id := keyOf(&row)
			ids[name] = *id
			created++
		default:
			return nil, 0, err
		}
	}
	return ids, created, nil
}

func seedRules(tx *gorm.DB, roleIds, featureIds, permissionIds map[string]int) (int, error) {
	created := 0
	for role, byFeature := range rules {
		for feature, permission := range byFeature {
			rule := entity.RolePermission{
				RoleId:       roleIds[role],
				FeatureId:    featureIds[feature],
				PermissionId: permissionIds[permission],
			}
			// an existing rule for the pair is an operator decision and is kept
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rule)
			if res.Error != nil {
				return 0, res.Error
			}
			created += int(res.RowsAffected)
		}
	}
	return created, nil
}

func seedMessages(tx *gorm.DB) (int, error) {
	created := 0
	for code, text := range message.Defaults {
		msg := entity.SystemMessage{
			MsgId:          string(code),
			EnglishText:    text.English,
			VietnameseText: text.Vietnamese,
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&msg)
		if res.Error != nil {
			return 0, res.Error
		}
		created += int(res.RowsAffected)
	}
	return created, nil
}
