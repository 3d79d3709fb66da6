package specification

import "gorm.io/gorm"

// ByEnglishName matches roles, features and permissions by their stable name.
type ByEnglishName struct {
	Name string
}

func (s ByEnglishName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("english_name = ?", s.Name)
}

type ByRoleID struct {
	RoleID int
}

func (s ByRoleID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role_permissions.role_id = ?", s.RoleID)
}

type ByFeatureID struct {
	FeatureID int
}

func (s ByFeatureID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role_permissions.feature_id = ?", s.FeatureID)
}

// RolePermissionOf selects the single rule governing a (role, feature) pair.
func RolePermissionOf(roleID, featureID int) []Predicate {
	return []Predicate{ByRoleID{RoleID: roleID}, ByFeatureID{FeatureID: featureID}}
}
