// FILE: internal/entity/role_entity.go
// Storage records behind the authorization gate
package entity

import "time"

// Role is resolved by its English name, never by primary key.
type Role struct {
	Id              int              `gorm:"primaryKey;autoIncrement"`
	EnglishName     string           `gorm:"type:varchar(100);uniqueIndex;not null"`
	VietnameseName  string           `gorm:"type:varchar(100)"`
	CreatedAt       time.Time        `gorm:"autoCreateTime"`
	UpdatedAt       time.Time        `gorm:"autoUpdateTime"`
	RolePermissions []RolePermission `gorm:"foreignKey:RoleId"`
}

func (Role) TableName() string {
	return "system_roles"
}

// Feature is a protected area of the API, resolved by its English name.
type Feature struct {
	Id              int              `gorm:"primaryKey;autoIncrement"`
	EnglishName     string           `gorm:"type:varchar(155);uniqueIndex;not null"`
	VietnameseName  string           `gorm:"type:varchar(155)"`
	CreatedAt       time.Time        `gorm:"autoCreateTime"`
	UpdatedAt       time.Time        `gorm:"autoUpdateTime"`
	RolePermissions []RolePermission `gorm:"foreignKey:FeatureId"`
}

func (Feature) TableName() string {
	return "system_features"
}

type Permission struct {
	Id              int       `gorm:"primaryKey;autoIncrement"`
	EnglishName     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	VietnameseName  string    `gorm:"type:varchar(100)"`
	PermissionLevel int       `gorm:"not null;default:0"` // 0 is reserved for "no access"
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Permission) TableName() string {
	return "system_permissions"
}

// RolePermission grants one permission to a role for a feature.
// The (role, feature) pair is unique.
type RolePermission struct {
	Id           int         `gorm:"primaryKey;autoIncrement"`
	RoleId       int         `gorm:"not null;uniqueIndex:idx_role_feature"`
	FeatureId    int         `gorm:"not null;uniqueIndex:idx_role_feature"`
	PermissionId int         `gorm:"not null;index"`
	CreatedAt    time.Time   `gorm:"autoCreateTime"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime"`
	Role         *Role       `gorm:"foreignKey:RoleId"`
	Feature      *Feature    `gorm:"foreignKey:FeatureId"`
	Permission   *Permission `gorm:"foreignKey:PermissionId"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}
