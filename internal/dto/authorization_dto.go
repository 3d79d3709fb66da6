package dto

type RoleDto struct {
	Id             int    `json:"id"`
	EnglishName    string `json:"english_name" validate:"required,max=100"`
	VietnameseName string `json:"vietnamese_name,omitempty"`
}

type FeatureDto struct {
	Id             int    `json:"id"`
	EnglishName    string `json:"english_name" validate:"required,max=155"`
	VietnameseName string `json:"vietnamese_name,omitempty"`
}

type PermissionDto struct {
	Id              int    `json:"id"`
	EnglishName     string `json:"english_name" validate:"required,max=100"`
	VietnameseName  string `json:"vietnamese_name,omitempty"`
	PermissionLevel int    `json:"permission_level" validate:"gte=0"`
}

type RolePermissionDto struct {
	Id           int            `json:"id"`
	RoleId       int            `json:"role_id" validate:"required,gt=0"`
	FeatureId    int            `json:"feature_id" validate:"required,gt=0"`
	PermissionId int            `json:"permission_id" validate:"required,gt=0"`
	Role         *RoleDto       `json:"role,omitempty" validate:"-"`
	Feature      *FeatureDto    `json:"feature,omitempty" validate:"-"`
	Permission   *PermissionDto `json:"permission,omitempty" validate:"-"`
}

// UpdateRolePermissionRequest changes the permission governing one (role, feature) pair.
type UpdateRolePermissionRequest struct {
	PermissionId int `json:"permission_id" validate:"required,gt=0"`
}
