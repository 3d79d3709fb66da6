package mapper

import (
	"elibrary-be/internal/dto"
	"elibrary-be/internal/entity"
)

type RolePermissionMapper struct{}

func NewRolePermissionMapper() *RolePermissionMapper {
	return &RolePermissionMapper{}
}

func (m *RolePermissionMapper) ToDto(e *entity.RolePermission) *dto.RolePermissionDto {
	if e == nil {
		return nil
	}
	d := &dto.RolePermissionDto{
		Id:           e.Id,
		RoleId:       e.RoleId,
		FeatureId:    e.FeatureId,
		PermissionId: e.PermissionId,
	}
	if e.Role != nil {
		d.Role = &dto.RoleDto{Id: e.Role.Id, EnglishName: e.Role.EnglishName, VietnameseName: e.Role.VietnameseName}
	}
	if e.Feature != nil {
		d.Feature = &dto.FeatureDto{Id: e.Feature.Id, EnglishName: e.Feature.EnglishName, VietnameseName: e.Feature.VietnameseName}
	}
	if e.Permission != nil {
		d.Permission = &dto.PermissionDto{
			Id:              e.Permission.Id,
			EnglishName:     e.Permission.EnglishName,
			VietnameseName:  e.Permission.VietnameseName,
			PermissionLevel: e.Permission.PermissionLevel,
		}
	}
	return d
}

// ToEntity leaves Id zero so a new rule always takes the next store id.
func (m *RolePermissionMapper) ToEntity(d *dto.RolePermissionDto) *entity.RolePermission {
	if d == nil {
		return nil
	}
	return &entity.RolePermission{
		RoleId:       d.RoleId,
		FeatureId:    d.FeatureId,
		PermissionId: d.PermissionId,
	}
}

func (m *RolePermissionMapper) MapOnto(d *dto.RolePermissionDto, e *entity.RolePermission) {
	e.RoleId = d.RoleId
	e.FeatureId = d.FeatureId
	e.PermissionId = d.PermissionId
}
