package service

import (
	"context"
	"fmt"

	"elibrary-be/internal/dto"
	"elibrary-be/internal/entity"
	"elibrary-be/internal/mapper"
	"elibrary-be/internal/repository/specification"
	"elibrary-be/internal/repository/unitofwork"
	"elibrary-be/pkg/events"

	"go.opentelemetry.io/otel/attribute"
)

const RolePermissionEntity = "Role Permission"

type IRolePermissionService interface {
	IGenericService[entity.RolePermission, dto.RolePermissionDto, int]
	// ListByRole pages through the rules of one role with their feature and
	// permission loaded.
	ListByRole(ctx context.Context, roleId, pageIndex, pageSize int) (*dto.ServiceResult[*dto.PaginatedResult[dto.RolePermissionDto]], error)
	// UpdatePermission sets the permission governing (roleId, featureId),
	// creating the rule when the pair has none yet.
	UpdatePermission(ctx context.Context, roleId, featureId int, req *dto.UpdateRolePermissionRequest) (*dto.ServiceResult[bool], error)
}

type rolePermissionService struct {
	*GenericService[entity.RolePermission, dto.RolePermissionDto, int]
}

func NewRolePermissionService(deps Dependencies) IRolePermissionService {
	return &rolePermissionService{
		GenericService: NewGenericService(deps, EntityConfig[entity.RolePermission, dto.RolePermissionDto, int]{
			EntityName: RolePermissionEntity,
			Mapper:     mapper.NewRolePermissionMapper(),
			KeyOf:      func(e *entity.RolePermission) int { return e.Id },
			Rules:      rolePermissionRules{},
		}),
	}
}

func (s *rolePermissionService) ListByRole(ctx context.Context, roleId, pageIndex, pageSize int) (*dto.ServiceResult[*dto.PaginatedResult[dto.RolePermissionDto]], error) {
	spec := specification.New[entity.RolePermission](specification.ByRoleID{RoleID: roleId}).
		ApplyInclude("Feature", "Permission").
		EnableSplitQuery().
		ApplyOrderBy("feature_id").
		ApplyPagination(pageIndex, pageSize)
	return s.GetAllPaginated(ctx, spec)
}

func (s *rolePermissionService) UpdatePermission(ctx context.Context, roleId, featureId int, req *dto.UpdateRolePermissionRequest) (*dto.ServiceResult[bool], error) {
	ctx, span := s.start(ctx, "UpdatePermission")
	defer span.End()
	span.SetAttributes(attribute.Int("role_id", roleId), attribute.Int("feature_id", featureId))

	candidate := &dto.RolePermissionDto{RoleId: roleId, FeatureId: featureId}
	if req != nil {
		candidate.PermissionId = req.PermissionId
	}
	if res, err := s.validate(ctx, span, candidate); res != nil || err != nil {
		return res, err
	}

	uow := s.deps.UowFactory.NewUnitOfWork(ctx)
	repo := uow.RolePermissionRepository()

	rule, err := repo.GetWithSpec(ctx,
		specification.New[entity.RolePermission](specification.RolePermissionOf(roleId, featureId)...))
	if err != nil {
		return nil, s.fault(ctx, span, "UpdatePermission", err)
	}

	action := events.ActionUpdated
	if rule == nil {
		action = events.ActionCreated
		rule = &entity.RolePermission{RoleId: roleId, FeatureId: featureId}
	}
	rule.PermissionId = candidate.PermissionId

	if action == events.ActionUpdated && !repo.HasChanges(rule) {
		return dto.NewResult(dto.CodeNoChanges, s.message(ctx, dto.CodeNoChanges), true), nil
	}

	fields, err := rolePermissionReferences(ctx, uow, rule)
	if err != nil {
		return nil, s.fault(ctx, span, "UpdatePermission", err)
	}
	if len(fields) > 0 {
		return dto.ValidationResult[bool](s.message(ctx, dto.CodeValidationFailed), fields), nil
	}

	if action == events.ActionCreated {
		err = repo.Add(ctx, rule)
	} else {
		err = repo.Update(ctx, rule)
	}
	if err != nil {
		return nil, s.fault(ctx, span, "UpdatePermission", err)
	}

	affected := uow.SaveChangesWithTransaction(ctx)
	span.SetAttributes(attribute.Int64("rows_affected", affected))
	if affected == unitofwork.TransactionFailed || affected == 0 {
		return dto.NewResult(dto.CodeUpdateFail, s.message(ctx, dto.CodeUpdateFail), false), nil
	}

	s.publish(ctx, action, rule)
	return dto.NewResult(dto.CodeUpdateSuccess, s.message(ctx, dto.CodeUpdateSuccess), true), nil
}

type rolePermissionRules struct{}

func (rolePermissionRules) CheckCreate(ctx context.Context, uow unitofwork.UnitOfWork, rule *entity.RolePermission) (map[string][]string, error) {
	return checkRolePermission(ctx, uow, rule)
}

func (rolePermissionRules) CheckUpdate(ctx context.Context, uow unitofwork.UnitOfWork, rule *entity.RolePermission) (map[string][]string, error) {
	return checkRolePermission(ctx, uow, rule)
}

func (rolePermissionRules) CheckDelete(ctx context.Context, uow unitofwork.UnitOfWork, rule *entity.RolePermission) (map[string][]string, error) {
	return nil, nil
}

// checkRolePermission also keeps (role, feature) unique: another rule for the
// same pair is reported instead of failing on the unique index.
func checkRolePermission(ctx context.Context, uow unitofwork.UnitOfWork, rule *entity.RolePermission) (map[string][]string, error) {
	fields, err := rolePermissionReferences(ctx, uow, rule)
	if err != nil {
		return nil, err
	}
	other, err := uow.RolePermissionRepository().GetWithSpec(ctx,
		specification.New[entity.RolePermission](specification.RolePermissionOf(rule.RoleId, rule.FeatureId)...))
	if err != nil {
		return nil, err
	}
	if other != nil && other.Id != rule.Id {
		fields["feature_id"] = append(fields["feature_id"], "the role already has a rule for this feature")
	}
	return fields, nil
}

// rolePermissionReferences verifies that the role, feature and permission all exist.
func rolePermissionReferences(ctx context.Context, uow unitofwork.UnitOfWork, rule *entity.RolePermission) (map[string][]string, error) {
	fields := make(map[string][]string)

	role, err := uow.RoleRepository().GetById(ctx, rule.RoleId)
	if err != nil {
		return nil, err
	}
	if role == nil {
		fields["role_id"] = append(fields["role_id"], fmt.Sprintf("role %d does not exist", rule.RoleId))
	}

	feature, err := uow.FeatureRepository().GetById(ctx, rule.FeatureId)
	if err != nil {
		return nil, err
	}
	if feature == nil {
		fields["feature_id"] = append(fields["feature_id"], fmt.Sprintf("feature %d does not exist", rule.FeatureId))
	}

	permission, err := uow.PermissionRepository().GetById(ctx, rule.PermissionId)
	if err != nil {
		return nil, err
	}
	if permission == nil {
		fields["permission_id"] = append(fields["permission_id"], fmt.Sprintf("permission %d does not exist", rule.PermissionId))
	}
	return fields, nil
}
