package service

import (
	"context"

	"elibrary-be/internal/dto"
	"elibrary-be/internal/entity"
	"elibrary-be/internal/pkg/apperror"
	"elibrary-be/internal/pkg/logger"
	"elibrary-be/internal/pkg/message"
	"elibrary-be/internal/repository/specification"
	"elibrary-be/internal/repository/unitofwork"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type IAuthorizationService interface {
	// IsAuthorized decides whether role may perform verb on the named feature.
	// A non-nil error always comes with false and is an apperror.AppError of
	// the forbidden category.
	IsAuthorized(ctx context.Context, role, featureName, verb string) (bool, error)
}

type authorizationService struct {
	uowFactory unitofwork.RepositoryFactory
	messages   message.Provider
	logger     logger.ILogger
}

func NewAuthorizationService(uowFactory unitofwork.RepositoryFactory, messages message.Provider, log logger.ILogger) IAuthorizationService {
	return &authorizationService{
		uowFactory: uowFactory,
		messages:   messages,
		logger:     log,
	}
}

// IsAuthorized allows features that are not registered and (role, feature)
// pairs without a rule. When a rule exists the stored level must reach the
// level required by verb and must not be zero. Store faults deny.
func (s *authorizationService) IsAuthorized(ctx context.Context, role, featureName, verb string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Authorization.IsAuthorized")
	defer span.End()
	span.SetAttributes(
		attribute.String("role", role),
		attribute.String("feature", featureName),
		attribute.String("verb", verb),
	)

	allowed, err := s.decide(ctx, role, featureName, verb)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error("AUTHORIZATION", "Permission check failed", map[string]interface{}{
			"role":    role,
			"feature": featureName,
			"verb":    verb,
			"error":   err,
		})
		return false, apperror.Forbidden(string(dto.CodeForbidden), s.messages.Message(ctx, dto.CodeForbidden), err)
	}
	span.SetAttributes(attribute.Bool("allowed", allowed))
	return allowed, nil
}

func (s *authorizationService) decide(ctx context.Context, roleName, featureName, verb string) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feature, err := uow.FeatureRepository().GetWithSpec(ctx,
		specification.New[entity.Feature](specification.ByEnglishName{Name: featureName}))
	if err != nil {
		return false, err
	}
	if feature == nil {
		return true, nil
	}

	role, err := uow.RoleRepository().GetWithSpec(ctx,
		specification.New[entity.Role](specification.ByEnglishName{Name: roleName}))
	if err != nil {
		return false, err
	}
	if role == nil {
		// an unknown role has no rules, same as a missing mapping
		return true, nil
	}

	rule, err := uow.RolePermissionRepository().GetWithSpec(ctx,
		specification.New[entity.RolePermission](specification.RolePermissionOf(role.Id, feature.Id)...).
			ApplyInclude("Permission"))
	if err != nil {
		return false, err
	}
	if rule == nil {
		return true, nil
	}
	if rule.Permission == nil {
		s.logger.Warn("AUTHORIZATION", "Rule points at a missing permission", map[string]interface{}{
			"role_permission_id": rule.Id,
			"permission_id":      rule.PermissionId,
		})
		return false, nil
	}

	return PermissionLevel(rule.Permission.PermissionLevel).Grants(RequiredLevel(verb)), nil
}
