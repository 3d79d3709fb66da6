package service

import (
	"context"
	"fmt"

	"elibrary-be/internal/dto"
	"elibrary-be/internal/pkg/validation"
	"elibrary-be/pkg/events"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type IGenericService[T any, D any, K comparable] interface {
	IReadOnlyService[T, D, K]
	Create(ctx context.Context, d *D) (*dto.ServiceResult[bool], error)
	Update(ctx context.Context, key K, d *D) (*dto.ServiceResult[bool], error)
	Delete(ctx context.Context, key K) (*dto.ServiceResult[bool], error)
}

// GenericService adds validated writes to ReadOnlyService. Every write runs
// in its own unit of work and reports a boolean payload: true when the store
// was changed (or nothing needed changing), false otherwise.
type GenericService[T any, D any, K comparable] struct {
	*ReadOnlyService[T, D, K]
}

func NewGenericService[T any, D any, K comparable](deps Dependencies, cfg EntityConfig[T, D, K]) *GenericService[T, D, K] {
	return &GenericService[T, D, K]{ReadOnlyService: NewReadOnlyService(deps, cfg)}
}

func (s *GenericService[T, D, K]) Create(ctx context.Context, d *D) (*dto.ServiceResult[bool], error) {
	ctx, span := s.start(ctx, "Create")
	defer span.End()

	if res, err := s.validate(ctx, span, d); res != nil || err != nil {
		return res, err
	}

	uow := s.deps.UowFactory.NewUnitOfWork(ctx)
	e := s.cfg.Mapper.ToEntity(d)

	if s.cfg.Rules != nil {
		fields, err := s.cfg.Rules.CheckCreate(ctx, uow, e)
		if err != nil {
			return nil, s.fault(ctx, span, "Create", err)
		}
		if len(fields) > 0 {
			return dto.ValidationResult[bool](s.message(ctx, dto.CodeValidationFailed), fields), nil
		}
	}

	if err := s.repository(uow).Add(ctx, e); err != nil {
		return nil, s.fault(ctx, span, "Create", err)
	}
	affected, err := uow.SaveChanges(ctx)
	if err != nil {
		return nil, s.fault(ctx, span, "Create", err)
	}
	span.SetAttributes(attribute.Int64("rows_affected", affected))
	if affected <= 0 {
		return dto.NewResult(dto.CodeCreateFail, s.message(ctx, dto.CodeCreateFail), false), nil
	}

	s.publish(ctx, events.ActionCreated, e)
	return dto.NewResult(dto.CodeCreateSuccess, s.message(ctx, dto.CodeCreateSuccess), true), nil
}

// Update loads the entity, copies d onto it and writes it only when a column
// actually changed. An unchanged entity yields dto.CodeNoChanges without a
// store write.
func (s *GenericService[T, D, K]) Update(ctx context.Context, key K, d *D) (*dto.ServiceResult[bool], error) {
	ctx, span := s.start(ctx, "Update")
	defer span.End()
	span.SetAttributes(attribute.String("key", fmt.Sprint(key)))

	if res, err := s.validate(ctx, span, d); res != nil || err != nil {
		return res, err
	}

	uow := s.deps.UowFactory.NewUnitOfWork(ctx)
	repo := s.repository(uow)

	existing, err := repo.GetById(ctx, key)
	if err != nil {
		return nil, s.fault(ctx, span, "Update", err)
	}
	if existing == nil {
		return dto.NewResult(dto.CodeNotFound, s.message(ctx, dto.CodeNotFound), false), nil
	}

	s.cfg.Mapper.MapOnto(d, existing)
	if !repo.HasChanges(existing) {
		return dto.NewResult(dto.CodeNoChanges, s.message(ctx, dto.CodeNoChanges), true), nil
	}

	if s.cfg.Rules != nil {
		fields, err := s.cfg.Rules.CheckUpdate(ctx, uow, existing)
		if err != nil {
			return nil, s.fault(ctx, span, "Update", err)
		}
		if len(fields) > 0 {
			return dto.ValidationResult[bool](s.message(ctx, dto.CodeValidationFailed), fields), nil
		}
	}

	if err := repo.Update(ctx, existing); err != nil {
		return nil, s.fault(ctx, span, "Update", err)
	}
	affected, err := uow.SaveChanges(ctx)
	if err != nil {
		return nil, s.fault(ctx, span, "Update", err)
	}
	span.SetAttributes(attribute.Int64("rows_affected", affected))
	if affected <= 0 {
		return dto.NewResult(dto.CodeUpdateFail, s.message(ctx, dto.CodeUpdateFail), false), nil
	}

	s.publish(ctx, events.ActionUpdated, existing)
	return dto.NewResult(dto.CodeUpdateSuccess, s.message(ctx, dto.CodeUpdateSuccess), true), nil
}

func (s *GenericService[T, D, K]) Delete(ctx context.Context, key K) (*dto.ServiceResult[bool], error) {
	ctx, span := s.start(ctx, "Delete")
	defer span.End()
	span.SetAttributes(attribute.String("key", fmt.Sprint(key)))

	uow := s.deps.UowFactory.NewUnitOfWork(ctx)
	repo := s.repository(uow)

	existing, err := repo.GetById(ctx, key)
	if err != nil {
		return nil, s.fault(ctx, span, "Delete", err)
	}
	if existing == nil {
		return dto.NewResult(dto.CodeNotFound, s.message(ctx, dto.CodeNotFound), false), nil
	}

	if s.cfg.Rules != nil {
		fields, err := s.cfg.Rules.CheckDelete(ctx, uow, existing)
		if err != nil {
			return nil, s.fault(ctx, span, "Delete", err)
		}
		if len(fields) > 0 {
			return dto.ValidationResult[bool](s.message(ctx, dto.CodeValidationFailed), fields), nil
		}
	}

	if err := repo.Delete(ctx, key); err != nil {
		return nil, s.fault(ctx, span, "Delete", err)
	}
	affected, err := uow.SaveChanges(ctx)
	if err != nil {
		return nil, s.fault(ctx, span, "Delete", err)
	}
	span.SetAttributes(attribute.Int64("rows_affected", affected))
	if affected <= 0 {
		return dto.NewResult(dto.CodeDeleteFail, s.message(ctx, dto.CodeDeleteFail), false), nil
	}

	s.publish(ctx, events.ActionDeleted, existing)
	return dto.NewResult(dto.CodeDeleteSuccess, s.message(ctx, dto.CodeDeleteSuccess), true), nil
}

// validate runs the dto's tag rules before anything touches the store.
func (s *GenericService[T, D, K]) validate(ctx context.Context, span trace.Span, d *D) (*dto.ServiceResult[bool], error) {
	if d == nil {
		return dto.ValidationResult[bool](s.message(ctx, dto.CodeValidationFailed), map[string][]string{
			"body": {"body is required"},
		}), nil
	}
	fields, err := validation.Struct(d)
	if err != nil {
		return nil, s.fault(ctx, span, "Validate", err)
	}
	if len(fields) > 0 {
		return dto.ValidationResult[bool](s.message(ctx, dto.CodeValidationFailed), fields), nil
	}
	return nil, nil
}

// publish emits the change event of a committed write. The write already
// succeeded, so failures are only logged.
func (s *GenericService[T, D, K]) publish(ctx context.Context, action events.Action, e *T) {
	if s.deps.Publisher == nil {
		return
	}
	var key interface{}
	if s.cfg.KeyOf != nil {
		key = s.cfg.KeyOf(e)
	}
	event := events.EntityChanged(s.cfg.EntityName, action, key)
	if err := s.deps.Publisher.Publish(ctx, event); err != nil {
		s.deps.Logger.Warn("SERVICE", "Failed to publish change event", map[string]interface{}{
			"event": event.EventType(),
			"error": err,
		})
	}
}

var _ IGenericService[struct{}, struct{}, int] = (*GenericService[struct{}, struct{}, int])(nil)

