package service

import (
	"context"

	"elibrary-be/internal/dto"
	"elibrary-be/internal/mapper"
	"elibrary-be/internal/pkg/paging"
	"elibrary-be/internal/repository/contract"
	"elibrary-be/internal/repository/specification"
	"elibrary-be/internal/repository/unitofwork"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type IReadOnlyService[T any, D any, K comparable] interface {
	GetById(ctx context.Context, key K) (*dto.ServiceResult[*D], error)
	GetWithSpec(ctx context.Context, spec *specification.Specification[T]) (*dto.ServiceResult[*D], error)
	GetAll(ctx context.Context) (*dto.ServiceResult[[]D], error)
	GetAllWithSpec(ctx context.Context, spec *specification.Specification[T], tracked bool) (*dto.ServiceResult[[]D], error)
	GetAllPaginated(ctx context.Context, spec *specification.Specification[T]) (*dto.ServiceResult[*dto.PaginatedResult[D]], error)
	Count(ctx context.Context) (*dto.ServiceResult[int64], error)
	CountWithSpec(ctx context.Context, spec *specification.Specification[T]) (*dto.ServiceResult[int64], error)
	Any(ctx context.Context, predicates ...specification.Predicate) (*dto.ServiceResult[bool], error)
	Exists(ctx context.Context, key K) (*dto.ServiceResult[bool], error)
}

// ReadOnlyService serves every read of one entity type. Empty reads are
// reported with dto.CodeNoData, never as errors.
type ReadOnlyService[T any, D any, K comparable] struct {
	deps Dependencies
	cfg  EntityConfig[T, D, K]
}

func NewReadOnlyService[T any, D any, K comparable](deps Dependencies, cfg EntityConfig[T, D, K]) *ReadOnlyService[T, D, K] {
	return &ReadOnlyService[T, D, K]{deps: deps, cfg: cfg}
}

func (s *ReadOnlyService[T, D, K]) repository(uow unitofwork.UnitOfWork) contract.Repository[T, K] {
	return unitofwork.Repository[T, K](uow)
}

func (s *ReadOnlyService[T, D, K]) GetById(ctx context.Context, key K) (*dto.ServiceResult[*D], error) {
	ctx, span := s.start(ctx, "GetById")
	defer span.End()

	uow := s.deps.UowFactory.NewUnitOfWork(ctx)
	e, err := s.repository(uow).GetById(ctx, key)
	if err != nil {
		return nil, s.fault(ctx, span, "GetById", err)
	}
	if e == nil {
		return dto.EmptyResult[*D](dto.CodeNoData, s.message(ctx, dto.CodeNoData)), nil
	}
	return dto.NewResult(dto.CodeSuccess, s.message(ctx, dto.CodeSuccess), s.cfg.Mapper.ToDto(e)), nil
}

// GetWithSpec returns the single entity matched by spec. A spec matching more
// than one row is a caller error and is returned as contract.ErrAmbiguousMatch.
func (s *ReadOnlyService[T, D, K]) GetWithSpec(ctx context.Context, spec *specification.Specification[T]) (*dto.ServiceResult[*D], error) {
	ctx, span := s.start(ctx, "GetWithSpec")
	defer span.End()

	uow := s.deps.UowFactory.NewUnitOfWork(ctx)
	e, err := s.repository(uow).GetWithSpec(ctx, spec)
	if err != nil {
		return nil, s.fault(ctx, span, "GetWithSpec", err)
	}
	if e == nil {
		return dto.EmptyResult[*D](dto.CodeNoData, s.message(ctx, dto.CodeNoData)), nil
	}
	return dto.NewResult(dto.CodeSuccess, s.message(ctx, dto.CodeSuccess), s.cfg.Mapper.ToDto(e)), nil
}

func (s *ReadOnlyService[T, D, K]) GetAll(ctx context.Context) (*dto.ServiceResult[[]D], error) {
	return s.GetAllWithSpec(ctx, nil, true)
}

func (s *ReadOnlyService[T, D, K]) GetAllWithSpec(ctx context.Context, spec *specification.Specification[T], tracked bool) (*dto.ServiceResult[[]D], error) {
	ctx, span := s.start(ctx, "GetAllWithSpec")
	defer span.End()

	uow := s.deps.UowFactory.NewUnitOfWork(ctx)
	rows, err := s.repository(uow).GetAllWithSpec(ctx, spec, tracked)
	if err != nil {
		return nil, s.fault(ctx, span, "GetAllWithSpec", err)
	}
	dtos := mapper.ToDtos(s.cfg.Mapper, rows)
	if len(dtos) == 0 {
		return dto.NewResult(dto.CodeNoData, s.message(ctx, dto.CodeNoData), dtos), nil
	}
	return dto.NewResult(dto.CodeSuccess, s.message(ctx, dto.CodeSuccess), dtos), nil
}

// GetAllPaginated counts the matches of spec, resolves the page requested with
// spec.ApplyPagination (out of range pages become page 1) and returns that page.
func (s *ReadOnlyService[T, D, K]) GetAllPaginated(ctx context.Context, spec *specification.Specification[T]) (*dto.ServiceResult[*dto.PaginatedResult[D]], error) {
	ctx, span := s.start(ctx, "GetAllPaginated")
	defer span.End()

	if spec == nil {
		spec = specification.New[T]()
	}

	uow := s.deps.UowFactory.NewUnitOfWork(ctx)
	repo := s.repository(uow)

	total, err := repo.CountWithSpec(ctx, spec)
	if err != nil {
		return nil, s.fault(ctx, span, "GetAllPaginated", err)
	}

	pageIndex, pageSize := spec.Page()
	window := paging.Resolve(total, pageIndex, pageSize, s.deps.Paging.DefaultPageSize, s.deps.Paging.MaxPageSize)
	spec.ApplyPaging(window.Skip, window.PageSize)

	rows, err := repo.GetAllWithSpec(ctx, spec, false)
	if err != nil {
		return nil, s.fault(ctx, span, "GetAllPaginated", err)
	}

	page := &dto.PaginatedResult[D]{
		Sources:    mapper.ToDtos(s.cfg.Mapper, rows),
		PageIndex:  window.PageIndex,
		PageSize:   window.PageSize,
		TotalPages: window.TotalPages,
		TotalItems: total,
	}
	span.SetAttributes(attribute.Int64("total_items", total), attribute.Int("page_index", window.PageIndex))

	if len(page.Sources) == 0 {
		return dto.NewResult(dto.CodeNoData, s.message(ctx, dto.CodeNoData), page), nil
	}
	return dto.NewResult(dto.CodeSuccess, s.message(ctx, dto.CodeSuccess), page), nil
}

func (s *ReadOnlyService[T, D, K]) Count(ctx context.Context) (*dto.ServiceResult[int64], error) {
	return s.CountWithSpec(ctx, nil)
}

func (s *ReadOnlyService[T, D, K]) CountWithSpec(ctx context.Context, spec *specification.Specification[T]) (*dto.ServiceResult[int64], error) {
	ctx, span := s.start(ctx, "CountWithSpec")
	defer span.End()

	uow := s.deps.UowFactory.NewUnitOfWork(ctx)
	count, err := s.repository(uow).CountWithSpec(ctx, spec)
	if err != nil {
		return nil, s.fault(ctx, span, "CountWithSpec", err)
	}
	return dto.NewResult(dto.CodeSuccess, s.message(ctx, dto.CodeSuccess), count), nil
}

func (s *ReadOnlyService[T, D, K]) Any(ctx context.Context, predicates ...specification.Predicate) (*dto.ServiceResult[bool], error) {
	ctx, span := s.start(ctx, "Any")
	defer span.End()

	uow := s.deps.UowFactory.NewUnitOfWork(ctx)
	found, err := s.repository(uow).Any(ctx, predicates...)
	if err != nil {
		return nil, s.fault(ctx, span, "Any", err)
	}
	return dto.NewResult(dto.CodeSuccess, s.message(ctx, dto.CodeSuccess), found), nil
}

func (s *ReadOnlyService[T, D, K]) Exists(ctx context.Context, key K) (*dto.ServiceResult[bool], error) {
	ctx, span := s.start(ctx, "Exists")
	defer span.End()

	uow := s.deps.UowFactory.NewUnitOfWork(ctx)
	e, err := s.repository(uow).GetById(ctx, key)
	if err != nil {
		return nil, s.fault(ctx, span, "Exists", err)
	}
	return dto.NewResult(dto.CodeSuccess, s.message(ctx, dto.CodeSuccess), e != nil), nil
}

func (s *ReadOnlyService[T, D, K]) start(ctx context.Context, op string) (context.Context, trace.Span) {
	ctx, span := tracer.Start(ctx, s.cfg.EntityName+"."+op)
	span.SetAttributes(attribute.String("entity", s.cfg.EntityName))
	return ctx, span
}

func (s *ReadOnlyService[T, D, K]) message(ctx context.Context, code dto.ResultCode) string {
	return s.deps.Messages.Message(ctx, code, s.cfg.EntityName)
}

// fault logs an unexpected error where it was detected and hands it back
// unchanged so the boundary can translate it.
func (s *ReadOnlyService[T, D, K]) fault(ctx context.Context, span trace.Span, op string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.deps.Logger.Error("SERVICE", "Unexpected error", map[string]interface{}{
		"entity":    s.cfg.EntityName,
		"operation": op,
		"error":     err,
	})
	return err
}
