package service

import (
	"context"

	"elibrary-be/internal/mapper"
	"elibrary-be/internal/pkg/logger"
	"elibrary-be/internal/pkg/message"
	"elibrary-be/internal/repository/unitofwork"
	"elibrary-be/pkg/events"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("elibrary-be/internal/service")

type PagingOptions struct {
	DefaultPageSize int
	MaxPageSize     int
}

// Dependencies are shared by every entity service.
type Dependencies struct {
	UowFactory unitofwork.RepositoryFactory
	Messages   message.Provider
	Publisher  events.Publisher // optional
	Logger     logger.ILogger
	Paging     PagingOptions
}

// Rules holds entity-specific checks that need the store (referenced rows
// exist, natural keys are free, nothing still points at a row being deleted).
// A non-empty map is reported as a validation failure; an error is an
// unexpected fault.
type Rules[T any] interface {
	CheckCreate(ctx context.Context, uow unitofwork.UnitOfWork, entity *T) (map[string][]string, error)
	CheckUpdate(ctx context.Context, uow unitofwork.UnitOfWork, entity *T) (map[string][]string, error)
	CheckDelete(ctx context.Context, uow unitofwork.UnitOfWork, entity *T) (map[string][]string, error)
}

// EntityConfig binds the generic service to one entity type.
type EntityConfig[T any, D any, K comparable] struct {
	// EntityName is the display name used in messages and event types.
	EntityName string
	Mapper     mapper.Mapper[T, D]
	KeyOf      func(entity *T) K
	Rules      Rules[T] // optional
}
