package contract

import (
	"context"
	"errors"

	"elibrary-be/internal/repository/specification"
)

// ErrAmbiguousMatch is returned by GetWithSpec when more than one row matches.
var ErrAmbiguousMatch = errors.New("specification matched more than one row")

// Repository is the storage access for one entity type T keyed by K.
//
// Reads return (nil, nil) when nothing matches. Add, AddRange, Update,
// Delete and DeleteRange only stage work; it reaches the store on the next
// SaveChanges of the owning unit of work.
type Repository[T any, K comparable] interface {
	GetById(ctx context.Context, key K) (*T, error)
	GetWithSpec(ctx context.Context, spec *specification.Specification[T]) (*T, error)
	GetAll(ctx context.Context) ([]*T, error)
	// GetAllWithSpec with tracked=false does not register results for change detection.
	GetAllWithSpec(ctx context.Context, spec *specification.Specification[T], tracked bool) ([]*T, error)
	Count(ctx context.Context) (int64, error)
	CountWithSpec(ctx context.Context, spec *specification.Specification[T]) (int64, error)
	Any(ctx context.Context, predicates ...specification.Predicate) (bool, error)

	Add(ctx context.Context, entity *T) error
	AddRange(ctx context.Context, entities []*T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, key K) error
	DeleteRange(ctx context.Context, keys []K) error

	// HasChanges reports whether any column of entity differs from the snapshot
	// taken when it was last read or saved. Entities that were never tracked
	// always report true.
	HasChanges(entity *T) bool
}
