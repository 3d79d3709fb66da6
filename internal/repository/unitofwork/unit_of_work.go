package unitofwork

import (
	"context"

	"elibrary-be/internal/entity"
	"elibrary-be/internal/repository/contract"
	"elibrary-be/internal/repository/implementation"

	"github.com/google/uuid"
)

// TransactionFailed is returned by SaveChangesWithTransaction when the
// transaction could not be committed.
const TransactionFailed int64 = -1

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	// SaveChanges writes every staged operation atomically and returns the
	// number of affected rows. Zero affected rows is not an error.
	SaveChanges(ctx context.Context) (int64, error)
	// SaveChangesWithTransaction is SaveChanges inside an explicit transaction
	// boundary. Failures are logged and reported as TransactionFailed.
	SaveChangesWithTransaction(ctx context.Context) int64

	RoleRepository() contract.Repository[entity.Role, int]
	FeatureRepository() contract.Repository[entity.Feature, int]
	PermissionRepository() contract.Repository[entity.Permission, int]
	RolePermissionRepository() contract.Repository[entity.RolePermission, int]
	SystemMessageRepository() contract.Repository[entity.SystemMessage, string]

	AuthorRepository() contract.Repository[entity.Author, uuid.UUID]
	BookRepository() contract.Repository[entity.Book, int]
	CategoryRepository() contract.Repository[entity.Category, string]

	// Session exposes the shared tracking scope so repositories of any entity
	// type can join this unit of work (see Repository).
	Session() *implementation.Session
}

// Repository returns the repository of T bound to uow.
func Repository[T any, K comparable](uow UnitOfWork) contract.Repository[T, K] {
	return implementation.NewGenericRepository[T, K](uow.Session())
}
