package unitofwork

import (
	"context"

	"elibrary-be/internal/entity"
	"elibrary-be/internal/pkg/logger"
	"elibrary-be/internal/repository/contract"
	"elibrary-be/internal/repository/implementation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	session *implementation.Session
	logger  logger.ILogger
}

func NewUnitOfWork(db *gorm.DB, log logger.ILogger) UnitOfWork {
	return &UnitOfWorkImpl{
		session: implementation.NewSession(db),
		logger:  log,
	}
}

func (u *UnitOfWorkImpl) Session() *implementation.Session {
	return u.session
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	return u.session.Begin(ctx)
}

func (u *UnitOfWorkImpl) Commit() error {
	return u.session.Commit()
}

func (u *UnitOfWorkImpl) Rollback() error {
	return u.session.Rollback()
}

func (u *UnitOfWorkImpl) SaveChanges(ctx context.Context) (int64, error) {
	return u.session.Flush(ctx)
}

func (u *UnitOfWorkImpl) SaveChangesWithTransaction(ctx context.Context) int64 {
	// Already inside a caller-managed transaction: join it.
	if u.session.InTransaction() {
		affected, err := u.session.Flush(ctx)
		if err != nil {
			u.logError(err)
			return TransactionFailed
		}
		return affected
	}

	if err := u.session.Begin(ctx); err != nil {
		u.logError(err)
		return TransactionFailed
	}
	affected, err := u.session.Flush(ctx)
	if err != nil {
		u.logError(err)
		if rbErr := u.session.Rollback(); rbErr != nil {
			u.logError(rbErr)
		}
		return TransactionFailed
	}
	if err := u.session.Commit(); err != nil {
		u.logError(err)
		return TransactionFailed
	}
	return affected
}

func (u *UnitOfWorkImpl) logError(err error) {
	if u.logger == nil {
		return
	}
	u.logger.Error("UNIT_OF_WORK", "Transactional save failed", map[string]interface{}{
		"error": err,
	})
}

// Repository Accessors

func (u *UnitOfWorkImpl) RoleRepository() contract.Repository[entity.Role, int] {
	return implementation.NewGenericRepository[entity.Role, int](u.session)
}

func (u *UnitOfWorkImpl) FeatureRepository() contract.Repository[entity.Feature, int] {
	return implementation.NewGenericRepository[entity.Feature, int](u.session)
}

func (u *UnitOfWorkImpl) PermissionRepository() contract.Repository[entity.Permission, int] {
	return implementation.NewGenericRepository[entity.Permission, int](u.session)
}

func (u *UnitOfWorkImpl) RolePermissionRepository() contract.Repository[entity.RolePermission, int] {
	return implementation.NewGenericRepository[entity.RolePermission, int](u.session)
}

func (u *UnitOfWorkImpl) SystemMessageRepository() contract.Repository[entity.SystemMessage, string] {
	return implementation.NewGenericRepository[entity.SystemMessage, string](u.session)
}

func (u *UnitOfWorkImpl) AuthorRepository() contract.Repository[entity.Author, uuid.UUID] {
	return implementation.NewGenericRepository[entity.Author, uuid.UUID](u.session)
}

func (u *UnitOfWorkImpl) BookRepository() contract.Repository[entity.Book, int] {
	return implementation.NewGenericRepository[entity.Book, int](u.session)
}

func (u *UnitOfWorkImpl) CategoryRepository() contract.Repository[entity.Category, string] {
	return implementation.NewGenericRepository[entity.Category, string](u.session)
}
