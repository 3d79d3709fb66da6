package unitofwork

import (
	"context"

	"elibrary-be/internal/pkg/logger"

	"gorm.io/gorm"
)

type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}

type RepositoryFactoryImpl struct {
	db     *gorm.DB
	logger logger.ILogger
}

func NewRepositoryFactory(db *gorm.DB, log logger.ILogger) RepositoryFactory {
	return &RepositoryFactoryImpl{
		db:     db,
		logger: log,
	}
}

// NewUnitOfWork opens a fresh tracking scope. A UnitOfWork belongs to one
// logical operation and must not be shared between goroutines.
func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return NewUnitOfWork(f.db, f.logger)
}
