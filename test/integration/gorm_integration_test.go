package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"elibrary-be/internal/constant"
	"elibrary-be/internal/entity"
	"elibrary-be/internal/pkg/logger"
	"elibrary-be/internal/pkg/message"
	"elibrary-be/internal/repository/unitofwork"
	"elibrary-be/internal/seed"
	"elibrary-be/internal/service"
	"elibrary-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresSchemaSeedAndGate(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(entity.Models()...))

	nop := logger.NewNopLogger()
	ctx := context.Background()
	_, err = seed.NewSeeder(gormDB, nop).Run(ctx)
	require.NoError(t, err)

	uowFactory := unitofwork.NewRepositoryFactory(gormDB, nop)

	t.Run("repositories reach their tables", func(t *testing.T) {
		uow := uowFactory.NewUnitOfWork(ctx)
		count, err := uow.RoleRepository().Count(ctx)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, count, int64(3))

		_, err = uow.BookRepository().Count(ctx)
		assert.NoError(t, err)
	})

	t.Run("seeded rules drive the gate", func(t *testing.T) {
		gate := service.NewAuthorizationService(uowFactory, message.StaticProvider{}, nop)

		ok, err := gate.IsAuthorized(ctx, constant.RoleReader, constant.FeatureBookManagement, "GET")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = gate.IsAuthorized(ctx, constant.RoleReader, constant.FeatureBookManagement, "POST")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
