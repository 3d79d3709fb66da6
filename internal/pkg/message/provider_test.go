package message

import (
	"context"
	"testing"
	"time"

	"elibrary-be/internal/dto"
	"elibrary-be/internal/entity"
	"elibrary-be/internal/pkg/logger"
	"elibrary-be/internal/repository/memory"
	"elibrary-be/internal/repository/unitofwork"
	"elibrary-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogProvider(t *testing.T) {
	db := testutil.OpenDB(t)
	require.NoError(t, db.Create(&entity.SystemMessage{
		MsgId:          string(dto.CodeCreateSuccess),
		EnglishText:    "{0} was added",
		VietnameseText: "Đã thêm {0}",
	}).Error)

	log := logger.NewNopLogger()
	cache := memory.NewMessageCache(time.Minute)
	provider := NewCatalogProvider(unitofwork.NewRepositoryFactory(db, log), cache, time.Minute, log)
	vi := WithLanguage(context.Background(), Vietnamese)

	t.Run("stored text", func(t *testing.T) {
		assert.Equal(t, "Book was added", provider.Message(context.Background(), dto.CodeCreateSuccess, "Book"))
		assert.Equal(t, "Đã thêm Sách", provider.Message(vi, dto.CodeCreateSuccess, "Sách"))
	})

	t.Run("cached", func(t *testing.T) {
		text, found := cache.Get(context.Background(), "en:"+string(dto.CodeCreateSuccess))
		assert.True(t, found)
		assert.Equal(t, "{0} was added", text)
	})

	t.Run("built-in fallback", func(t *testing.T) {
		assert.Equal(t, "No data found", provider.Message(context.Background(), dto.CodeNoData))
		assert.Equal(t, "Không có dữ liệu", provider.Message(vi, dto.CodeNoData))
	})

	t.Run("unknown code", func(t *testing.T) {
		assert.Equal(t, "Library.Warning9999", provider.Message(context.Background(), dto.ResultCode("Library.Warning9999")))
	})

	t.Run("store fault falls back", func(t *testing.T) {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())
		assert.Equal(t, "Update Book successfully", provider.Message(context.Background(), dto.CodeUpdateSuccess, "Book"))
	})
}

// ttlCache records the ttl of every Set on top of a memory cache.
type ttlCache struct {
	*memory.MessageCache
	ttls map[string]time.Duration
}

func (c *ttlCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	c.ttls[key] = ttl
	c.MessageCache.Set(ctx, key, value, ttl)
}

func TestCatalogProvider_CachesMissingCodes(t *testing.T) {
	db := testutil.OpenDB(t)
	log := logger.NewNopLogger()
	cache := &ttlCache{MessageCache: memory.NewMessageCache(time.Hour), ttls: map[string]time.Duration{}}
	provider := NewCatalogProvider(unitofwork.NewRepositoryFactory(db, log), cache, 30*time.Minute, log)
	ctx := context.Background()

	assert.Equal(t, "No data found", provider.Message(ctx, dto.CodeNoData))
	assert.Equal(t, missingTTL, cache.ttls["en:"+string(dto.CodeNoData)])

	// answered from the cache until the short ttl runs out
	require.NoError(t, db.Create(&entity.SystemMessage{MsgId: string(dto.CodeNoData), EnglishText: "Nothing here"}).Error)
	assert.Equal(t, "No data found", provider.Message(ctx, dto.CodeNoData))

	cache.Delete(ctx, CacheKeys(string(dto.CodeNoData))...)
	assert.Equal(t, "Nothing here", provider.Message(ctx, dto.CodeNoData))
	assert.Equal(t, 30*time.Minute, cache.ttls["en:"+string(dto.CodeNoData)])

	short := NewCatalogProvider(unitofwork.NewRepositoryFactory(db, log), cache, time.Second, log)
	assert.Equal(t, "Library.Warning9999", short.Message(ctx, dto.ResultCode("Library.Warning9999")))
	assert.Equal(t, time.Second, cache.ttls["en:Library.Warning9999"])
}

func TestParseLanguage(t *testing.T) {
	tests := map[string]Language{
		"":                  English,
		"vi":                Vietnamese,
		"vi-VN,vi;q=0.9,en": Vietnamese,
		"en-US,en;q=0.9":    English,
		" VI ":              Vietnamese,
		"fr-FR":             English,
	}
	for header, want := range tests {
		assert.Equal(t, want, ParseLanguage(header), header)
	}
	assert.Equal(t, English, LanguageFrom(context.Background()))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "Create Book successfully", Format("Create {0} successfully", "Book"))
	assert.Equal(t, "a b {2}", Format("{0} {1} {2}", "a", "b"))
}
