package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"elibrary-be/internal/entity"
	"elibrary-be/internal/pkg/logger"
	"elibrary-be/internal/pkg/message"
	"elibrary-be/internal/repository/unitofwork"
	"elibrary-be/internal/testutil"
	"elibrary-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

func newTestDeps(t *testing.T) (Dependencies, *gorm.DB, *recordingPublisher) {
	t.Helper()
	db := testutil.OpenDB(t)
	log := logger.NewNopLogger()
	publisher := &recordingPublisher{}
	return Dependencies{
		UowFactory: unitofwork.NewRepositoryFactory(db, log),
		Messages:   message.StaticProvider{},
		Publisher:  publisher,
		Logger:     log,
		Paging:     PagingOptions{DefaultPageSize: 10, MaxPageSize: 50},
	}, db, publisher
}

func seedCatalog(t *testing.T, db *gorm.DB) (*entity.Author, *entity.Category) {
	t.Helper()
	author := &entity.Author{FullName: "Frank Herbert", Nationality: "American"}
	require.NoError(t, db.Create(author).Error)
	require.NotEqual(t, uuid.Nil, author.Id)

	category := &entity.Category{Code: "SCI", EnglishName: "Science Fiction", VietnameseName: "Khoa học viễn tưởng"}
	require.NoError(t, db.Create(category).Error)
	return author, category
}

func seedBooks(t *testing.T, db *gorm.DB, author *entity.Author, category *entity.Category, n int) {
	t.Helper()
	books := make([]*entity.Book, 0, n)
	for i := 0; i < n; i++ {
		books = append(books, &entity.Book{
			Title:        "Volume",
			AuthorId:     author.Id,
			CategoryCode: category.Code,
			CanBorrow:    i%2 == 0,
			PageCount:    100 + i,
		})
	}
	require.NoError(t, db.Create(books).Error)
}

// countUpdates counts UPDATE statements issued through db.
func countUpdates(t *testing.T, db *gorm.DB) *int {
	t.Helper()
	n := 0
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:count_updates", func(tx *gorm.DB) {
		n++
	}))
	return &n
}

var errBrokerDown = errors.New("broker down")
