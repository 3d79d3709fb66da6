package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BooksByAuthor struct {
	AuthorID uuid.UUID
}

func (s BooksByAuthor) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("books.author_id = ?", s.AuthorID)
}

type BooksByCategory struct {
	CategoryCode string
}

func (s BooksByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("books.category_code = ?", s.CategoryCode)
}

// BookSearchQuery filters books by title or ISBN
type BookSearchQuery struct {
	Query string
}

func (s BookSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := containsPattern(s.Query)
	return db.Where(`LOWER(books.title) LIKE LOWER(?) ESCAPE '\' OR books.isbn LIKE ? ESCAPE '\'`, pattern, pattern)
}

type BorrowableBooks struct{}

func (s BorrowableBooks) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("books.can_borrow = ?", true)
}
