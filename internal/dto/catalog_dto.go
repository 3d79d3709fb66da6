// FILE: internal/dto/catalog_dto.go
// Transfer representations of the library catalog
package dto

import (
	"time"

	"github.com/google/uuid"
)

type AuthorDto struct {
	Id          uuid.UUID  `json:"id"`
	FullName    string     `json:"full_name" validate:"required,max=255"`
	Biography   string     `json:"biography,omitempty"`
	Nationality string     `json:"nationality,omitempty" validate:"omitempty,max=100"`
	Dob         *time.Time `json:"dob,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Books       []BookDto  `json:"books,omitempty" validate:"-"`
}

type CategoryDto struct {
	Code           string    `json:"code" validate:"required,max=20"`
	EnglishName    string    `json:"english_name" validate:"required,max=155"`
	VietnameseName string    `json:"vietnamese_name,omitempty" validate:"omitempty,max=155"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type BookDto struct {
	Id              int          `json:"id"`
	Title           string       `json:"title" validate:"required,max=255"`
	SubTitle        *string      `json:"sub_title,omitempty" validate:"omitempty,max=255"`
	Isbn            string       `json:"isbn,omitempty" validate:"omitempty,max=20"`
	Summary         string       `json:"summary,omitempty"`
	PublicationYear int          `json:"publication_year" validate:"gte=0,lte=9999"`
	PageCount       int          `json:"page_count" validate:"gte=0"`
	CanBorrow       bool         `json:"can_borrow"`
	AuthorId        uuid.UUID    `json:"author_id" validate:"required"`
	CategoryCode    string       `json:"category_code" validate:"required,max=20"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	Author          *AuthorDto   `json:"author,omitempty" validate:"-"`
	Category        *CategoryDto `json:"category,omitempty" validate:"-"`
}
