// FILE: internal/mapper/catalog_mapper.go
// Mappers for Author, Category and Book entity <-> dto conversion
package mapper

import (
	"elibrary-be/internal/dto"
	"elibrary-be/internal/entity"
)

type AuthorMapper struct{}

func NewAuthorMapper() *AuthorMapper {
	return &AuthorMapper{}
}

func (m *AuthorMapper) ToDto(e *entity.Author) *dto.AuthorDto {
	if e == nil {
		return nil
	}
	d := &dto.AuthorDto{
		Id:          e.Id,
		FullName:    e.FullName,
		Biography:   e.Biography,
		Nationality: e.Nationality,
		Dob:         e.Dob,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if len(e.Books) > 0 {
		books := NewBookMapper()
		d.Books = make([]dto.BookDto, 0, len(e.Books))
		for i := range e.Books {
			d.Books = append(d.Books, *books.ToDto(&e.Books[i]))
		}
	}
	return d
}

func (m *AuthorMapper) ToEntity(d *dto.AuthorDto) *entity.Author {
	if d == nil {
		return nil
	}
	return &entity.Author{
		Id:          d.Id,
		FullName:    d.FullName,
		Biography:   d.Biography,
		Nationality: d.Nationality,
		Dob:         d.Dob,
	}
}

func (m *AuthorMapper) MapOnto(d *dto.AuthorDto, e *entity.Author) {
	e.FullName = d.FullName
	e.Biography = d.Biography
	e.Nationality = d.Nationality
	e.Dob = d.Dob
}

type CategoryMapper struct{}

func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{}
}

func (m *CategoryMapper) ToDto(e *entity.Category) *dto.CategoryDto {
	if e == nil {
		return nil
	}
	return &dto.CategoryDto{
		Code:           e.Code,
		EnglishName:    e.EnglishName,
		VietnameseName: e.VietnameseName,
		Description:    e.Description,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *CategoryMapper) ToEntity(d *dto.CategoryDto) *entity.Category {
	if d == nil {
		return nil
	}
	return &entity.Category{
		Code:           d.Code,
		EnglishName:    d.EnglishName,
		VietnameseName: d.VietnameseName,
		Description:    d.Description,
	}
}

func (m *CategoryMapper) MapOnto(d *dto.CategoryDto, e *entity.Category) {
	e.EnglishName = d.EnglishName
	e.VietnameseName = d.VietnameseName
	e.Description = d.Description
}

type BookMapper struct{}

func NewBookMapper() *BookMapper {
	return &BookMapper{}
}

func (m *BookMapper) ToDto(e *entity.Book) *dto.BookDto {
	if e == nil {
		return nil
	}
	return &dto.BookDto{
		Id:              e.Id,
		Title:           e.Title,
		SubTitle:        e.SubTitle,
		Isbn:            e.Isbn,
		Summary:         e.Summary,
		PublicationYear: e.PublicationYear,
		PageCount:       e.PageCount,
		CanBorrow:       e.CanBorrow,
		AuthorId:        e.AuthorId,
		CategoryCode:    e.CategoryCode,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
		Author:          NewAuthorMapper().ToDto(e.Author),
		Category:        NewCategoryMapper().ToDto(e.Category),
	}
}

// ToEntity leaves Id zero: book ids come from the store.
func (m *BookMapper) ToEntity(d *dto.BookDto) *entity.Book {
	if d == nil {
		return nil
	}
	return &entity.Book{
		Title:           d.Title,
		SubTitle:        d.SubTitle,
		Isbn:            d.Isbn,
		Summary:         d.Summary,
		PublicationYear: d.PublicationYear,
		PageCount:       d.PageCount,
		CanBorrow:       d.CanBorrow,
		AuthorId:        d.AuthorId,
		CategoryCode:    d.CategoryCode,
	}
}

func (m *BookMapper) MapOnto(d *dto.BookDto, e *entity.Book) {
	e.Title = d.Title
	e.SubTitle = d.SubTitle
	e.Isbn = d.Isbn
	e.Summary = d.Summary
	e.PublicationYear = d.PublicationYear
	e.PageCount = d.PageCount
	e.CanBorrow = d.CanBorrow
	e.AuthorId = d.AuthorId
	e.CategoryCode = d.CategoryCode
}
