package service

import (
	"context"
	"fmt"

	"elibrary-be/internal/dto"
	"elibrary-be/internal/entity"
	"elibrary-be/internal/mapper"
	"elibrary-be/internal/repository/specification"
	"elibrary-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type (
	IBookService     = IGenericService[entity.Book, dto.BookDto, int]
	IAuthorService   = IGenericService[entity.Author, dto.AuthorDto, uuid.UUID]
	ICategoryService = IGenericService[entity.Category, dto.CategoryDto, string]
)

func NewBookService(deps Dependencies) IBookService {
	return NewGenericService(deps, EntityConfig[entity.Book, dto.BookDto, int]{
		EntityName: "Book",
		Mapper:     mapper.NewBookMapper(),
		KeyOf:      func(e *entity.Book) int { return e.Id },
		Rules:      bookRules{},
	})
}

func NewAuthorService(deps Dependencies) IAuthorService {
	return NewGenericService(deps, EntityConfig[entity.Author, dto.AuthorDto, uuid.UUID]{
		EntityName: "Author",
		Mapper:     mapper.NewAuthorMapper(),
		KeyOf:      func(e *entity.Author) uuid.UUID { return e.Id },
		Rules:      authorRules{},
	})
}

func NewCategoryService(deps Dependencies) ICategoryService {
	return NewGenericService(deps, EntityConfig[entity.Category, dto.CategoryDto, string]{
		EntityName: "Category",
		Mapper:     mapper.NewCategoryMapper(),
		KeyOf:      func(e *entity.Category) string { return e.Code },
		Rules:      categoryRules{},
	})
}

type bookRules struct{}

func (bookRules) CheckCreate(ctx context.Context, uow unitofwork.UnitOfWork, book *entity.Book) (map[string][]string, error) {
	return bookReferences(ctx, uow, book)
}

func (bookRules) CheckUpdate(ctx context.Context, uow unitofwork.UnitOfWork, book *entity.Book) (map[string][]string, error) {
	return bookReferences(ctx, uow, book)
}

func (bookRules) CheckDelete(ctx context.Context, uow unitofwork.UnitOfWork, book *entity.Book) (map[string][]string, error) {
	return nil, nil
}

func bookReferences(ctx context.Context, uow unitofwork.UnitOfWork, book *entity.Book) (map[string][]string, error) {
	fields := make(map[string][]string)

	author, err := uow.AuthorRepository().GetById(ctx, book.AuthorId)
	if err != nil {
		return nil, err
	}
	if author == nil {
		fields["author_id"] = append(fields["author_id"], fmt.Sprintf("author %s does not exist", book.AuthorId))
	}

	category, err := uow.CategoryRepository().GetById(ctx, book.CategoryCode)
	if err != nil {
		return nil, err
	}
	if category == nil {
		fields["category_code"] = append(fields["category_code"], fmt.Sprintf("category %s does not exist", book.CategoryCode))
	}
	return fields, nil
}

type authorRules struct{}

func (authorRules) CheckCreate(ctx context.Context, uow unitofwork.UnitOfWork, author *entity.Author) (map[string][]string, error) {
	return nil, nil
}

func (authorRules) CheckUpdate(ctx context.Context, uow unitofwork.UnitOfWork, author *entity.Author) (map[string][]string, error) {
	return nil, nil
}

func (authorRules) CheckDelete(ctx context.Context, uow unitofwork.UnitOfWork, author *entity.Author) (map[string][]string, error) {
	inUse, err := uow.BookRepository().Any(ctx, specification.BooksByAuthor{AuthorID: author.Id})
	if err != nil {
		return nil, err
	}
	if inUse {
		return map[string][]string{"id": {"author still has books"}}, nil
	}
	return nil, nil
}

type categoryRules struct{}

func (categoryRules) CheckCreate(ctx context.Context, uow unitofwork.UnitOfWork, category *entity.Category) (map[string][]string, error) {
	existing, err := uow.CategoryRepository().GetById(ctx, category.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return map[string][]string{"code": {fmt.Sprintf("code %s is already in use", category.Code)}}, nil
	}
	return nil, nil
}

func (categoryRules) CheckUpdate(ctx context.Context, uow unitofwork.UnitOfWork, category *entity.Category) (map[string][]string, error) {
	return nil, nil
}

func (categoryRules) CheckDelete(ctx context.Context, uow unitofwork.UnitOfWork, category *entity.Category) (map[string][]string, error) {
	inUse, err := uow.BookRepository().Any(ctx, specification.BooksByCategory{CategoryCode: category.Code})
	if err != nil {
		return nil, err
	}
	if inUse {
		return map[string][]string{"code": {"category still has books"}}, nil
	}
	return nil, nil
}
