package controller

import (
	"elibrary-be/internal/constant"
	"elibrary-be/internal/dto"
	"elibrary-be/internal/entity"
	"elibrary-be/internal/repository/specification"
	"elibrary-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func NewBookController(svc service.IBookService, guard *Guard) IController {
	return NewCrudController[entity.Book, dto.BookDto, int](Resource[entity.Book, int]{
		Path:     "/book/v1",
		Feature:  constant.FeatureBookManagement,
		ParseKey: IntKey,
		Includes: []string{"Author", "Category"},
		Filter:   bookFilter,
	}, svc, guard)
}

func NewAuthorController(svc service.IAuthorService, guard *Guard) IController {
	return NewCrudController[entity.Author, dto.AuthorDto, uuid.UUID](Resource[entity.Author, uuid.UUID]{
		Path:     "/author/v1",
		Feature:  constant.FeatureAuthorManagement,
		ParseKey: UUIDKey,
		Filter: func(ctx *fiber.Ctx, spec *specification.Specification[entity.Author]) error {
			if q := ctx.Query("q"); q != "" {
				spec.AddFilter(specification.Contains{Column: "full_name", Term: q})
			}
			spec.ApplyOrderBy("full_name")
			return nil
		},
	}, svc, guard)
}

func NewCategoryController(svc service.ICategoryService, guard *Guard) IController {
	return NewCrudController[entity.Category, dto.CategoryDto, string](Resource[entity.Category, string]{
		Path:     "/category/v1",
		Feature:  constant.FeatureCategoryManagement,
		ParseKey: StringKey,
		Filter: func(ctx *fiber.Ctx, spec *specification.Specification[entity.Category]) error {
			spec.ApplyOrderBy("code")
			return nil
		},
	}, svc, guard)
}

// bookFilter reads ?author_id, ?category_code, ?q and ?borrowable.
func bookFilter(ctx *fiber.Ctx, spec *specification.Specification[entity.Book]) error {
	if raw := ctx.Query("author_id"); raw != "" {
		authorId, err := uuid.Parse(raw)
		if err != nil {
			return invalidParam("author_id", err)
		}
		spec.AddFilter(specification.BooksByAuthor{AuthorID: authorId})
	}
	if code := ctx.Query("category_code"); code != "" {
		spec.AddFilter(specification.BooksByCategory{CategoryCode: code})
	}
	if q := ctx.Query("q"); q != "" {
		spec.AddFilter(specification.BookSearchQuery{Query: q})
	}
	if ctx.QueryBool("borrowable", false) {
		spec.AddFilter(specification.BorrowableBooks{})
	}
	spec.ApplyOrderBy("books.id")
	return nil
}
