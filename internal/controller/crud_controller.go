package controller

import (
	"elibrary-be/internal/dto"
	"elibrary-be/internal/pkg/apperror"
	"elibrary-be/internal/pkg/serverutils"
	"elibrary-be/internal/repository/specification"
	"elibrary-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IController interface {
	RegisterRoutes(r fiber.Router)
}

// Resource describes how one entity is exposed over HTTP.
type Resource[T any, K comparable] struct {
	// Path is the route group, e.g. "/book/v1".
	Path     string
	Feature  string
	ParseKey func(raw string) (K, error)
	// Includes are loaded with every listing.
	Includes []string
	// Filter narrows listings and counts from query parameters. Optional.
	Filter func(ctx *fiber.Ctx, spec *specification.Specification[T]) error
}

// CrudController serves list, count, show, create, update and delete for an
// entity through its generic service.
type CrudController[T any, D any, K comparable] struct {
	resource Resource[T, K]
	service  service.IGenericService[T, D, K]
	guard    *Guard
}

func NewCrudController[T any, D any, K comparable](resource Resource[T, K], svc service.IGenericService[T, D, K], guard *Guard) *CrudController[T, D, K] {
	return &CrudController[T, D, K]{
		resource: resource,
		service:  svc,
		guard:    guard,
	}
}

func (c *CrudController[T, D, K]) RegisterRoutes(r fiber.Router) {
	h := r.Group(c.resource.Path)
	c.guard.Protect(h, c.resource.Feature)
	h.Get("", c.GetAll)
	h.Get("count", c.Count)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *CrudController[T, D, K]) GetAll(ctx *fiber.Ctx) error {
	spec, err := c.listSpec(ctx)
	if err != nil {
		return err
	}
	spec.ApplyPagination(ctx.QueryInt("page_index", 1), ctx.QueryInt("page_size", 0))

	res, err := c.service.GetAllPaginated(ctx.UserContext(), spec)
	if err != nil {
		return err
	}
	return serverutils.WriteResult(ctx, res)
}

func (c *CrudController[T, D, K]) Count(ctx *fiber.Ctx) error {
	spec, err := c.listSpec(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.CountWithSpec(ctx.UserContext(), spec)
	if err != nil {
		return err
	}
	return serverutils.WriteResult(ctx, res)
}

func (c *CrudController[T, D, K]) Show(ctx *fiber.Ctx) error {
	key, err := c.key(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetById(ctx.UserContext(), key)
	if err != nil {
		return err
	}
	return serverutils.WriteResult(ctx, res)
}

func (c *CrudController[T, D, K]) Create(ctx *fiber.Ctx) error {
	var req D
	if err := ctx.BodyParser(&req); err != nil {
		return invalidBody(err)
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return serverutils.WriteResult(ctx, res)
}

func (c *CrudController[T, D, K]) Update(ctx *fiber.Ctx) error {
	key, err := c.key(ctx)
	if err != nil {
		return err
	}

	var req D
	if err := ctx.BodyParser(&req); err != nil {
		return invalidBody(err)
	}

	res, err := c.service.Update(ctx.UserContext(), key, &req)
	if err != nil {
		return err
	}
	return serverutils.WriteResult(ctx, res)
}

func (c *CrudController[T, D, K]) Delete(ctx *fiber.Ctx) error {
	key, err := c.key(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Delete(ctx.UserContext(), key)
	if err != nil {
		return err
	}
	return serverutils.WriteResult(ctx, res)
}

func (c *CrudController[T, D, K]) listSpec(ctx *fiber.Ctx) (*specification.Specification[T], error) {
	spec := specification.New[T]()
	if len(c.resource.Includes) > 0 {
		spec.ApplyInclude(c.resource.Includes...)
	}
	if c.resource.Filter != nil {
		if err := c.resource.Filter(ctx, spec); err != nil {
			return nil, err
		}
	}
	return spec, nil
}

func (c *CrudController[T, D, K]) key(ctx *fiber.Ctx) (K, error) {
	key, err := c.resource.ParseKey(ctx.Params("id"))
	if err != nil {
		return key, invalidParam("id", err)
	}
	return key, nil
}

func invalidBody(err error) error {
	return apperror.Validation(string(dto.CodeValidationFailed), "Invalid request body", map[string][]string{
		"body": {err.Error()},
	})
}

func invalidParam(name string, err error) error {
	return apperror.Validation(string(dto.CodeValidationFailed), "Invalid path parameter", map[string][]string{
		name: {err.Error()},
	})
}
