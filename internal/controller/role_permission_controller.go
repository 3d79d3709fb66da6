package controller

import (
	"elibrary-be/internal/constant"
	"elibrary-be/internal/dto"
	"elibrary-be/internal/pkg/serverutils"
	"elibrary-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRolePermissionController interface {
	IController
	ListByRole(ctx *fiber.Ctx) error
	UpdatePermission(ctx *fiber.Ctx) error
}

type rolePermissionController struct {
	service service.IRolePermissionService
	guard   *Guard
}

func NewRolePermissionController(svc service.IRolePermissionService, guard *Guard) IRolePermissionController {
	return &rolePermissionController{service: svc, guard: guard}
}

func (c *rolePermissionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/role-permission/v1")
	c.guard.Protect(h, constant.FeatureRolePermissionManagement)
	h.Get("role/:roleId", c.ListByRole)
	h.Put("role/:roleId/feature/:featureId", c.UpdatePermission)
}

func (c *rolePermissionController) ListByRole(ctx *fiber.Ctx) error {
	roleId, err := ctx.ParamsInt("roleId")
	if err != nil {
		return invalidParam("roleId", err)
	}

	res, err := c.service.ListByRole(ctx.UserContext(), roleId, ctx.QueryInt("page_index", 1), ctx.QueryInt("page_size", 0))
	if err != nil {
		return err
	}
	return serverutils.WriteResult(ctx, res)
}

func (c *rolePermissionController) UpdatePermission(ctx *fiber.Ctx) error {
	roleId, err := ctx.ParamsInt("roleId")
	if err != nil {
		return invalidParam("roleId", err)
	}
	featureId, err := ctx.ParamsInt("featureId")
	if err != nil {
		return invalidParam("featureId", err)
	}

	var req dto.UpdateRolePermissionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return invalidBody(err)
	}

	res, err := c.service.UpdatePermission(ctx.UserContext(), roleId, featureId, &req)
	if err != nil {
		return err
	}
	return serverutils.WriteResult(ctx, res)
}
