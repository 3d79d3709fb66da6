package controller

import (
	"elibrary-be/internal/constant"
	"elibrary-be/internal/dto"
	"elibrary-be/internal/entity"
	"elibrary-be/internal/repository/specification"
	"elibrary-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

func NewSystemMessageController(svc service.ISystemMessageService, guard *Guard) IController {
	return NewCrudController[entity.SystemMessage, dto.SystemMessageDto, string](Resource[entity.SystemMessage, string]{
		Path:     "/system-message/v1",
		Feature:  constant.FeatureSystemMessageManagement,
		ParseKey: StringKey,
		Filter: func(ctx *fiber.Ctx, spec *specification.Specification[entity.SystemMessage]) error {
			if q := ctx.Query("q"); q != "" {
				spec.AddFilter(specification.Contains{Column: "english_text", Term: q})
			}
			spec.ApplyOrderBy("msg_id")
			return nil
		},
	}, svc, guard)
}
