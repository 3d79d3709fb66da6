package serverutils

import (
	"elibrary-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool                `json:"success"`
	Code    string              `json:"result_code"`
	Message string              `json:"message"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func SuccessResponse(message string, data interface{}) Response {
	return Response{
		Success: true,
		Code:    string(dto.CodeSuccess),
		Message: message,
		Data:    data,
	}
}

// StatusOf picks the HTTP status of a result code. Warnings (no data, no
// changes) are still 200: callers branch on result_code.
func StatusOf(code dto.ResultCode) int {
	switch code {
	case dto.CodeCreateSuccess:
		return fiber.StatusCreated
	case dto.CodeNotFound:
		return fiber.StatusNotFound
	case dto.CodeValidationFailed:
		return fiber.StatusUnprocessableEntity
	case dto.CodeForbidden:
		return fiber.StatusForbidden
	}
	if code.Class() == dto.ClassFailure {
		return fiber.StatusBadRequest
	}
	return fiber.StatusOK
}

// WriteResult renders a service envelope.
func WriteResult[T any](ctx *fiber.Ctx, result *dto.ServiceResult[T]) error {
	return ctx.Status(StatusOf(result.Code)).JSON(Response{
		Success: result.IsSuccess(),
		Code:    string(result.Code),
		Message: result.Message,
		Data:    result.Data,
		Errors:  result.Errors,
	})
}
