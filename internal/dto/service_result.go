// FILE: internal/dto/service_result.go
// Uniform envelope returned by every service operation
package dto

import "strings"

// ResultCode is an opaque message-catalog key. Its class (success, warning,
// failure) is encoded in the segment after the dot.
type ResultCode string

const (
	CodeSuccess       ResultCode = "Common.Success0001"
	CodeCreateSuccess ResultCode = "Common.Success0002"
	CodeUpdateSuccess ResultCode = "Common.Success0003"
	CodeDeleteSuccess ResultCode = "Common.Success0004"
	CodeNoChanges     ResultCode = "Common.Success0005"

	CodeNotFound ResultCode = "Common.Warning0002"
	CodeNoData   ResultCode = "Common.Warning0004"

	CodeCreateFail ResultCode = "Common.Fail0001"
	CodeUpdateFail ResultCode = "Common.Fail0003"
	CodeDeleteFail ResultCode = "Common.Fail0004"

	CodeValidationFailed ResultCode = "Common.Error0001"
	CodeForbidden        ResultCode = "Auth.Error0001"
)

type ResultClass string

const (
	ClassSuccess ResultClass = "success"
	ClassWarning ResultClass = "warning"
	ClassFailure ResultClass = "failure"
)

func (c ResultCode) Class() ResultClass {
	_, kind, _ := strings.Cut(string(c), ".")
	switch {
	case strings.HasPrefix(kind, "Success"):
		return ClassSuccess
	case strings.HasPrefix(kind, "Warning"):
		return ClassWarning
	default:
		return ClassFailure
	}
}

type ServiceResult[T any] struct {
	Code    ResultCode          `json:"result_code"`
	Message string              `json:"message"`
	Data    T                   `json:"data"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func (r *ServiceResult[T]) IsSuccess() bool {
	return r.Code.Class() == ClassSuccess
}

func (r *ServiceResult[T]) IsWarning() bool {
	return r.Code.Class() == ClassWarning
}

func (r *ServiceResult[T]) IsFailure() bool {
	return r.Code.Class() == ClassFailure
}

func NewResult[T any](code ResultCode, message string, data T) *ServiceResult[T] {
	return &ServiceResult[T]{Code: code, Message: message, Data: data}
}

// EmptyResult carries no payload. Not-found outcomes are always built with it.
func EmptyResult[T any](code ResultCode, message string) *ServiceResult[T] {
	var zero T
	return &ServiceResult[T]{Code: code, Message: message, Data: zero}
}

func ValidationResult[T any](message string, errs map[string][]string) *ServiceResult[T] {
	var zero T
	return &ServiceResult[T]{Code: CodeValidationFailed, Message: message, Data: zero, Errors: errs}
}
