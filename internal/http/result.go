package httpapi

import (
	"errors"
	"net/http"

	"spine-intake/internal/domain"
	"spine-intake/internal/service"
)

// Result 统一响应包装
// - code: 2000 成功，-1 失败
// - type: 'success' | 'error'
// - message: string
// - result: any（未命中的点击也是 2000，由 result.status 说明原因）
type Result[T any] struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Result  T      `json:"result"`
}

const (
	ResultSuccess = 2000
	ResultError   = -1
)

func Ok[T any](result T) Result[T] {
	return Result[T]{Code: ResultSuccess, Type: "success", Message: "ok", Result: result}
}

func Fail(message string) Result[any] {
	return Result[any]{Code: ResultError, Type: "error", Message: message, Result: nil}
}

// statusForError maps domain errors to HTTP status; ok is false for unexpected errors.
func statusForError(err error) (status int, ok bool) {
	var oor *domain.OutOfRangeError
	switch {
	case errors.As(err, &oor):
		return http.StatusBadRequest, true
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, domain.ErrDuplicateID):
		return http.StatusConflict, true
	case errors.Is(err, service.ErrSummaryDisabled):
		return http.StatusServiceUnavailable, true
	}
	return http.StatusInternalServerError, false
}
