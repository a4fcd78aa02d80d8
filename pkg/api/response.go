package api

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"rigtrack/pkg/apperrors"
)

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Body    T      `json:"body,omitempty"`
}

type ListBody[T any] struct {
	List       []T             `json:"list"`
	Pagination *PaginationMeta `json:"pagination"`
}

type PaginationMeta struct {
	TotalCount uint64 `json:"total_count"`
	TotalPages int    `json:"total_pages"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
}

func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

func SuccessList[T any](c echo.Context, message string, list []T, total uint64, limit, offset int) error {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + uint64(limit) - 1) / uint64(limit))
	}

	if list == nil {
		list = make([]T, 0)
	}

	body := ListBody[T]{
		List: list,
		Pagination: &PaginationMeta{
			TotalCount: total,
			TotalPages: totalPages,
			Limit:      limit,
			Offset:     offset,
		},
	}

	return c.JSON(http.StatusOK, Response[ListBody[T]]{
		Status:  true,
		Message: message,
		Body:    body,
	})
}

// ErrorResponse maps service errors to HTTP statuses. Domain rule
// violations land on 409, input problems on 422, unknown records on 404.
func ErrorResponse(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	msg := "internal server error"

	var (
		httpErr       *apperrors.HttpError
		validationErr *apperrors.ValidationError
		transitionErr *apperrors.InvalidTransitionError
		stateErr      *apperrors.InvalidStateError
		capacityErr   *apperrors.CapacityError
	)

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		msg = httpErr.Message
	case errors.As(err, &validationErr):
		code = http.StatusUnprocessableEntity
		msg = validationErr.Message
	case errors.As(err, &transitionErr):
		code = http.StatusConflict
		msg = transitionErr.Error()
	case errors.As(err, &stateErr):
		code = http.StatusConflict
		msg = stateErr.Error()
	case errors.As(err, &capacityErr):
		code = http.StatusConflict
		msg = capacityErr.Error()
	case errors.Is(err, apperrors.ErrHasInspectionHistory), errors.Is(err, apperrors.ErrStatusConflict):
		code = http.StatusConflict
		msg = err.Error()
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, pgx.ErrNoRows):
		code = http.StatusNotFound
		msg = "record not found"
	case errors.Is(err, apperrors.ErrBadRequest):
		code = http.StatusBadRequest
		msg = err.Error()
	}

	return c.JSON(code, Response[any]{
		Status:  false,
		Message: msg,
	})
}
