package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rigtrack/pkg/apperrors"
)

func record(t *testing.T, err error) (*httptest.ResponseRecorder, Response[any]) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ErrorResponse(c, err))

	var body Response[any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestErrorResponseMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", apperrors.NewValidationError("bad input"), http.StatusUnprocessableEntity},
		{"invalid transition", &apperrors.InvalidTransitionError{From: "DESTROYED", To: "ACTIVE"}, http.StatusConflict},
		{"invalid state", &apperrors.InvalidStateError{Op: "record inspection", Status: "DESTROYED"}, http.StatusConflict},
		{"capacity", &apperrors.CapacityError{TypeCode: "D"}, http.StatusConflict},
		{"inspection history", apperrors.ErrHasInspectionHistory, http.StatusConflict},
		{"status conflict", apperrors.ErrStatusConflict, http.StatusConflict},
		{"not found", apperrors.ErrNotFound, http.StatusNotFound},
		{"http error passthrough", apperrors.NewHttpError(http.StatusBadRequest, "nope", nil, nil), http.StatusBadRequest},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := record(t, tc.err)
			assert.Equal(t, tc.code, rec.Code)
			assert.False(t, body.Status)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestErrorResponseHidesInternalDetail(t *testing.T) {
	_, body := record(t, assert.AnError)
	assert.Equal(t, "internal server error", body.Message)
}
