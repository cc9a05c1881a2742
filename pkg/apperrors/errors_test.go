package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := InternalError(cause)

	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
	assert.True(t, errors.Is(appErr, cause))

	var unwrapped *AppError
	require.True(t, errors.As(error(appErr), &unwrapped))
	assert.Equal(t, CodeInternalError, unwrapped.Code)
}

func TestMarshalHidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("secret detail"), CodeNotFound, "party", "Party not found", http.StatusNotFound)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secret detail")
	assert.NotContains(t, string(raw), "404")
	assert.Contains(t, string(raw), "Party not found")
}

func TestFactoryStatusCodes(t *testing.T) {
	cases := []struct {
		err  *AppError
		code int
	}{
		{ErrNotFound(nil, "party", "missing"), http.StatusNotFound},
		{ErrAlreadyExists(nil, "auth", "duplicate"), http.StatusConflict},
		{ErrConflict(nil, "reaction", "busy"), http.StatusConflict},
		{NewUnauthorizedError("no"), http.StatusUnauthorized},
		{NewForbiddenError("no"), http.StatusForbidden},
		{NewBadRequestError("bad"), http.StatusBadRequest},
		{ServiceUnavailable(nil), http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.HTTPCode, tc.err.Message)
	}
}
