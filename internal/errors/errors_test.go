package errors_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/agencydesk/go-dealer-admin/internal/errors"
)

func TestStatusError(t *testing.T) {
	t.Run("detail is the message", func(t *testing.T) {
		err := &apperrors.StatusError{Status: http.StatusNotFound, Detail: "Agency not found"}
		require.Equal(t, "Agency not found", err.Error())
	})

	t.Run("falls back to the status text", func(t *testing.T) {
		err := &apperrors.StatusError{Status: http.StatusBadGateway}
		require.Equal(t, "Bad Gateway", err.Error())
	})

	t.Run("status mapping", func(t *testing.T) {
		require.ErrorIs(t, &apperrors.StatusError{Status: 401}, apperrors.ErrUnauthenticated)
		require.ErrorIs(t, &apperrors.StatusError{Status: 404}, apperrors.ErrNotFound)
		require.ErrorIs(t, &apperrors.StatusError{Status: 422}, apperrors.ErrValidation)
		require.ErrorIs(t, &apperrors.StatusError{Status: 400}, apperrors.ErrValidation)
		require.ErrorIs(t, &apperrors.StatusError{Status: 500}, apperrors.ErrInternal)
	})
}

func TestWrapf(t *testing.T) {
	require.NoError(t, apperrors.Wrapf(nil, "ignored"))

	wrapped := apperrors.Wrapf(apperrors.ErrNetwork, "GET /api/agencies")
	require.ErrorIs(t, wrapped, apperrors.ErrNetwork)
	require.Contains(t, wrapped.Error(), "GET /api/agencies")
}
