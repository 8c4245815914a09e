package handlerutils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nature-connect/market-backend/internal/servererrors"
)

func TestMakeHandler_mapsServerError(t *testing.T) {
	handler := MakeHandler(
		func(w http.ResponseWriter, r *http.Request) error {
			return servererrors.ErrNoValidItems
		},
	)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"No valid items in order"}`, rec.Body.String())
}

func TestMakeHandler_unexpectedErrorBecomesOpaqueInternal(t *testing.T) {
	handler := MakeHandler(
		func(w http.ResponseWriter, r *http.Request) error {
			return errors.New("disk on fire")
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"something went wrong"}`, rec.Body.String())
	require.NotContains(t, rec.Body.String(), "disk on fire")
}

func TestMakeHandler_successWritesNothingExtra(t *testing.T) {
	handler := MakeHandler(
		func(w http.ResponseWriter, r *http.Request) error {
			return WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true}`, rec.Body.String())
}
