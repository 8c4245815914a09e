package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nature-connect/market-backend/internal/servererrors"
)

func TestRequireAdminKey(t *testing.T) {
	mw := NewMiddleware("devkey")

	var reachedHandler bool
	protected := mw.RequireAdminKey(func(w http.ResponseWriter, r *http.Request) error {
		reachedHandler = true
		return nil
	})

	tests := []struct {
		name     string
		header   string
		query    string
		wantPass bool
	}{
		{name: "valid header key", header: "devkey", wantPass: true},
		{name: "valid query key", query: "devkey", wantPass: true},
		{name: "header wins over query", header: "devkey", query: "wrong", wantPass: true},
		{name: "missing key", wantPass: false},
		{name: "wrong header key", header: "wrong", wantPass: false},
		{name: "wrong query key", query: "wrong", wantPass: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reachedHandler = false

			target := "/api/products"
			if tt.query != "" {
				target += "?apiKey=" + tt.query
			}

			req := httptest.NewRequest(http.MethodPost, target, nil)
			if tt.header != "" {
				req.Header.Set("x-api-key", tt.header)
			}

			err := protected(httptest.NewRecorder(), req)

			if tt.wantPass {
				require.NoError(t, err)
				require.True(t, reachedHandler)
				return
			}

			require.ErrorIs(t, err, servererrors.ErrUnauthorized)
			require.False(t, reachedHandler)
		})
	}
}
