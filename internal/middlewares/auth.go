package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/nature-connect/market-backend/internal/handlerutils"
	"github.com/nature-connect/market-backend/internal/servererrors"
)

// RequireAdminKey gates a handler behind the shared admin secret. The key is
// read from the x-api-key header first, then the apiKey query parameter.
func (mw *middleware) RequireAdminKey(h handlerutils.APIHandler) handlerutils.APIHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		apiKey := r.Header.Get("x-api-key")
		if apiKey == "" {
			apiKey = r.URL.Query().Get("apiKey")
		}

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(mw.adminAPIKey)) != 1 {
			return servererrors.ErrUnauthorized
		}

		return h(w, r)
	}
}
