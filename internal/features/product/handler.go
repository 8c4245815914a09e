package product

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/nature-connect/market-backend/internal/handlerutils"
	"github.com/nature-connect/market-backend/internal/servererrors"
)

type servicer interface {
	Create(ctx context.Context, draft *CreateProductRequest) (*Product, error)
	List(ctx context.Context) ([]Product, error)
}

type middleware interface {
	RequireAdminKey(h handlerutils.APIHandler) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(productService servicer, middleware middleware) *handler {
	return &handler{
		service:    productService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Get(
		"/products",
		handlerutils.MakeHandler(
			h.listProductsHandler,
		),
	)

	// protected route
	router.Post(
		"/products",
		handlerutils.MakeHandler(
			h.middleware.RequireAdminKey(
				h.createProductHandler,
			),
		),
	)
}

func (h *handler) listProductsHandler(w http.ResponseWriter, r *http.Request) error {
	products, err := h.service.List(r.Context())
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(
		w,
		http.StatusOK,
		products,
	)
}

func (h *handler) createProductHandler(w http.ResponseWriter, r *http.Request) error {
	var draft CreateProductRequest
	defer r.Body.Close()

	if err := handlerutils.ParseJSON(r, &draft); err != nil {
		// A wrong-typed field decodes as unset and is judged by validation,
		// mirroring the loose payloads admin scripts actually send. Anything
		// worse than a type mismatch is a malformed body.
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return servererrors.ErrInvalidRequestPayload
		}
	}

	created, err := h.service.Create(r.Context(), &draft)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(
		w,
		http.StatusCreated,
		created,
	)
}
