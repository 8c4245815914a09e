package order

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
	Submit(ctx context.Context, req *SubmitOrderRequest) (*Order, error)
}

type handler struct {
	service servicer
}

func NewHandler(orderService servicer) *handler {
	return &handler{
		service: orderService,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Post(
		"/orders",
		handlerutils.MakeHandler(
			h.submitOrderHandler,
		),
	)
}

func (h *handler) submitOrderHandler(w http.ResponseWriter, r *http.Request) error {
	var req SubmitOrderRequest
	defer r.Body.Close()

	if err := handlerutils.ParseJSON(r, &req); err != nil {
		// items of the wrong shape decode as absent and fall through to the
		// "Order must include items" rejection below
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return servererrors.ErrInvalidRequestPayload
		}
	}

	submitted, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(
		w,
		http.StatusCreated,
		SubmitOrderResponse{
			OK:    true,
			Order: submitted,
		},
	)
}
