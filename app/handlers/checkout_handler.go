package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/unrolled/render"

	"github.com/grabpoint/api/app/middlewares"
	"github.com/grabpoint/api/app/services"
	"github.com/grabpoint/api/app/utils/apperrors"
	"github.com/grabpoint/api/app/utils/respond"
)

type CheckoutHandler struct {
	checkoutSvc *services.CheckoutService
	render      *render.Render
}

func NewCheckoutHandler(checkoutSvc *services.CheckoutService, render *render.Render) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc, render}
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	claims, _ := middlewares.ClaimsFromContext(r.Context())

	var in services.CheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Err(h.render, w, apperrors.Validationf("invalid request body"))
		return
	}

	order, err := h.checkoutSvc.Checkout(r.Context(), claims.UserID, in)
	if err != nil {
		middlewares.RecordOrderOperation("checkout", false)
		respond.Err(h.render, w, err)
		return
	}
	middlewares.RecordOrderOperation("checkout", true)

	respond.JSON(h.render, w, http.StatusCreated, order)
}
