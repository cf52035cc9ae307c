package handlers

import (
	"net/http"

	"github.com/unrolled/render"

	"github.com/grabpoint/api/app/middlewares"
	"github.com/grabpoint/api/app/services"
	"github.com/grabpoint/api/app/utils/respond"
)

type OrderHandler struct {
	orderSvc *services.OrderService
	render   *render.Render
}

func NewOrderHandler(orderSvc *services.OrderService, render *render.Render) *OrderHandler {
	return &OrderHandler{orderSvc, render}
}

func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, _ := middlewares.ClaimsFromContext(r.Context())

	orders, err := h.orderSvc.ListByUser(r.Context(), claims.UserID)
	if err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusOK, map[string]interface{}{"orders": orders})
}
