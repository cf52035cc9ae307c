package admin

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"

	"github.com/grabpoint/api/app/middlewares"
	"github.com/grabpoint/api/app/services"
	"github.com/grabpoint/api/app/utils/apperrors"
	"github.com/grabpoint/api/app/utils/respond"
)

type OrderAdminHandler struct {
	orderSvc *services.OrderService
	render   *render.Render
}

func NewOrderAdminHandler(orderSvc *services.OrderService, render *render.Render) *OrderAdminHandler {
	return &OrderAdminHandler{orderSvc, render}
}

func (h *OrderAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.ListAll(r.Context())
	if err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusOK, map[string]interface{}{"orders": orders})
}

func (h *OrderAdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var in struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Err(h.render, w, apperrors.Validationf("invalid request body"))
		return
	}

	order, err := h.orderSvc.UpdateStatus(r.Context(), id, in.Status)
	if err != nil {
		middlewares.RecordOrderOperation("order_status_update", false)
		respond.Err(h.render, w, err)
		return
	}
	middlewares.RecordOrderOperation("order_status_update", true)

	respond.JSON(h.render, w, http.StatusOK, order)
}

// BulkStatus applies the single-order transition to every id; each changed
// order emits its own notification.
func (h *OrderAdminHandler) BulkStatus(w http.ResponseWriter, r *http.Request) {
	var in struct {
		IDs    []string `json:"ids"`
		Status string   `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Err(h.render, w, apperrors.Validationf("invalid request body"))
		return
	}
	if len(in.IDs) == 0 {
		respond.Err(h.render, w, apperrors.Validationf("ids are required"))
		return
	}

	updated, err := h.orderSvc.BulkUpdateStatus(r.Context(), in.IDs, in.Status)
	if err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusOK, map[string]interface{}{"updated": updated})
}
