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

type PrintOrderAdminHandler struct {
	printSvc *services.PrintOrderService
	render   *render.Render
}

func NewPrintOrderAdminHandler(printSvc *services.PrintOrderService, render *render.Render) *PrintOrderAdminHandler {
	return &PrintOrderAdminHandler{printSvc, render}
}

func (h *PrintOrderAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.printSvc.ListAll(r.Context())
	if err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusOK, map[string]interface{}{"print_orders": orders})
}

func (h *PrintOrderAdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var in struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Err(h.render, w, apperrors.Validationf("invalid request body"))
		return
	}

	order, err := h.printSvc.UpdateStatus(r.Context(), id, in.Status)
	if err != nil {
		middlewares.RecordOrderOperation("print_order_status_update", false)
		respond.Err(h.render, w, err)
		return
	}
	middlewares.RecordOrderOperation("print_order_status_update", true)

	respond.JSON(h.render, w, http.StatusOK, order)
}

func (h *PrintOrderAdminHandler) BulkStatus(w http.ResponseWriter, r *http.Request) {
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

	updated, err := h.printSvc.BulkUpdateStatus(r.Context(), in.IDs, in.Status)
	if err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusOK, map[string]interface{}{"updated": updated})
}
