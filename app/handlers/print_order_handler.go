package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/unrolled/render"

	"github.com/grabpoint/api/app/middlewares"
	"github.com/grabpoint/api/app/services"
	"github.com/grabpoint/api/app/utils/apperrors"
	"github.com/grabpoint/api/app/utils/respond"
)

const maxUploadBytes = 32 << 20

type PrintOrderHandler struct {
	printSvc *services.PrintOrderService
	render   *render.Render
}

func NewPrintOrderHandler(printSvc *services.PrintOrderService, render *render.Render) *PrintOrderHandler {
	return &PrintOrderHandler{printSvc, render}
}

// Create reads a multipart form: print preference fields plus one or more
// "files" parts.
func (h *PrintOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, _ := middlewares.ClaimsFromContext(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respond.Err(h.render, w, apperrors.Validationf("invalid multipart form"))
		return
	}

	in := services.PrintOrderInput{
		PaperSize:     r.FormValue("paper_size"),
		ColorMode:     r.FormValue("color_mode"),
		PrintSides:    r.FormValue("print_sides"),
		BindingOption: r.FormValue("binding_option"),
		Urgency:       r.FormValue("urgency"),
		Notes:         r.FormValue("notes"),
		PaymentStatus: r.FormValue("payment_status"),
		TransactionID: r.FormValue("transaction_id"),
	}
	if in.PaperSize == "" || in.ColorMode == "" || in.PrintSides == "" {
		respond.Err(h.render, w, apperrors.Validationf("paper_size, color_mode and print_sides are required"))
		return
	}
	if raw := r.FormValue("total_price"); raw != "" {
		total, err := decimal.NewFromString(raw)
		if err != nil {
			respond.Err(h.render, w, apperrors.Validationf("total_price must be a decimal number"))
			return
		}
		in.TotalPrice = total
	}

	order, err := h.printSvc.Create(r.Context(), claims.UserID, in, r.MultipartForm.File["files"])
	if err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusCreated, order)
}

func (h *PrintOrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, _ := middlewares.ClaimsFromContext(r.Context())

	orders, err := h.printSvc.ListByUser(r.Context(), claims.UserID)
	if err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusOK, map[string]interface{}{"print_orders": orders})
}
