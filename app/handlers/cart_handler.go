package handlers

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

type CartHandler struct {
	cartSvc *services.CartService
	render  *render.Render
}

func NewCartHandler(cartSvc *services.CartService, render *render.Render) *CartHandler {
	return &CartHandler{cartSvc, render}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, _ := middlewares.ClaimsFromContext(r.Context())

	items, total, err := h.cartSvc.ListActive(r.Context(), claims.UserID)
	if err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusOK, map[string]interface{}{
		"cart_items":       items,
		"total_cart_price": total,
	})
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims, _ := middlewares.ClaimsFromContext(r.Context())

	var in struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Err(h.render, w, apperrors.Validationf("invalid request body"))
		return
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	item, err := h.cartSvc.AddItem(r.Context(), claims.UserID, in.ProductID, in.Quantity)
	if err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusCreated, item)
}

func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, _ := middlewares.ClaimsFromContext(r.Context())
	id := mux.Vars(r)["id"]

	var in struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Err(h.render, w, apperrors.Validationf("invalid request body"))
		return
	}

	item, err := h.cartSvc.UpdateQuantity(r.Context(), claims.UserID, id, in.Quantity)
	if err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusOK, item)
}

func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, _ := middlewares.ClaimsFromContext(r.Context())
	id := mux.Vars(r)["id"]

	if err := h.cartSvc.RemoveItem(r.Context(), claims.UserID, id); err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusOK, map[string]string{"message": "cart item removed"})
}
