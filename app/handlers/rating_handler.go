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

type RatingHandler struct {
	ratingSvc *services.RatingService
	render    *render.Render
}

func NewRatingHandler(ratingSvc *services.RatingService, render *render.Render) *RatingHandler {
	return &RatingHandler{ratingSvc, render}
}

func (h *RatingHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, _ := middlewares.ClaimsFromContext(r.Context())
	productID := mux.Vars(r)["id"]

	var in struct {
		Score   int    `json:"score"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Err(h.render, w, apperrors.Validationf("invalid request body"))
		return
	}

	rating, err := h.ratingSvc.Create(r.Context(), claims.UserID, productID, in.Score, in.Comment)
	if err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusCreated, rating)
}

func (h *RatingHandler) List(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	ratings, err := h.ratingSvc.ListByProduct(r.Context(), productID)
	if err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusOK, map[string]interface{}{"ratings": ratings})
}

func (h *RatingHandler) Summary(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	summary, err := h.ratingSvc.Summary(r.Context(), productID)
	if err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusOK, summary)
}
