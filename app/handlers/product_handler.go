package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"

	"github.com/grabpoint/api/app/repositories"
	"github.com/grabpoint/api/app/utils/apperrors"
	"github.com/grabpoint/api/app/utils/respond"
)

type ProductHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
}

func NewProductHandler(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, render *render.Render) *ProductHandler {
	return &ProductHandler{productRepo, categoryRepo, render}
}

// List supports ?search= over product and category names, repeatable
// ?category= ids (OR) and ?ordering= price|-price|name|-name.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repositories.ProductFilter{
		Search:      query.Get("search"),
		CategoryIDs: query["category"],
		Ordering:    query.Get("ordering"),
	}

	products, err := h.productRepo.Search(r.Context(), filter)
	if err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		respond.Err(h.render, w, err)
		return
	}
	if product == nil {
		respond.Err(h.render, w, apperrors.NotFoundf("product not found"))
		return
	}

	respond.JSON(h.render, w, http.StatusOK, product)
}

func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusOK, map[string]interface{}{"categories": categories})
}
