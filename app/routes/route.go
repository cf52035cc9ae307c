package routes

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/grabpoint/api/app/configs"
	"github.com/grabpoint/api/app/handlers"
	"github.com/grabpoint/api/app/handlers/admin"
	"github.com/grabpoint/api/app/middlewares"
	"github.com/grabpoint/api/app/repositories"
	"github.com/grabpoint/api/app/services"
	"github.com/grabpoint/api/app/utils/respond"
)

const tokenTTL = 24 * time.Hour

func NewRouter(db *gorm.DB, env configs.ENV, notifier services.Notifier, mailer *services.Mailer) *mux.Router {
	renderer := respond.New()
	validate := validator.New()

	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	printRepo := repositories.NewPrintOrderRepository(db)
	ratingRepo := repositories.NewRatingRepository(db)

	tokens := services.NewTokenService(env.JWTSecret, tokenTTL)
	storage := services.NewDiskStorage(env.MediaRoot)

	authSvc := services.NewAuthService(userRepo, tokens, mailer)
	cartSvc := services.NewCartService(cartRepo, productRepo)
	checkoutSvc := services.NewCheckoutService(db, cartRepo, orderRepo)
	orderSvc := services.NewOrderService(orderRepo, notifier)
	printSvc := services.NewPrintOrderService(db, printRepo, storage, notifier)
	ratingSvc := services.NewRatingService(ratingRepo, productRepo)

	authHandler := handlers.NewAuthHandler(authSvc, renderer, validate)
	productHandler := handlers.NewProductHandler(productRepo, categoryRepo, renderer)
	cartHandler := handlers.NewCartHandler(cartSvc, renderer)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutSvc, renderer)
	orderHandler := handlers.NewOrderHandler(orderSvc, renderer)
	printHandler := handlers.NewPrintOrderHandler(printSvc, renderer)
	ratingHandler := handlers.NewRatingHandler(ratingSvc, renderer)
	orderAdmin := admin.NewOrderAdminHandler(orderSvc, renderer)
	printAdmin := admin.NewPrintOrderAdminHandler(printSvc, renderer)

	router := mux.NewRouter()
	router.Use(middlewares.PrometheusMiddleware)

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.PathPrefix("/media/").Handler(
		http.StripPrefix("/media/", http.FileServer(http.Dir(storage.Root()))),
	).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/forgot-password", authHandler.ForgotPassword).Methods("POST")
	api.HandleFunc("/auth/reset-password", authHandler.ResetPassword).Methods("POST")

	api.HandleFunc("/products", productHandler.List).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.Detail).Methods("GET")
	api.HandleFunc("/categories", productHandler.Categories).Methods("GET")
	api.HandleFunc("/products/{id}/ratings", ratingHandler.List).Methods("GET")
	api.HandleFunc("/products/{id}/ratings/summary", ratingHandler.Summary).Methods("GET")

	authed := api.NewRoute().Subrouter()
	authed.Use(middlewares.AuthMiddleware(tokens, renderer))

	authed.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	authed.HandleFunc("/cart", cartHandler.Get).Methods("GET")
	authed.HandleFunc("/cart/add", cartHandler.Add).Methods("POST")
	authed.HandleFunc("/cart/{id}", cartHandler.Update).Methods("PUT")
	authed.HandleFunc("/cart/{id}", cartHandler.Delete).Methods("DELETE")
	authed.HandleFunc("/checkout", checkoutHandler.Checkout).Methods("POST")
	authed.HandleFunc("/orders", orderHandler.ListMine).Methods("GET")
	authed.HandleFunc("/print-orders", printHandler.Create).Methods("POST")
	authed.HandleFunc("/print-orders", printHandler.ListMine).Methods("GET")
	authed.HandleFunc("/products/{id}/ratings", ratingHandler.Create).Methods("POST")

	operator := authed.PathPrefix("/admin").Subrouter()
	operator.Use(middlewares.AdminMiddleware(renderer))

	operator.HandleFunc("/orders", orderAdmin.List).Methods("GET")
	operator.HandleFunc("/orders/{id}/status", orderAdmin.UpdateStatus).Methods("PUT")
	operator.HandleFunc("/orders/bulk-status", orderAdmin.BulkStatus).Methods("POST")
	operator.HandleFunc("/print-orders", printAdmin.List).Methods("GET")
	operator.HandleFunc("/print-orders/{id}/status", printAdmin.UpdateStatus).Methods("PUT")
	operator.HandleFunc("/print-orders/bulk-status", printAdmin.BulkStatus).Methods("POST")

	return router
}
