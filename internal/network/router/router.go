package router

import (
	"github.com/denmor86/ya-shop/internal/config"
	"github.com/denmor86/ya-shop/internal/metrics"
	"github.com/denmor86/ya-shop/internal/network/handlers"
	"github.com/denmor86/ya-shop/internal/network/middleware"
	"github.com/denmor86/ya-shop/internal/services"
	"github.com/go-chi/chi/v5"
)

type Router struct {
	Config   config.Config
	Products services.ProductsService
	Orders   services.OrdersService
}

func NewRouter(config config.Config, products services.ProductsService, orders services.OrdersService) *Router {
	return &Router{
		Config:   config,
		Products: products,
		Orders:   orders,
	}
}

func (router *Router) HandleRouter() chi.Router {
	r := chi.NewRouter()
	r.Handle("/metrics", metrics.Handler())
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Use(middleware.MetricsHandle)
		r.Route("/products", func(r chi.Router) {
			r.Get("/", handlers.GetProductsHandler(router.Products))
			r.Get("/{id}", handlers.GetProductHandler(router.Products))
		})
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", handlers.CreateOrderHandler(router.Orders))
			r.Get("/{id}", handlers.GetOrderHandler(router.Orders))
		})
		r.Route("/admin", func(r chi.Router) {
			r.Post("/products", handlers.AddProductHandler(router.Products))
			r.Put("/products/{id}/discount", handlers.SetDiscountHandler(router.Products))
			r.Delete("/products/{id}/discount", handlers.RemoveDiscountHandler(router.Products))
			r.Get("/orders", handlers.GetOrdersHandler(router.Orders))
			r.Post("/orders/{id}/accept", handlers.AcceptOrderHandler(router.Orders))
			r.Post("/orders/{id}/reject", handlers.RejectOrderHandler(router.Orders))
		})
	})
	return r
}
