package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"breadlab/internal/cart"
	"breadlab/internal/catalog"
	"breadlab/internal/checkout"
	"breadlab/internal/pickup"
)

func NewRouter(
	catalogCtrl *catalog.Controller,
	cartCtrl *cart.Controller,
	watchHub *cart.WatchHub,
	pickupCtrl *pickup.Controller,
	checkoutCtrl *checkout.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(CORS)

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "/api/create-checkout" {
			w.Header().Set("Allow", "POST")
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	r.Get("/api/products", catalogCtrl.HandleListProducts)
	r.Get("/api/pickup-windows", pickupCtrl.HandleListWindows)

	r.Route("/api/carts/{cartID}", func(r chi.Router) {
		r.Get("/", cartCtrl.HandleGetCart)
		r.Delete("/", cartCtrl.HandleClearCart)
		r.Post("/items", cartCtrl.HandleAddItem)
		r.Delete("/items/{index}", cartCtrl.HandleRemoveItem)
		r.Get("/watch", watchHub.HandleWatch)
	})

	r.Post("/api/create-checkout", checkoutCtrl.HandleCreateCheckout)

	return r
}
