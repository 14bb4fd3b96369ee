// Package handlers exposes the checkout HTTP surface and wires the services
// behind it.
package handlers

import (
	"net/http"

	"github.com/commercekit/paypal-checkout-api/client"
	"github.com/commercekit/paypal-checkout-api/config"
	"github.com/commercekit/paypal-checkout-api/dao"
	"github.com/commercekit/paypal-checkout-api/helpers"
	"github.com/commercekit/paypal-checkout-api/interceptors"
	"github.com/commercekit/paypal-checkout-api/service"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

var orderService *service.OrderService
var fastlaneService *service.FastlaneConfigService
var additionalDataService *service.AdditionalDataService

// Register defines the route mappings for the main router and its subrouters
func Register(mainRouter *mux.Router, cfg *config.Config) {
	orderService = &service.OrderService{
		Client: client.NewHTTPClient(cfg),
		Config: cfg,
	}

	fastlaneService = &service.FastlaneConfigService{
		Config: cfg,
	}

	additionalDataService = &service.AdditionalDataService{
		DAO:       dao.NewDAO(cfg),
		Encryptor: helpers.NewAESGCMEncryptor(cfg.EncryptionKey),
		Config:    cfg,
	}

	checkoutAuth := &interceptors.CheckoutAuthenticationInterceptor{
		Config: cfg,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// The config endpoint is called by the storefront before any checkout
	// session exists, so it only gets the logging middleware.
	configRouter := mainRouter.PathPrefix("/checkout/paypal/config").Subrouter()
	configRouter.HandleFunc("", HandleGetCheckoutConfig).Methods("GET").Name("get-checkout-config")

	orderRouter := mainRouter.PathPrefix("/checkout/paypal/order").Subrouter()
	orderRouter.HandleFunc("", HandleCreateOrder).Methods("POST").Name("create-order")
	orderRouter.HandleFunc("/{order_id}", HandleGetOrder).Methods("GET").Name("get-order")
	orderRouter.HandleFunc("/{order_id}", HandleUpdateOrder).Methods("PATCH").Name("update-order")
	orderRouter.HandleFunc("/{order_id}/tracking", HandleTrackOrder).Methods("POST").Name("track-order")
	orderRouter.HandleFunc("/{order_id}/commerce-address", HandleGetCommerceAddress).Methods("GET").Name("get-commerce-address")

	paymentRouter := mainRouter.PathPrefix("/checkout/paypal/payment/{payment_id}/additional-data").Subrouter()
	paymentRouter.HandleFunc("", HandleSaveAdditionalData).Methods("POST").Name("save-additional-data")
	paymentRouter.HandleFunc("", HandleGetAdditionalData).Methods("GET").Name("get-additional-data")

	configRouter.Use(log.Handler)
	orderRouter.Use(log.Handler, checkoutAuth.CheckoutAuthenticationIntercept)
	paymentRouter.Use(log.Handler, checkoutAuth.CheckoutAuthenticationIntercept)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
