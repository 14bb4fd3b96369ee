package main

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/commercekit/paypal-checkout-api/config"
	"github.com/commercekit/paypal-checkout-api/handlers"

	"github.com/gorilla/mux"
)

func main() {
	log.Namespace = "paypal-checkout-api"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		return
	}

	router := mux.NewRouter()
	handlers.Register(router, cfg)

	log.Info("Starting paypal-checkout-api service")
	err = http.ListenAndServe(cfg.BindAddr, router)

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting paypal-checkout-api service")
}
