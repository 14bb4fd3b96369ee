package handlers

import (
	"net/http"

	"github.com/commercekit/paypal-checkout-api/models"
	"github.com/commercekit/paypal-checkout-api/utils"
)

// HandleGetCheckoutConfig returns the checkout-time configuration fragment
// consumed by the storefront payment widgets. The store context arrives as
// query parameters because the storefront calls this before any session
// exists.
func HandleGetCheckoutConfig(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()

	store := &models.Store{
		ID:        query.Get("store_id"),
		Code:      query.Get("store_code"),
		WebsiteID: query.Get("website_id"),
		BaseURL:   query.Get("base_url"),
	}

	checkoutConfig := fastlaneService.GetCheckoutConfig(store, query.Get("currency"))

	utils.WriteJSONWithStatus(w, req, checkoutConfig, http.StatusOK)
}
