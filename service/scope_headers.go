package service

import "github.com/commercekit/paypal-checkout-api/models"

// Headers attached to gateway order calls. The scope headers identify the
// store/tenant on the gateway's multi-tenant API; the customer and quote
// headers are conditional per call.
const (
	headerContentType = "Content-Type"

	// HeaderCustomerID is attached when the request is a vaulted customer payment
	HeaderCustomerID = "x-commerce-customer-id"

	// HeaderQuoteID is attached when a quote identifier is present
	HeaderQuoteID = "x-commerce-quote-id"

	headerScopeType     = "x-scope-type"
	headerScopeID       = "x-scope-id"
	headerStoreViewCode = "x-store-view-code"
)

// buildScopeHeaders derives the tenant identification headers from the full
// store context. Resolved per call, never cached.
func buildScopeHeaders(store *models.Store) map[string]string {
	headers := map[string]string{headerScopeType: "website"}
	if store != nil {
		if store.WebsiteID != "" {
			headers[headerScopeID] = store.WebsiteID
		}
		if store.Code != "" {
			headers[headerStoreViewCode] = store.Code
		}
	}
	return headers
}

// buildScopeHeadersForStoreID derives the tenant identification headers when
// only a store id is known.
func buildScopeHeadersForStoreID(storeID string) map[string]string {
	return map[string]string{
		headerScopeType: "store",
		headerScopeID:   storeID,
	}
}

// mergeHeaders merges the JSON content type with the given scope headers
func mergeHeaders(scopeHeaders map[string]string) map[string]string {
	headers := map[string]string{headerContentType: "application/json"}
	for key, value := range scopeHeaders {
		headers[key] = value
	}
	return headers
}
