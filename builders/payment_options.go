package builders

import (
	"github.com/commercekit/paypal-checkout-api/models"
)

// PaymentOptionsBuilder accumulates the gateway SDK script parameters for a
// storefront payment widget.
type PaymentOptionsBuilder struct {
	currency          string
	intent            string
	pageType          string
	isFastlaneEnabled bool
	domains           []string
}

// NewPaymentOptionsBuilder returns an empty builder
func NewPaymentOptionsBuilder() *PaymentOptionsBuilder {
	return &PaymentOptionsBuilder{}
}

// SetCurrency sets the checkout currency code
func (b *PaymentOptionsBuilder) SetCurrency(currency string) *PaymentOptionsBuilder {
	b.currency = currency
	return b
}

// SetIntent sets the order intent passed to the SDK
func (b *PaymentOptionsBuilder) SetIntent(intent string) *PaymentOptionsBuilder {
	b.intent = intent
	return b
}

// SetPageType sets the storefront page the SDK loads on
func (b *PaymentOptionsBuilder) SetPageType(pageType string) *PaymentOptionsBuilder {
	b.pageType = pageType
	return b
}

// SetIsFastlaneEnabled flags the SDK for the Fastlane flow
func (b *PaymentOptionsBuilder) SetIsFastlaneEnabled(enabled bool) *PaymentOptionsBuilder {
	b.isFastlaneEnabled = enabled
	return b
}

// SetDomains scopes the gateway's cross-subdomain session to the given
// domains.
func (b *PaymentOptionsBuilder) SetDomains(domains []string) *PaymentOptionsBuilder {
	b.domains = domains
	return b
}

// Build renders the SDK params fragment for the given payment-method code and
// placement location.
func (b *PaymentOptionsBuilder) Build(code, location string) *models.SdkParams {
	return &models.SdkParams{
		Code:              code,
		Location:          location,
		Currency:          b.currency,
		Intent:            b.intent,
		PageType:          b.pageType,
		IsFastlaneEnabled: b.isFastlaneEnabled,
		Domains:           b.domains,
	}
}
