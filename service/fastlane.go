package service

import (
	"net/url"
	"strings"

	"github.com/commercekit/paypal-checkout-api/builders"
	"github.com/commercekit/paypal-checkout-api/config"
	"github.com/commercekit/paypal-checkout-api/models"
	"github.com/plutov/paypal/v4"
)

const (
	// FastlaneCode is the payment-method code the config fragment is keyed by
	FastlaneCode = "payment_services_paypal_fastlane"

	// FastlanePaymentSource discriminates Fastlane orders on the gateway
	FastlanePaymentSource = "fastlane"

	fastlaneLocation = "checkout_fastlane"
	checkoutLocation = "checkout"
)

// FastlaneConfigService assembles the checkout-time configuration fragment
// consumed by the frontend Fastlane widget. Pure assembly: no network or
// persistence side effects.
type FastlaneConfigService struct {
	Config *config.Config
}

// GetCheckoutConfig returns the Fastlane config fragment for a store. When
// the base gateway integration is unconfigured or Fastlane is disabled the
// fragment only flags the widget invisible, regardless of any other setting.
func (s *FastlaneConfigService) GetCheckoutConfig(store *models.Store, currencyCode string) models.CheckoutConfig {
	if !s.Config.IsConfigured() || !s.Config.FastlaneEnabled {
		return models.CheckoutConfig{
			FastlaneCode: {IsVisible: false},
		}
	}

	options := builders.NewPaymentOptionsBuilder().
		SetCurrency(currencyCode).
		SetIntent(paypal.OrderIntentCapture).
		SetPageType(checkoutLocation).
		SetIsFastlaneEnabled(true)

	// The root domain scopes the gateway's cross-subdomain Fastlane session
	if rootDomain := storeRootDomain(store); rootDomain != "" {
		options.SetDomains([]string{rootDomain})
	}

	return models.CheckoutConfig{
		FastlaneCode: {
			IsVisible:          true,
			Location:           checkoutLocation,
			SdkParams:          options.Build(FastlaneCode, fastlaneLocation),
			PaymentSource:      FastlanePaymentSource,
			Messaging:          s.Config.FastlaneMessaging,
			Styling:            s.Config.FastlaneStyles(),
			CreateOrderURL:     s.Config.CheckoutWebURL + "/checkout/paypal/order",
			PaymentTypeIconURL: s.Config.CheckoutWebURL + "/static/images/cc_icon.png",
		},
	}
}

// storeRootDomain extracts the root domain from the store base URL, e.g.
// "example.com" from "https://sub.shop.example.com/uk".
func storeRootDomain(store *models.Store) string {
	if store == nil {
		return ""
	}

	parsed, err := url.Parse(store.BaseURL)
	if err != nil {
		return ""
	}

	host := parsed.Hostname()
	if host == "" {
		return ""
	}

	return rootDomain(host)
}

// rootDomain joins the last two dot-separated labels of a host, or returns
// the host unchanged when it has fewer than two.
func rootDomain(host string) string {
	parts := strings.Split(host, ".")
	count := len(parts)

	if count >= 2 {
		return parts[count-2] + "." + parts[count-1]
	}

	return host
}
