package models

// SdkParams holds the gateway SDK script parameters computed for the
// storefront widget.
type SdkParams struct {
	Code              string   `json:"code"`
	Location          string   `json:"location"`
	Currency          string   `json:"currency,omitempty"`
	Intent            string   `json:"intent,omitempty"`
	IsFastlaneEnabled bool     `json:"isFastlaneEnabled"`
	Domains           []string `json:"domains,omitempty"`
	PageType          string   `json:"pageType,omitempty"`
}

// FastlaneConfig is the checkout-time configuration fragment consumed by the
// frontend Fastlane widget. When the base integration is unconfigured or the
// feature is disabled only IsVisible is populated.
type FastlaneConfig struct {
	IsVisible          bool              `json:"isVisible"`
	Location           string            `json:"location,omitempty"`
	SdkParams          *SdkParams        `json:"sdkParams,omitempty"`
	PaymentSource      string            `json:"paymentSource,omitempty"`
	Messaging          bool              `json:"messaging,omitempty"`
	Styling            map[string]string `json:"styling,omitempty"`
	CreateOrderURL     string            `json:"createOrderUrl,omitempty"`
	PaymentTypeIconURL string            `json:"paymentTypeIconUrl,omitempty"`
}

// CheckoutConfig is the config payload keyed by payment-method code
type CheckoutConfig map[string]FastlaneConfig
