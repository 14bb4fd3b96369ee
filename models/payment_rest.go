package models

// Additional-information keys recorded against a payment after a successful
// checkout submission. The allow-listed keys correlate the commerce payment
// with the gateway order; the Fastlane token is encrypted before it is stored.
const (
	KeyPaymentsOrderID       = "payments_order_id"
	KeyPayPalOrderID         = "paypal_order_id"
	KeyPaymentSource         = "payment_source"
	KeyPayPalFastlaneProfile = "paypal_fastlane_profile"
	KeyPayPalFastlaneToken   = "paypal_fastlane_token"
	KeyPaymentsMode          = "payments_mode"
)

// IncomingAdditionalDataRequest is the body of the save-additional-data
// request raised by the host platform when a payment method is assigned.
type IncomingAdditionalDataRequest struct {
	Store          Store             `json:"store" validate:"required"`
	AdditionalData map[string]string `json:"additional_data"`
}

// PaymentAdditionalDataRest is the public view of the additional information
// held against a payment.
type PaymentAdditionalDataRest struct {
	PaymentID      string            `json:"payment_id"`
	AdditionalData map[string]string `json:"additional_data"`
}
