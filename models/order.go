package models

// OutgoingCreateOrderRequest is the gateway order creation body
type OutgoingCreateOrderRequest struct {
	Payer           *Payer          `json:"payer,omitempty"`
	BillingAddress  *GatewayAddress `json:"billing_address,omitempty"`
	ShippingAddress *GatewayAddress `json:"shipping_address,omitempty"`
	Amount          string          `json:"amount"`
	CurrencyCode    string          `json:"currency_code"`
	Vault           bool            `json:"vault"`
	PaymentSource   string          `json:"payment_source"`
	QuoteID         string          `json:"quote_id,omitempty"`
	StoreViewCode   string          `json:"storeview_code,omitempty"`
	WebsiteID       string          `json:"website_id,omitempty"`
	ThreeDSMode     string          `json:"three_ds_mode,omitempty"`
}

// OutgoingUpdateOrderRequest is the gateway selective order update body.
// Only fields the caller supplied are serialised; the gateway merges the
// body onto the existing order.
type OutgoingUpdateOrderRequest struct {
	Payer           *Payer          `json:"payer,omitempty"`
	Amount          *string         `json:"amount,omitempty"`
	CurrencyCode    *string         `json:"currency_code,omitempty"`
	ShippingAddress *GatewayAddress `json:"shipping_address,omitempty"`
}

// TrackingInfo is the shipment tracking body attached to a gateway order
type TrackingInfo struct {
	TrackingNumber string `json:"tracking_number" validate:"required"`
	Carrier        string `json:"carrier" validate:"required"`
	CarrierName    string `json:"carrier_name,omitempty"`
	CaptureID      string `json:"capture_id,omitempty"`
	NotifyPayer    bool   `json:"notify_payer"`
}

// PayPalOrderDetails is the gateway's view of the underlying PayPal order,
// as embedded in the response envelope
type PayPalOrderDetails struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"`
	Amount          string          `json:"amount"`
	CurrencyCode    string          `json:"currency_code"`
	Payer           *Payer          `json:"payer,omitempty"`
	ShippingAddress *GatewayAddress `json:"shipping-address,omitempty"`
	BillingAddress  *GatewayAddress `json:"billing-address,omitempty"`
}

// OrderResponse is the gateway response envelope shared by all order
// operations
type OrderResponse struct {
	IsSuccessful bool                `json:"is_successful"`
	ID           string              `json:"id,omitempty"`
	Status       string              `json:"status,omitempty"`
	PayPalOrder  *PayPalOrderDetails `json:"paypal-order,omitempty"`
	Message      string              `json:"message,omitempty"`
}
