package models

// Store identifies the commerce store view a checkout runs under
type Store struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	WebsiteID string `json:"website_id"`
	BaseURL   string `json:"base_url"`
}

// QuoteItem carries the priced line amount of one quote item
type QuoteItem struct {
	Amount string `json:"amount" validate:"required"`
}

// Quote is the checkout quote an order is created from
type Quote struct {
	ID                string      `json:"id"`
	CustomerID        string      `json:"customer_id"`
	CustomerFirstName string      `json:"customer_firstname"`
	CustomerLastName  string      `json:"customer_lastname"`
	CustomerEmail     string      `json:"customer_email"`
	CurrencyCode      string      `json:"currency_code"`
	Items             []QuoteItem `json:"items"`
	BillingAddress    *Address    `json:"billing_address"`
	ShippingAddress   *Address    `json:"shipping_address"`
}

// OrderData is the checkout input to order creation
type OrderData struct {
	Quote         *Quote `json:"quote" validate:"required"`
	QuoteID       string `json:"quote_id"`
	PaymentSource string `json:"payment_source" validate:"required"`
	Vault         bool   `json:"vault"`
	StoreViewCode string `json:"storeview_code"`
	ThreeDSMode   string `json:"three_ds_mode"`
}

// UpdateOrderData is the checkout input to a selective order update. Nil
// fields are not part of the update.
type UpdateOrderData struct {
	Amount          *string  `json:"amount"`
	CurrencyCode    *string  `json:"currency_code"`
	ShippingAddress *Address `json:"shipping_address"`
	Payer           *Payer   `json:"payer"`
}
