// Package builders assembles the gateway order request bodies and the SDK
// script parameters from checkout input. All builders are pure and
// deterministic; malformed input surfaces as a data-validation error, never
// as a builder-internal fault.
package builders

import (
	"fmt"
	"regexp"

	"github.com/commercekit/paypal-checkout-api/mappers"
	"github.com/commercekit/paypal-checkout-api/models"
	"github.com/shopspring/decimal"
)

var amountFormat = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// BuildCreateRequestBody constructs the full order creation payload. The
// payer is customer-linked when the quote carries a customer id, otherwise a
// guest payer is derived from the billing address. Addresses without a
// country are omitted entirely rather than sent as empty objects.
func BuildCreateRequestBody(data *models.OrderData, store *models.Store) (*models.OutgoingCreateOrderRequest, error) {
	if data == nil || data.Quote == nil {
		return nil, fmt.Errorf("order data missing quote")
	}

	quote := data.Quote

	amount, err := getTotalAmount(quote.Items)
	if err != nil {
		return nil, fmt.Errorf("error getting amount from quote items: [%v]", err)
	}

	order := &models.OutgoingCreateOrderRequest{
		Amount:        amount,
		CurrencyCode:  quote.CurrencyCode,
		Vault:         data.Vault,
		PaymentSource: data.PaymentSource,
		QuoteID:       data.QuoteID,
		StoreViewCode: data.StoreViewCode,
		ThreeDSMode:   data.ThreeDSMode,
	}

	if store != nil {
		order.WebsiteID = store.WebsiteID
		if order.StoreViewCode == "" {
			order.StoreViewCode = store.Code
		}
	}

	if quote.CustomerID != "" {
		payer := mappers.BuildPayer(quote, quote.CustomerID)
		order.Payer = &payer
	} else {
		payer := mappers.BuildGuestPayer(quote)
		order.Payer = &payer
	}

	if quote.BillingAddress.HasCountry() {
		order.BillingAddress = mappers.MapAddress(quote.BillingAddress)
	}
	if quote.ShippingAddress.HasCountry() {
		order.ShippingAddress = mappers.MapAddress(quote.ShippingAddress)
	}

	return order, nil
}

// BuildUpdateRequestBody constructs a partial update payload containing only
// the fields explicitly supplied. The gateway applies the body as a
// PATCH-style selective merge, so no key may be emitted for a field the
// caller did not set.
func BuildUpdateRequestBody(data *models.UpdateOrderData) (*models.OutgoingUpdateOrderRequest, error) {
	if data == nil {
		return &models.OutgoingUpdateOrderRequest{}, nil
	}

	order := &models.OutgoingUpdateOrderRequest{
		Payer:        data.Payer,
		Amount:       data.Amount,
		CurrencyCode: data.CurrencyCode,
	}

	if data.Amount != nil && !amountFormat.MatchString(*data.Amount) {
		return nil, fmt.Errorf("amount [%s] format incorrect", *data.Amount)
	}

	if data.ShippingAddress != nil {
		if !data.ShippingAddress.HasCountry() {
			return nil, fmt.Errorf("shipping address in order update has no country")
		}
		order.ShippingAddress = mappers.MapAddress(data.ShippingAddress)
	}

	return order, nil
}

// getTotalAmount sums the quote item amounts with exact decimal arithmetic
// and renders the two decimal place wire format.
func getTotalAmount(items []models.QuoteItem) (string, error) {
	var totalAmount decimal.Decimal
	for _, item := range items {
		if !amountFormat.MatchString(item.Amount) {
			return "", fmt.Errorf("amount [%s] format incorrect", item.Amount)
		}

		amount, _ := decimal.NewFromString(item.Amount)
		totalAmount = totalAmount.Add(amount)
	}
	return totalAmount.StringFixed(2), nil
}
