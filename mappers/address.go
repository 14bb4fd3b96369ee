// Package mappers translates between the host platform's checkout address and
// payer records and the gateway's wire shapes, in both directions.
package mappers

import (
	"github.com/commercekit/paypal-checkout-api/models"
)

// MapAddress converts a commerce checkout address to the gateway wire shape.
// An address without a country code is treated as absent and maps to nil
// rather than a partially filled object.
func MapAddress(address *models.Address) *models.GatewayAddress {
	if !address.HasCountry() {
		return nil
	}

	mapped := &models.GatewayAddress{
		FullName:    strPtr(address.FirstName + " " + address.LastName),
		AdminArea1:  strPtr(address.RegionCode),
		AdminArea2:  strPtr(address.City),
		PostalCode:  strPtr(address.PostalCode),
		CountryCode: strPtr(address.CountryCode),
	}

	if len(address.Street) > 0 {
		mapped.AddressLine1 = strPtr(address.Street[0])
	}
	if len(address.Street) > 1 {
		mapped.AddressLine2 = strPtr(address.Street[1])
	}

	return mapped
}

// BuildPayer builds the payer object for order creation from a quote with a
// known customer. The customer id is always attached.
func BuildPayer(quote *models.Quote, customerID string) models.Payer {
	payer := models.Payer{
		Name: models.PayerName{
			GivenName: quote.CustomerFirstName,
			Surname:   quote.CustomerLastName,
		},
		Email:      quote.CustomerEmail,
		CustomerID: customerID,
	}

	if quote.BillingAddress != nil {
		payer.PhoneNumber = quote.BillingAddress.Telephone
	}

	return payer
}

// BuildGuestPayer builds the payer object for guest checkout. Guest payers
// are derived from the billing address and never carry a customer id.
func BuildGuestPayer(quote *models.Quote) models.Payer {
	payer := models.Payer{}

	if billing := quote.BillingAddress; billing != nil {
		payer.Name = models.PayerName{
			GivenName: billing.FirstName,
			Surname:   billing.LastName,
		}
		payer.Email = billing.Email
		payer.PhoneNumber = billing.Telephone
	}

	return payer
}

func strPtr(s string) *string {
	return &s
}
