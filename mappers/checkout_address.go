package mappers

import (
	"strings"

	"github.com/commercekit/paypal-checkout-api/models"
)

// AddressFieldMap is a flat mapping of commerce address form fields built
// from a gateway order. Only fields present in the gateway payload appear as
// keys, so that a merge onto the checkout form never overwrites an existing
// value with an empty one.
type AddressFieldMap map[string]interface{}

// addressApplier copies one gateway address field onto the field map when it
// is present in the source. Keeping the appliers in an ordered table keeps
// the allow-list auditable and testable in isolation.
type addressApplier func(data AddressFieldMap, address *models.GatewayAddress)

var addressAppliers = []addressApplier{
	addStreet,
	addPostalCode,
	addCity,
	addRegion,
}

// ConvertShippingAddress flattens the shipping address of a checkout order
// result into commerce address form fields. Every field is optional,
// including the address itself.
func ConvertShippingAddress(order *models.PayPalOrderDetails) AddressFieldMap {
	data := AddressFieldMap{}

	addEmail(data, order.Payer)
	addTelephone(data, order.Payer)

	if address := order.ShippingAddress; address != nil {
		for _, apply := range addressAppliers {
			apply(data, address)
		}
		addCountry(data, address)
		addFullName(data, address)
	}

	return data
}

// ConvertBillingAddress flattens the billing address of a checkout order
// result. Unlike the shipping conversion, firstname and country_id are
// required in the billing path and are set unconditionally from the payer
// given name and the billing address country.
func ConvertBillingAddress(order *models.PayPalOrderDetails) AddressFieldMap {
	data := AddressFieldMap{
		"firstname":  "",
		"country_id": "",
	}
	if order.Payer != nil {
		data["firstname"] = order.Payer.Name.GivenName
	}

	address := order.BillingAddress
	if address != nil && address.CountryCode != nil {
		data["country_id"] = *address.CountryCode
	}

	addLastName(data, order.Payer)
	addEmail(data, order.Payer)
	addTelephone(data, order.Payer)

	if address != nil {
		for _, apply := range addressAppliers {
			apply(data, address)
		}
	}

	return data
}

func addStreet(data AddressFieldMap, address *models.GatewayAddress) {
	street := []string{}
	if address.AddressLine1 != nil {
		street = append(street, *address.AddressLine1)
	}
	if address.AddressLine2 != nil {
		street = append(street, *address.AddressLine2)
	}
	if len(street) > 0 {
		data["street"] = street
	}
}

func addPostalCode(data AddressFieldMap, address *models.GatewayAddress) {
	if address.PostalCode != nil {
		data["postcode"] = *address.PostalCode
	}
}

func addCity(data AddressFieldMap, address *models.GatewayAddress) {
	if address.AdminArea2 != nil {
		data["city"] = *address.AdminArea2
	}
}

// addRegion pairs the region code with an empty region id. The commerce
// model distinguishes a coded region from an internal region-database id and
// the gateway never supplies the latter.
func addRegion(data AddressFieldMap, address *models.GatewayAddress) {
	if address.AdminArea1 != nil {
		data["region"] = *address.AdminArea1
		data["region_id"] = ""
	}
}

func addCountry(data AddressFieldMap, address *models.GatewayAddress) {
	if address.CountryCode != nil {
		data["country_id"] = *address.CountryCode
	}
}

// addFullName splits the gateway full name on the first space only, so that
// multi-word last names survive the round trip.
func addFullName(data AddressFieldMap, address *models.GatewayAddress) {
	if address.FullName == nil {
		return
	}

	nameParts := strings.SplitN(*address.FullName, " ", 2)
	data["firstname"] = nameParts[0]

	if len(nameParts) > 1 {
		data["lastname"] = nameParts[1]
	}
}

func addTelephone(data AddressFieldMap, payer *models.Payer) {
	if payer != nil && payer.PhoneNumber != "" {
		data["telephone"] = payer.PhoneNumber
	}
}

func addEmail(data AddressFieldMap, payer *models.Payer) {
	if payer != nil && payer.Email != "" {
		data["email"] = payer.Email
	}
}

func addLastName(data AddressFieldMap, payer *models.Payer) {
	if payer != nil && payer.Name.Surname != "" {
		data["lastname"] = payer.Name.Surname
	}
}
