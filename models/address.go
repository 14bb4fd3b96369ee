package models

// Address is the commerce checkout address as held on the quote
type Address struct {
	FirstName   string   `json:"firstname"`
	LastName    string   `json:"lastname"`
	Street      []string `json:"street"`
	City        string   `json:"city"`
	RegionCode  string   `json:"region_code"`
	PostalCode  string   `json:"postcode"`
	CountryCode string   `json:"country_id"`
	Telephone   string   `json:"telephone"`
	Email       string   `json:"email"`
}

// HasCountry reports whether the address is usable on the gateway. An
// address without a country code is treated as absent.
func (a *Address) HasCountry() bool {
	return a != nil && a.CountryCode != ""
}

// GatewayAddress is the gateway wire shape of an address. Every field is a
// pointer so that absent and empty are distinguishable in both directions.
type GatewayAddress struct {
	FullName     *string `json:"full_name,omitempty"`
	AddressLine1 *string `json:"address_line_1,omitempty"`
	AddressLine2 *string `json:"address_line_2,omitempty"`
	AdminArea1   *string `json:"admin_area_1,omitempty"`
	AdminArea2   *string `json:"admin_area_2,omitempty"`
	PostalCode   *string `json:"postal_code,omitempty"`
	CountryCode  *string `json:"country_code,omitempty"`
}

// PayerName is the structured payer name on the gateway
type PayerName struct {
	GivenName string `json:"given_name"`
	Surname   string `json:"surname"`
}

// Payer is the gateway payer object attached to order creation
type Payer struct {
	Name        PayerName `json:"name"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CustomerID  string    `json:"customer_id,omitempty"`
}
