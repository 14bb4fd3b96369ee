package mappers

import (
	"testing"

	"github.com/commercekit/paypal-checkout-api/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitMapAddress(t *testing.T) {

	Convey("Address without a country maps to nil", t, func() {
		address := &models.Address{
			FirstName:  "Jane",
			LastName:   "Doe",
			Street:     []string{"1 High Street"},
			City:       "London",
			PostalCode: "SW1A 1AA",
		}

		So(MapAddress(address), ShouldBeNil)
	})

	Convey("Nil address maps to nil", t, func() {
		So(MapAddress(nil), ShouldBeNil)
	})

	Convey("Full address maps field by field", t, func() {
		address := &models.Address{
			FirstName:   "Jane",
			LastName:    "Doe",
			Street:      []string{"1 High Street", "Flat 2"},
			City:        "London",
			RegionCode:  "LDN",
			PostalCode:  "SW1A 1AA",
			CountryCode: "GB",
		}

		mapped := MapAddress(address)

		So(mapped, ShouldNotBeNil)
		So(*mapped.FullName, ShouldEqual, "Jane Doe")
		So(*mapped.AddressLine1, ShouldEqual, "1 High Street")
		So(*mapped.AddressLine2, ShouldEqual, "Flat 2")
		So(*mapped.AdminArea1, ShouldEqual, "LDN")
		So(*mapped.AdminArea2, ShouldEqual, "London")
		So(*mapped.PostalCode, ShouldEqual, "SW1A 1AA")
		So(*mapped.CountryCode, ShouldEqual, "GB")
	})

	Convey("Second street line is omitted when absent", t, func() {
		address := &models.Address{
			FirstName:   "Jane",
			LastName:    "Doe",
			Street:      []string{"1 High Street"},
			CountryCode: "GB",
		}

		mapped := MapAddress(address)

		So(*mapped.AddressLine1, ShouldEqual, "1 High Street")
		So(mapped.AddressLine2, ShouldBeNil)
	})

	Convey("Full name is space joined without trimming correction", t, func() {
		address := &models.Address{
			LastName:    "Doe",
			CountryCode: "GB",
		}

		mapped := MapAddress(address)

		So(*mapped.FullName, ShouldEqual, " Doe")
	})
}

func TestUnitBuildPayer(t *testing.T) {

	Convey("Customer payer always carries the customer id", t, func() {
		quote := &models.Quote{
			CustomerFirstName: "Jane",
			CustomerLastName:  "Doe",
			CustomerEmail:     "jane@example.com",
			BillingAddress: &models.Address{
				Telephone: "0123456789",
			},
		}

		payer := BuildPayer(quote, "cust-1")

		So(payer.Name.GivenName, ShouldEqual, "Jane")
		So(payer.Name.Surname, ShouldEqual, "Doe")
		So(payer.Email, ShouldEqual, "jane@example.com")
		So(payer.PhoneNumber, ShouldEqual, "0123456789")
		So(payer.CustomerID, ShouldEqual, "cust-1")
	})

	Convey("Guest payer is derived from the billing address and never carries a customer id", t, func() {
		quote := &models.Quote{
			CustomerFirstName: "ignored",
			BillingAddress: &models.Address{
				FirstName: "John",
				LastName:  "Smith",
				Email:     "john@example.com",
				Telephone: "0789",
			},
		}

		payer := BuildGuestPayer(quote)

		So(payer.Name.GivenName, ShouldEqual, "John")
		So(payer.Name.Surname, ShouldEqual, "Smith")
		So(payer.Email, ShouldEqual, "john@example.com")
		So(payer.PhoneNumber, ShouldEqual, "0789")
		So(payer.CustomerID, ShouldBeEmpty)
	})

	Convey("Guest payer with no billing address is empty", t, func() {
		payer := BuildGuestPayer(&models.Quote{})
		So(payer.CustomerID, ShouldBeEmpty)
		So(payer.Email, ShouldBeEmpty)
	})
}
