package service

import (
	"testing"

	"github.com/commercekit/paypal-checkout-api/config"
	"github.com/commercekit/paypal-checkout-api/models"
	"github.com/plutov/paypal/v4"
	. "github.com/smartystreets/goconvey/convey"
)

func configuredFastlaneConfig() *config.Config {
	return &config.Config{
		MerchantID:        "m1",
		GatewayAPIKey:     "gw-key",
		GatewaySandboxURL: "https://sandbox.gateway.test",
		CheckoutWebURL:    "https://shop.example.com",
		FastlaneEnabled:   true,
		FastlaneMessaging: true,
	}
}

func TestUnitGetCheckoutConfig(t *testing.T) {

	store := &models.Store{ID: "1", Code: "uk", BaseURL: "https://sub.shop.example.com/uk"}

	Convey("Unconfigured integration yields an invisible fragment even with the feature on", t, func() {
		svc := FastlaneConfigService{Config: &config.Config{FastlaneEnabled: true}}

		checkoutConfig := svc.GetCheckoutConfig(store, "GBP")

		So(checkoutConfig[FastlaneCode].IsVisible, ShouldBeFalse)
		So(checkoutConfig[FastlaneCode].SdkParams, ShouldBeNil)
	})

	Convey("Disabled feature yields an invisible fragment", t, func() {
		cfg := configuredFastlaneConfig()
		cfg.FastlaneEnabled = false
		svc := FastlaneConfigService{Config: cfg}

		checkoutConfig := svc.GetCheckoutConfig(store, "GBP")

		So(checkoutConfig[FastlaneCode].IsVisible, ShouldBeFalse)
	})

	Convey("Configured and enabled integration yields the full fragment", t, func() {
		svc := FastlaneConfigService{Config: configuredFastlaneConfig()}

		checkoutConfig := svc.GetCheckoutConfig(store, "GBP")
		fragment := checkoutConfig[FastlaneCode]

		So(fragment.IsVisible, ShouldBeTrue)
		So(fragment.Location, ShouldEqual, "checkout")
		So(fragment.PaymentSource, ShouldEqual, FastlanePaymentSource)
		So(fragment.Messaging, ShouldBeTrue)
		So(fragment.CreateOrderURL, ShouldEqual, "https://shop.example.com/checkout/paypal/order")

		So(fragment.SdkParams, ShouldNotBeNil)
		So(fragment.SdkParams.Code, ShouldEqual, FastlaneCode)
		So(fragment.SdkParams.Location, ShouldEqual, "checkout_fastlane")
		So(fragment.SdkParams.Currency, ShouldEqual, "GBP")
		So(fragment.SdkParams.Intent, ShouldEqual, string(paypal.OrderIntentCapture))
		So(fragment.SdkParams.IsFastlaneEnabled, ShouldBeTrue)
		So(fragment.SdkParams.Domains, ShouldResemble, []string{"example.com"})
	})

	Convey("Store without a base URL yields no domain restriction", t, func() {
		svc := FastlaneConfigService{Config: configuredFastlaneConfig()}

		checkoutConfig := svc.GetCheckoutConfig(&models.Store{ID: "1", Code: "uk"}, "GBP")

		So(checkoutConfig[FastlaneCode].SdkParams.Domains, ShouldBeNil)
	})
}

func TestUnitRootDomain(t *testing.T) {

	Convey("The last two host labels make the root domain", t, func() {
		So(rootDomain("sub.shop.example.com"), ShouldEqual, "example.com")
		So(rootDomain("example.com"), ShouldEqual, "example.com")
	})

	Convey("A single-label host is returned unchanged", t, func() {
		So(rootDomain("localhost"), ShouldEqual, "localhost")
	})

	Convey("The host is extracted from the full store base URL", t, func() {
		So(storeRootDomain(&models.Store{BaseURL: "https://sub.shop.example.com:8443/uk?x=1"}), ShouldEqual, "example.com")
		So(storeRootDomain(&models.Store{BaseURL: ""}), ShouldEqual, "")
		So(storeRootDomain(nil), ShouldEqual, "")
	})
}
