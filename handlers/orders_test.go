package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/commercekit/paypal-checkout-api/client"
	"github.com/commercekit/paypal-checkout-api/config"
	"github.com/commercekit/paypal-checkout-api/models"
	"github.com/commercekit/paypal-checkout-api/service"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"
)

func serviceConfig() *config.Config {
	return &config.Config{
		MerchantID:        "m1",
		GatewaySandboxURL: "https://sandbox.gateway.test",
	}
}

func setOrderService(mockClient client.ServiceClient) {
	orderService = &service.OrderService{
		Client: mockClient,
		Config: serviceConfig(),
	}
}

func orderRequest(method, target, body string, vars map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func TestUnitHandleCreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Request body invalid", t, func() {
		setOrderService(client.NewMockServiceClient(mockCtrl))

		w := httptest.NewRecorder()
		HandleCreateOrder(w, orderRequest("POST", "/checkout/paypal/order", "not json", nil))

		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Request body fails validation", t, func() {
		setOrderService(client.NewMockServiceClient(mockCtrl))

		w := httptest.NewRecorder()
		HandleCreateOrder(w, orderRequest("POST", "/checkout/paypal/order", `{"store":{"code":"uk"}}`, nil))

		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Successful creation returns the envelope with status created", t, func() {
		mockClient := client.NewMockServiceClient(mockCtrl)
		setOrderService(mockClient)

		mockClient.EXPECT().
			Request(gomock.Any(), gomock.Any(), http.MethodPost, gomock.Any(), gomock.Any()).
			Return(&models.OrderResponse{IsSuccessful: true, ID: "ord-1"}, nil)

		body := `{"store":{"code":"uk","website_id":"1"},"order":{"payment_source":"fastlane","quote":{"currency_code":"GBP","items":[{"amount":"10.00"}]}}}`

		w := httptest.NewRecorder()
		HandleCreateOrder(w, orderRequest("POST", "/checkout/paypal/order", body, nil))

		So(w.Code, ShouldEqual, http.StatusCreated)
		So(w.Body.String(), ShouldContainSubstring, `"id":"ord-1"`)
	})
}

func TestUnitHandleUpdateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	vars := map[string]string{"order_id": "ord-1"}

	Convey("No order id in request", t, func() {
		setOrderService(client.NewMockServiceClient(mockCtrl))

		w := httptest.NewRecorder()
		HandleUpdateOrder(w, orderRequest("PATCH", "/checkout/paypal/order/", `{}`, nil))

		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Gateway rejection surfaces as bad request", t, func() {
		mockClient := client.NewMockServiceClient(mockCtrl)
		setOrderService(mockClient)

		mockClient.EXPECT().
			Request(gomock.Any(), gomock.Any(), http.MethodPatch, gomock.Any(), gomock.Any()).
			Return(&models.OrderResponse{IsSuccessful: false}, nil)

		body := `{"store_id":"1","order":{"amount":"20.00"}}`

		w := httptest.NewRecorder()
		HandleUpdateOrder(w, orderRequest("PATCH", "/checkout/paypal/order/ord-1", body, vars))

		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Successful update returns no content", t, func() {
		mockClient := client.NewMockServiceClient(mockCtrl)
		setOrderService(mockClient)

		mockClient.EXPECT().
			Request(gomock.Any(), gomock.Any(), http.MethodPatch, gomock.Any(), gomock.Any()).
			Return(&models.OrderResponse{IsSuccessful: true}, nil)

		body := `{"store_id":"1","order":{"amount":"20.00"}}`

		w := httptest.NewRecorder()
		HandleUpdateOrder(w, orderRequest("PATCH", "/checkout/paypal/order/ord-1", body, vars))

		So(w.Code, ShouldEqual, http.StatusNoContent)
	})
}

func TestUnitHandleGetOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	vars := map[string]string{"order_id": "ord-1"}

	Convey("Gateway rejection surfaces as not found", t, func() {
		mockClient := client.NewMockServiceClient(mockCtrl)
		setOrderService(mockClient)

		mockClient.EXPECT().
			Request(gomock.Any(), gomock.Any(), http.MethodGet, nil, gomock.Any()).
			Return(&models.OrderResponse{IsSuccessful: false}, nil)

		w := httptest.NewRecorder()
		HandleGetOrder(w, orderRequest("GET", "/checkout/paypal/order/ord-1", "", vars))

		So(w.Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("Successful fetch returns the envelope", t, func() {
		mockClient := client.NewMockServiceClient(mockCtrl)
		setOrderService(mockClient)

		mockClient.EXPECT().
			Request(gomock.Any(), gomock.Any(), http.MethodGet, nil, gomock.Any()).
			Return(&models.OrderResponse{IsSuccessful: true, ID: "ord-1", Status: "APPROVED"}, nil)

		w := httptest.NewRecorder()
		HandleGetOrder(w, orderRequest("GET", "/checkout/paypal/order/ord-1", "", vars))

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"status":"APPROVED"`)
	})
}

func TestUnitHandleTrackOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	vars := map[string]string{"order_id": "ord-1"}

	Convey("Tracking info fails validation", t, func() {
		setOrderService(client.NewMockServiceClient(mockCtrl))

		body := `{"store":{"code":"uk"},"tracking":{"tracking_number":"1Z999"}}`

		w := httptest.NewRecorder()
		HandleTrackOrder(w, orderRequest("POST", "/checkout/paypal/order/ord-1/tracking", body, vars))

		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Successful tracking returns no content", t, func() {
		mockClient := client.NewMockServiceClient(mockCtrl)
		setOrderService(mockClient)

		mockClient.EXPECT().
			Request(gomock.Any(), gomock.Any(), http.MethodPost, gomock.Any(), gomock.Any()).
			Return(&models.OrderResponse{IsSuccessful: true}, nil)

		body := `{"store":{"code":"uk"},"tracking":{"tracking_number":"1Z999","carrier":"UPS"}}`

		w := httptest.NewRecorder()
		HandleTrackOrder(w, orderRequest("POST", "/checkout/paypal/order/ord-1/tracking", body, vars))

		So(w.Code, ShouldEqual, http.StatusNoContent)
	})
}

func TestUnitHandleGetCommerceAddress(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	vars := map[string]string{"order_id": "ord-1"}

	Convey("Invalid address type", t, func() {
		setOrderService(client.NewMockServiceClient(mockCtrl))

		w := httptest.NewRecorder()
		HandleGetCommerceAddress(w, orderRequest("GET", "/checkout/paypal/order/ord-1/commerce-address?type=both", "", vars))

		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Shipping address is flattened to commerce fields", t, func() {
		mockClient := client.NewMockServiceClient(mockCtrl)
		setOrderService(mockClient)

		postalCode := "SW1A 1AA"
		country := "GB"
		mockClient.EXPECT().
			Request(gomock.Any(), gomock.Any(), http.MethodGet, nil, gomock.Any()).
			Return(&models.OrderResponse{
				IsSuccessful: true,
				PayPalOrder: &models.PayPalOrderDetails{
					ShippingAddress: &models.GatewayAddress{
						PostalCode:  &postalCode,
						CountryCode: &country,
					},
				},
			}, nil)

		w := httptest.NewRecorder()
		HandleGetCommerceAddress(w, orderRequest("GET", "/checkout/paypal/order/ord-1/commerce-address?type=shipping", "", vars))

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"postcode":"SW1A 1AA"`)
		So(w.Body.String(), ShouldContainSubstring, `"country_id":"GB"`)
	})

	Convey("Order without paypal details is not found", t, func() {
		mockClient := client.NewMockServiceClient(mockCtrl)
		setOrderService(mockClient)

		mockClient.EXPECT().
			Request(gomock.Any(), gomock.Any(), http.MethodGet, nil, gomock.Any()).
			Return(&models.OrderResponse{IsSuccessful: true}, nil)

		w := httptest.NewRecorder()
		HandleGetCommerceAddress(w, orderRequest("GET", "/checkout/paypal/order/ord-1/commerce-address?type=billing", "", vars))

		So(w.Code, ShouldEqual, http.StatusNotFound)
	})
}
