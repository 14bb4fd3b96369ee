package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/commercekit/paypal-checkout-api/builders"
	"github.com/commercekit/paypal-checkout-api/client"
	"github.com/commercekit/paypal-checkout-api/config"
	"github.com/commercekit/paypal-checkout-api/models"
	"github.com/companieshouse/chs.go/log"
	"github.com/plutov/paypal/v4"
)

// Typed failures raised when the gateway reports an unsuccessful outcome
var (
	// ErrOrderUpdateFailed is returned when the gateway reports an
	// unsuccessful order update
	ErrOrderUpdateFailed = errors.New("failed to update an order")

	// ErrOrderRetrieveFailed is returned when the gateway reports an
	// unsuccessful order fetch
	ErrOrderRetrieveFailed = errors.New("failed to retrieve an order")

	// ErrTrackingFailed is returned when the gateway rejects shipment
	// tracking information
	ErrTrackingFailed = errors.New("failed to create tracking information")
)

// OrderService drives the gateway order lifecycle: create, selective update,
// shipment tracking and fetch. Each call is stateless; merchant id,
// environment and scope headers are resolved per call from the store context.
type OrderService struct {
	Client client.ServiceClient
	Config *config.Config
}

// Create maps the checkout data to the gateway order shape and sends the
// order creation request. The response envelope is returned without an
// is_successful check: creation failures surface through the transport's own
// error, unlike the update/track/get operations below.
func (s *OrderService) Create(store *models.Store, data *models.OrderData) (*models.OrderResponse, error) {
	order, err := builders.BuildCreateRequestBody(data, store)
	if err != nil {
		return nil, err
	}

	headers := mergeHeaders(buildScopeHeaders(store))
	if data.Vault && order.Payer != nil && order.Payer.CustomerID != "" {
		headers[HeaderCustomerID] = order.Payer.CustomerID
	}
	if data.QuoteID != "" {
		headers[HeaderQuoteID] = data.QuoteID
	}

	path := "/" + s.Config.MerchantID + "/payment/paypal/order"

	body, err := json.Marshal(order)
	if err != nil || len(body) == 0 {
		log.Error(fmt.Errorf("error encoding body for order creation request: [%v]", err))
		return nil, fmt.Errorf("error encoding body for order creation request")
	}

	response, err := s.Client.Request(headers, path, http.MethodPost, body, s.Config.EnvironmentType(data.StoreViewCode))
	if err != nil {
		return nil, err
	}

	logGatewayExchange(path, headers, http.MethodPost, body, response)

	return response, nil
}

// Update sends a selective order update. Only fields present in data reach
// the wire; the gateway applies the body as a partial merge.
func (s *OrderService) Update(storeID, orderID string, data *models.UpdateOrderData) error {
	order, err := builders.BuildUpdateRequestBody(data)
	if err != nil {
		return err
	}

	path := "/" + s.Config.MerchantID + "/payment/paypal/order/" + orderID
	headers := mergeHeaders(buildScopeHeadersForStoreID(storeID))

	body, err := json.Marshal(order)
	if err != nil || len(body) == 0 {
		log.Error(fmt.Errorf("error encoding body for order update request for order id %s: [%v]", orderID, err))
		return fmt.Errorf("error encoding body for order update request")
	}

	response, err := s.Client.Request(headers, path, http.MethodPatch, body, s.Config.EnvironmentType(""))
	if err != nil {
		return err
	}

	logGatewayExchange(path, headers, http.MethodPatch, body, response)

	if response == nil || !response.IsSuccessful {
		return ErrOrderUpdateFailed
	}
	return nil
}

// Track adds shipment tracking information to a gateway order
func (s *OrderService) Track(store *models.Store, orderID string, data *models.TrackingInfo) error {
	path := fmt.Sprintf("/%s/payment/paypal/order/%s/tracking-info", s.Config.MerchantID, orderID)
	headers := mergeHeaders(buildScopeHeaders(store))

	body, err := json.Marshal(data)
	if err != nil || len(body) == 0 {
		log.Error(fmt.Errorf("error encoding body for tracking info request for order id %s: [%v]", orderID, err))
		return fmt.Errorf("error encoding body for tracking info request")
	}

	response, err := s.Client.Request(headers, path, http.MethodPost, body, s.Config.EnvironmentType(store.Code))
	if err != nil {
		return err
	}

	logGatewayExchange(path, headers, http.MethodPost, body, response)

	if response == nil || !response.IsSuccessful {
		return fmt.Errorf("%w for order id %s", ErrTrackingFailed, orderID)
	}
	return nil
}

// Get fetches the order from the gateway and returns the full envelope
func (s *OrderService) Get(storeID, orderID string) (*models.OrderResponse, error) {
	headers := mergeHeaders(buildScopeHeadersForStoreID(storeID))
	path := "/" + s.Config.MerchantID + "/payment/paypal/order/" + orderID

	response, err := s.Client.Request(headers, path, http.MethodGet, nil, s.Config.EnvironmentType(""))
	if err != nil {
		return nil, err
	}

	logGatewayExchange(path, headers, http.MethodGet, nil, response)

	if response == nil || !response.IsSuccessful {
		return nil, ErrOrderRetrieveFailed
	}
	return response, nil
}

// OrderApproved reports whether a fetched order has been approved by the
// payer, either directly or by reaching completion.
func OrderApproved(response *models.OrderResponse) bool {
	if response == nil {
		return false
	}
	return response.Status == paypal.OrderStatusApproved || response.Status == paypal.OrderStatusCompleted
}

// OrderSettled reports whether a gateway order has reached a terminal state
func OrderSettled(response *models.OrderResponse) bool {
	if response == nil {
		return false
	}
	return response.Status == paypal.OrderStatusCompleted || response.Status == paypal.OrderStatusVoided
}

// logGatewayExchange records the full request/response pair at debug severity
// before the outcome is evaluated, so semantically failed calls stay
// traceable.
func logGatewayExchange(path string, headers map[string]string, method string, body []byte, response *models.OrderResponse) {
	log.Debug("gateway order exchange", log.Data{
		"request":  []interface{}{path, headers, method, string(body)},
		"response": response,
	})
}
