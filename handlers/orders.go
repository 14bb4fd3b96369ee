package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/commercekit/paypal-checkout-api/mappers"
	"github.com/commercekit/paypal-checkout-api/models"
	"github.com/commercekit/paypal-checkout-api/service"
	"github.com/commercekit/paypal-checkout-api/utils"
	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// HandleCreateOrder creates a gateway order from the checkout quote and
// returns the gateway response envelope unchanged
func HandleCreateOrder(w http.ResponseWriter, req *http.Request) {
	var incomingOrderRequest models.IncomingOrderRequest
	if !decodeBody(w, req, &incomingOrderRequest) {
		return
	}

	if err := validateRequest(incomingOrderRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create order: [%v]", err))
		utils.WriteErrorMessage(w, req, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := orderService.Create(incomingOrderRequest.Store, incomingOrderRequest.Order)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating order: [%v]", err))
		writeServiceError(w, req, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, response, http.StatusCreated)
}

// HandleUpdateOrder applies a selective update to a gateway order
func HandleUpdateOrder(w http.ResponseWriter, req *http.Request) {
	orderID, ok := orderIDFromRequest(w, req)
	if !ok {
		return
	}

	var incomingUpdateRequest models.IncomingUpdateOrderRequest
	if !decodeBody(w, req, &incomingUpdateRequest) {
		return
	}

	err := orderService.Update(incomingUpdateRequest.StoreID, orderID, incomingUpdateRequest.Order)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error updating order %s: [%v]", orderID, err))
		writeServiceError(w, req, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGetOrder fetches a gateway order and returns the response envelope
func HandleGetOrder(w http.ResponseWriter, req *http.Request) {
	orderID, ok := orderIDFromRequest(w, req)
	if !ok {
		return
	}

	response, err := orderService.Get(req.URL.Query().Get("store_id"), orderID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting order %s: [%v]", orderID, err))
		writeServiceError(w, req, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, response, http.StatusOK)
}

// HandleTrackOrder adds shipment tracking information to a gateway order
func HandleTrackOrder(w http.ResponseWriter, req *http.Request) {
	orderID, ok := orderIDFromRequest(w, req)
	if !ok {
		return
	}

	var incomingTrackingRequest models.IncomingTrackingRequest
	if !decodeBody(w, req, &incomingTrackingRequest) {
		return
	}

	if err := validateRequest(incomingTrackingRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to track order %s: [%v]", orderID, err))
		utils.WriteErrorMessage(w, req, "invalid request body", http.StatusBadRequest)
		return
	}

	err := orderService.Track(incomingTrackingRequest.Store, orderID, incomingTrackingRequest.Tracking)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error tracking order %s: [%v]", orderID, err))
		writeServiceError(w, req, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGetCommerceAddress fetches a gateway order and flattens its shipping
// or billing address into commerce address form fields
func HandleGetCommerceAddress(w http.ResponseWriter, req *http.Request) {
	orderID, ok := orderIDFromRequest(w, req)
	if !ok {
		return
	}

	addressType := req.URL.Query().Get("type")
	if addressType != "shipping" && addressType != "billing" {
		log.ErrorR(req, fmt.Errorf("invalid address type [%s]", addressType))
		utils.WriteErrorMessage(w, req, "address type must be shipping or billing", http.StatusBadRequest)
		return
	}

	response, err := orderService.Get(req.URL.Query().Get("store_id"), orderID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting order %s for commerce address: [%v]", orderID, err))
		writeServiceError(w, req, err)
		return
	}

	if response.PayPalOrder == nil {
		utils.WriteErrorMessage(w, req, "order carries no paypal order details", http.StatusNotFound)
		return
	}

	var address mappers.AddressFieldMap
	if addressType == "shipping" {
		address = mappers.ConvertShippingAddress(response.PayPalOrder)
	} else {
		address = mappers.ConvertBillingAddress(response.PayPalOrder)
	}

	utils.WriteJSONWithStatus(w, req, address, http.StatusOK)
}

func orderIDFromRequest(w http.ResponseWriter, req *http.Request) (string, bool) {
	vars := mux.Vars(req)
	orderID := vars["order_id"]
	if orderID == "" {
		log.ErrorR(req, fmt.Errorf("no order id in request"))
		utils.WriteErrorMessage(w, req, "order id not supplied", http.StatusBadRequest)
		return "", false
	}
	return orderID, true
}

func decodeBody(w http.ResponseWriter, req *http.Request, target interface{}) bool {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		utils.WriteErrorMessage(w, req, "request body empty", http.StatusBadRequest)
		return false
	}

	if err := json.NewDecoder(req.Body).Decode(target); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteErrorMessage(w, req, "request body invalid", http.StatusBadRequest)
		return false
	}
	return true
}

func validateRequest(request interface{}) error {
	validate := validator.New()
	return validate.Struct(request)
}

// writeServiceError maps a service failure to the response status. Gateway
// rejections surface as client-visible statuses; anything unrecognised is a
// server error.
func writeServiceError(w http.ResponseWriter, req *http.Request, err error) {
	responseType := responseTypeForError(err)
	log.Debug("service error", log.Data{"service_response_type": responseType.String()})

	switch responseType {
	case service.NotFound:
		utils.WriteErrorMessage(w, req, err.Error(), http.StatusNotFound)
	case service.InvalidData:
		utils.WriteErrorMessage(w, req, err.Error(), http.StatusBadRequest)
	default:
		utils.WriteErrorMessage(w, req, err.Error(), http.StatusInternalServerError)
	}
}

func responseTypeForError(err error) service.ResponseType {
	switch {
	case errors.Is(err, service.ErrOrderRetrieveFailed):
		return service.NotFound
	case errors.Is(err, service.ErrOrderUpdateFailed), errors.Is(err, service.ErrTrackingFailed):
		return service.InvalidData
	default:
		return service.Error
	}
}
