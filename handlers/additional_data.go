package handlers

import (
	"fmt"
	"net/http"

	"github.com/commercekit/paypal-checkout-api/models"
	"github.com/commercekit/paypal-checkout-api/utils"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

// HandleSaveAdditionalData records the gateway correlation identifiers on a
// payment when the payment method is assigned during checkout
func HandleSaveAdditionalData(w http.ResponseWriter, req *http.Request) {
	paymentID, ok := paymentIDFromRequest(w, req)
	if !ok {
		return
	}

	var incomingAdditionalDataRequest models.IncomingAdditionalDataRequest
	if !decodeBody(w, req, &incomingAdditionalDataRequest) {
		return
	}

	rest, err := additionalDataService.SaveAdditionalData(paymentID, &incomingAdditionalDataRequest.Store, incomingAdditionalDataRequest.AdditionalData)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error saving additional data for payment %s: [%v]", paymentID, err))
		utils.WriteErrorMessage(w, req, "error saving additional data", http.StatusInternalServerError)
		return
	}

	utils.WriteJSONWithStatus(w, req, rest, http.StatusCreated)
}

// HandleGetAdditionalData returns the recorded additional information for a payment
func HandleGetAdditionalData(w http.ResponseWriter, req *http.Request) {
	paymentID, ok := paymentIDFromRequest(w, req)
	if !ok {
		return
	}

	rest, err := additionalDataService.GetAdditionalData(paymentID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting additional data for payment %s: [%v]", paymentID, err))
		utils.WriteErrorMessage(w, req, "error getting additional data", http.StatusInternalServerError)
		return
	}

	if rest == nil {
		utils.WriteErrorMessage(w, req, "no additional data for payment", http.StatusNotFound)
		return
	}

	utils.WriteJSONWithStatus(w, req, rest, http.StatusOK)
}

func paymentIDFromRequest(w http.ResponseWriter, req *http.Request) (string, bool) {
	vars := mux.Vars(req)
	paymentID := vars["payment_id"]
	if paymentID == "" {
		log.ErrorR(req, fmt.Errorf("no payment id in request"))
		utils.WriteErrorMessage(w, req, "payment id not supplied", http.StatusBadRequest)
		return "", false
	}
	return paymentID, true
}
