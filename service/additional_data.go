package service

import (
	"fmt"

	"github.com/commercekit/paypal-checkout-api/config"
	"github.com/commercekit/paypal-checkout-api/dao"
	"github.com/commercekit/paypal-checkout-api/helpers"
	"github.com/commercekit/paypal-checkout-api/models"
	"github.com/commercekit/paypal-checkout-api/transformers"
)

// additionalInformationKeys is the allow-list of gateway correlation fields
// copied from checkout additional data onto the payment record. The Fastlane
// token is handled separately because it is encrypted at rest.
var additionalInformationKeys = []string{
	models.KeyPaymentsOrderID,
	models.KeyPayPalOrderID,
	models.KeyPaymentSource,
	models.KeyPayPalFastlaneProfile,
}

// AdditionalDataService records gateway correlation identifiers on the
// payment record when a payment method is assigned during checkout.
type AdditionalDataService struct {
	DAO       dao.DAO
	Encryptor helpers.Encryptor
	Config    *config.Config
}

// SaveAdditionalData copies the allow-listed keys present in the checkout
// additional data onto the payment record. The payments mode is always
// recorded from the store's environment, even when no additional data was
// supplied.
func (s *AdditionalDataService) SaveAdditionalData(paymentID string, store *models.Store, additionalData map[string]string) (*models.PaymentAdditionalDataRest, error) {
	storeViewCode := ""
	if store != nil {
		storeViewCode = store.Code
	}

	info := map[string]string{
		models.KeyPaymentsMode: s.Config.EnvironmentType(storeViewCode),
	}

	for _, key := range additionalInformationKeys {
		if value, ok := additionalData[key]; ok {
			info[key] = value
		}
	}

	if token := additionalData[models.KeyPayPalFastlaneToken]; token != "" {
		encrypted, err := s.Encryptor.Encrypt(token)
		if err != nil {
			return nil, fmt.Errorf("error encrypting fastlane token: [%v]", err)
		}
		info[models.KeyPayPalFastlaneToken] = encrypted
	}

	rest := models.PaymentAdditionalDataRest{
		PaymentID:      paymentID,
		AdditionalData: info,
	}

	record := transformers.AdditionalDataTransformer{}.TransformToDB(rest)
	if err := s.DAO.SavePaymentAdditionalData(&record); err != nil {
		return nil, fmt.Errorf("error writing payment additional data: [%v]", err)
	}

	return &rest, nil
}

// GetAdditionalData retrieves the recorded additional information for a
// payment, or nil when none has been saved.
func (s *AdditionalDataService) GetAdditionalData(paymentID string) (*models.PaymentAdditionalDataRest, error) {
	record, err := s.DAO.GetPaymentAdditionalData(paymentID)
	if err != nil {
		return nil, fmt.Errorf("error getting payment additional data: [%v]", err)
	}
	if record == nil {
		return nil, nil
	}

	rest := transformers.AdditionalDataTransformer{}.TransformToRest(*record)
	return &rest, nil
}
