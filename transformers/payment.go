package transformers

import (
	"time"

	"github.com/commercekit/paypal-checkout-api/models"
)

// AdditionalDataTransformer transforms payment additional-information data
// between rest and database models
type AdditionalDataTransformer struct{}

// TransformToDB transforms the rest model into the persisted record
func (t AdditionalDataTransformer) TransformToDB(rest models.PaymentAdditionalDataRest) models.PaymentAdditionalDataDB {
	return models.PaymentAdditionalDataDB{
		PaymentID:      rest.PaymentID,
		AdditionalData: rest.AdditionalData,
		// To match the format time is saved to mongo, truncate the time
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}
}

// TransformToRest transforms the persisted record into the rest model
func (t AdditionalDataTransformer) TransformToRest(dbResource models.PaymentAdditionalDataDB) models.PaymentAdditionalDataRest {
	return models.PaymentAdditionalDataRest{
		PaymentID:      dbResource.PaymentID,
		AdditionalData: dbResource.AdditionalData,
	}
}
