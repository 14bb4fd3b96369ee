package dao

import (
	"github.com/commercekit/paypal-checkout-api/config"
	"github.com/commercekit/paypal-checkout-api/models"
)

// DAO is an interface for accessing payment additional data in a backend store
type DAO interface {
	SavePaymentAdditionalData(record *models.PaymentAdditionalDataDB) error
	GetPaymentAdditionalData(paymentID string) (*models.PaymentAdditionalDataDB, error)
}

// NewDAO returns a DAO backed by the configured MongoDB database. No
// connection is made until the first operation.
func NewDAO(cfg *config.Config) DAO {
	return &MongoService{
		MongoDBURL:     cfg.MongoDBURL,
		DatabaseName:   cfg.Database,
		CollectionName: cfg.Collection,
	}
}
