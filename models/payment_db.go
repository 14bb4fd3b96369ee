package models

import "time"

// PaymentAdditionalDataDB is the persisted additional-information record for
// a payment. The record is written once per checkout submission and is not
// mutated afterwards.
type PaymentAdditionalDataDB struct {
	PaymentID      string            `bson:"_id"`
	AdditionalData map[string]string `bson:"additional_data"`
	CreatedAt      time.Time         `bson:"created_at"`
}
