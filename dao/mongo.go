package dao

import (
	"context"
	"errors"
	"time"

	"github.com/commercekit/paypal-checkout-api/models"
	"github.com/companieshouse/chs.go/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

// MongoService is a MongoDB-backed DAO for payment additional data. The
// connection is established on first use, not at construction.
type MongoService struct {
	db             MongoDatabaseInterface
	MongoDBURL     string
	DatabaseName   string
	CollectionName string
}

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	var err error
	client, err = mongo.Connect(ctx, clientOptions)

	// assume the caller of this func cannot handle the case where there is no
	// database connection, so the service must crash here as it cannot do its work
	if err != nil {
		log.Error(err)
		panic(err)
	}

	// check we can connect to the mongodb instance; failure here should result in
	// a crash too
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = client.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		panic(err)
	}

	log.Info("connected to mongodb successfully")

	return client
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

func (m *MongoService) database() MongoDatabaseInterface {
	if m.db == nil {
		m.db = getMongoDatabase(m.MongoDBURL, m.DatabaseName)
	}
	return m.db
}

// SavePaymentAdditionalData upserts the additional-information record for a
// payment.
func (m *MongoService) SavePaymentAdditionalData(record *models.PaymentAdditionalDataDB) error {
	collection := m.database().Collection(m.CollectionName)

	filter := bson.M{"_id": record.PaymentID}
	opts := options.Replace().SetUpsert(true)

	_, err := collection.ReplaceOne(context.Background(), filter, record, opts)
	return err
}

// GetPaymentAdditionalData retrieves the additional-information record for a
// payment. A missing record returns nil without error.
func (m *MongoService) GetPaymentAdditionalData(paymentID string) (*models.PaymentAdditionalDataDB, error) {
	collection := m.database().Collection(m.CollectionName)

	record := models.PaymentAdditionalDataDB{}
	err := collection.FindOne(context.Background(), bson.M{"_id": paymentID}).Decode(&record)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}
