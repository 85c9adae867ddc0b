package databases

// go generate: mockery --name CaretakerDatabase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/conectacare/conectacare-api/apperrors"
	"github.com/conectacare/conectacare-api/models"
)

// CaretakerCollection is the default name of the caretaker collection
const CaretakerCollection = "caretaker"

// CaretakerDatabase contains the methods to use with the caretaker database
type CaretakerDatabase interface {
	InsertOne(ctx context.Context, caretaker *models.Caretaker) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Caretaker, error)
	FindOneByField(ctx context.Context, field string, value interface{}) (*models.Caretaker, error)
	FindAll(ctx context.Context) ([]models.Caretaker, error)
	Count(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type caretakerDatabase struct {
	db   DatabaseHelper
	name string
}

// NewCaretakerDatabase initializes a new instance of caretaker database with the provided db connection
func NewCaretakerDatabase(db DatabaseHelper, collection string) CaretakerDatabase {
	if collection == "" {
		collection = CaretakerCollection
	}
	return &caretakerDatabase{
		db:   db,
		name: collection,
	}
}

func (c *caretakerDatabase) collection() CollectionHelper {
	return c.db.Collection(c.name)
}

func (c *caretakerDatabase) InsertOne(ctx context.Context, caretaker *models.Caretaker) (primitive.ObjectID, error) {
	res, err := c.collection().InsertOne(ctx, caretaker)
	if err != nil {
		return primitive.NilObjectID, storeError("failed to insert caretaker", err)
	}
	id, ok := res.Decode().(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, apperrors.Newf(apperrors.Internal, "unexpected inserted id type %T", res.Decode())
	}
	return id, nil
}

func (c *caretakerDatabase) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Caretaker, error) {
	caretaker := &models.Caretaker{}
	err := c.collection().FindOne(ctx, bson.M{"_id": id}).Decode(caretaker)
	if err != nil {
		return nil, storeError("caretaker not found", err)
	}
	return caretaker, nil
}

func (c *caretakerDatabase) FindOneByField(ctx context.Context, field string, value interface{}) (*models.Caretaker, error) {
	caretaker := &models.Caretaker{}
	err := c.collection().FindOne(ctx, bson.M{field: value}).Decode(caretaker)
	if err != nil {
		return nil, storeError(fmt.Sprintf("no caretaker with matching %s", field), err)
	}
	return caretaker, nil
}

func (c *caretakerDatabase) FindAll(ctx context.Context) ([]models.Caretaker, error) {
	cur, err := c.collection().Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, storeError("failed to list caretakers", err)
	}
	defer cur.Close(ctx)

	caretakers := []models.Caretaker{}
	if err := cur.All(ctx, &caretakers); err != nil {
		return nil, storeError("failed to decode caretakers", err)
	}
	return caretakers, nil
}

func (c *caretakerDatabase) Count(ctx context.Context) (int64, error) {
	n, err := c.collection().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, storeError("failed to count caretakers", err)
	}
	return n, nil
}

// EnsureIndexes creates the unique index on the email address
func (c *caretakerDatabase) EnsureIndexes(ctx context.Context) error {
	_, err := c.collection().CreateIndexes(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: models.EmailField, Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_email"),
		},
	})
	return storeError("failed to create caretaker indexes", err)
}
