package databases

// go generate: mockery --name PatientDatabase

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

// PatientCollection is the default name of the patient collection
const PatientCollection = "patient"

// PatientDatabase contains the methods to use with the patient database
type PatientDatabase interface {
	InsertOne(ctx context.Context, patient *models.Patient) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Patient, error)
	FindOneByField(ctx context.Context, field string, value interface{}) (*models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	Count(ctx context.Context) (int64, error)
	AppendToArray(ctx context.Context, patientID primitive.ObjectID, field models.ArrayField, element interface{}) error
	ReplaceInArray(ctx context.Context, patientID primitive.ObjectID, field models.ArrayField, elementID primitive.ObjectID, element interface{}) error
	EnsureIndexes(ctx context.Context) error
}

type patientDatabase struct {
	db   DatabaseHelper
	name string
}

// NewPatientDatabase initializes a new instance of patient database with the provided db connection
func NewPatientDatabase(db DatabaseHelper, collection string) PatientDatabase {
	if collection == "" {
		collection = PatientCollection
	}
	return &patientDatabase{
		db:   db,
		name: collection,
	}
}

func (p *patientDatabase) collection() CollectionHelper {
	return p.db.Collection(p.name)
}

func (p *patientDatabase) InsertOne(ctx context.Context, patient *models.Patient) (primitive.ObjectID, error) {
	res, err := p.collection().InsertOne(ctx, patient)
	if err != nil {
		return primitive.NilObjectID, storeError("failed to insert patient", err)
	}
	id, ok := res.Decode().(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, apperrors.Newf(apperrors.Internal, "unexpected inserted id type %T", res.Decode())
	}
	return id, nil
}

func (p *patientDatabase) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Patient, error) {
	patient := &models.Patient{}
	err := p.collection().FindOne(ctx, bson.M{"_id": id}).Decode(patient)
	if err != nil {
		return nil, storeError("patient not found", err)
	}
	return patient, nil
}

func (p *patientDatabase) FindOneByField(ctx context.Context, field string, value interface{}) (*models.Patient, error) {
	patient := &models.Patient{}
	err := p.collection().FindOne(ctx, bson.M{field: value}).Decode(patient)
	if err != nil {
		return nil, storeError(fmt.Sprintf("no patient with matching %s", field), err)
	}
	return patient, nil
}

func (p *patientDatabase) FindAll(ctx context.Context) ([]models.Patient, error) {
	cur, err := p.collection().Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, storeError("failed to list patients", err)
	}
	defer cur.Close(ctx)

	patients := []models.Patient{}
	if err := cur.All(ctx, &patients); err != nil {
		return nil, storeError("failed to decode patients", err)
	}
	return patients, nil
}

func (p *patientDatabase) Count(ctx context.Context) (int64, error) {
	n, err := p.collection().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, storeError("failed to count patients", err)
	}
	return n, nil
}

// AppendToArray pushes element, whose identifier the caller has already
// assigned, onto the named array of the patient in a single update.
func (p *patientDatabase) AppendToArray(ctx context.Context, patientID primitive.ObjectID, field models.ArrayField, element interface{}) error {
	if !field.Valid() {
		return apperrors.Newf(apperrors.Internal, "unknown record array %q", field)
	}
	filter := bson.M{"_id": patientID}
	update := bson.M{"$push": bson.M{string(field): element}}

	res, err := p.collection().UpdateOne(ctx, filter, update)
	if err != nil {
		return writeError(apperrors.AppendFailed, "failed to append to "+string(field), err)
	}
	if res.MatchedCount == 0 {
		return apperrors.New(apperrors.NotFound, "patient not found")
	}
	if res.ModifiedCount == 0 {
		return apperrors.Newf(apperrors.AppendFailed, "could not append to %s", field)
	}
	return nil
}

// ReplaceInArray swaps the first element of the named array whose id equals
// elementID for element. The match on parent and element and the write happen
// in one update, so concurrent changes to other elements are never lost. A
// replacement identical to the stored element still counts as a match.
func (p *patientDatabase) ReplaceInArray(ctx context.Context, patientID primitive.ObjectID, field models.ArrayField, elementID primitive.ObjectID, element interface{}) error {
	if !field.Valid() {
		return apperrors.Newf(apperrors.Internal, "unknown record array %q", field)
	}
	filter := bson.M{"_id": patientID, field.IDPath(): elementID}
	update := bson.M{"$set": bson.M{field.Positional(): element}}

	res, err := p.collection().UpdateOne(ctx, filter, update)
	if err != nil {
		return writeError(apperrors.UpdateFailed, "failed to update "+string(field), err)
	}
	if res.MatchedCount == 0 {
		return apperrors.Newf(apperrors.NotFound, "no %s record with that id for this patient", field)
	}
	return nil
}

// EnsureIndexes creates the unique index on the document number
func (p *patientDatabase) EnsureIndexes(ctx context.Context) error {
	_, err := p.collection().CreateIndexes(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: models.DocumentField, Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_document"),
		},
	})
	return storeError("failed to create patient indexes", err)
}
