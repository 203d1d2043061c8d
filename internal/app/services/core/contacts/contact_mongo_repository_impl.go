package contacts

import (
	"context"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ContactMongoRepository struct {
	Collection *mongo.Collection
}

func NewContactMongoRepository(db *mongo.Client, dbName string) contracts.ContactRepository {
	return &ContactMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionContacts),
	}
}

func (repo *ContactMongoRepository) Insert(ctx context.Context, contact *models.Contact) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, contact)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, _ := result.InsertedID.(primitive.ObjectID)
	return objectID.Hex(), nil
}

func (repo *ContactMongoRepository) FindAll(ctx context.Context) ([]models.Contact, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var contacts []models.Contact
	err = cursor.All(ctx, &contacts)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return contacts, nil
}
