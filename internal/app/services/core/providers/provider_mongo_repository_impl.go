package providers

import (
	"context"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProviderMongoRepository struct {
	Collection *mongo.Collection
}

func NewProviderMongoRepository(db *mongo.Client, dbName string) contracts.ProviderRepository {
	return &ProviderMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProviders),
	}
}

func (repo *ProviderMongoRepository) Insert(ctx context.Context, provider *models.Provider) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, provider)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, _ := result.InsertedID.(primitive.ObjectID)
	return objectID.Hex(), nil
}

func (repo *ProviderMongoRepository) FindAll(ctx context.Context) ([]models.Provider, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var providers []models.Provider
	err = cursor.All(ctx, &providers)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return providers, nil
}

func (repo *ProviderMongoRepository) FindByID(ctx context.Context, providerID string) (*models.Provider, error) {
	objectID, err := primitive.ObjectIDFromHex(providerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var provider models.Provider
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&provider)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &provider, nil
}

func (repo *ProviderMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Provider, error) {
	var provider models.Provider
	err := repo.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&provider)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &provider, nil
}

func (repo *ProviderMongoRepository) FindAuthorByEmail(ctx context.Context, email string) (*models.BlogAuthor, error) {
	findOptions := options.FindOne().SetProjection(bson.M{"name": 1, "userImg": 1})
	var author models.BlogAuthor
	err := repo.Collection.FindOne(ctx, bson.M{"email": email}, findOptions).Decode(&author)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &author, nil
}

func (repo *ProviderMongoRepository) DeleteByID(ctx context.Context, providerID string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(providerID)
	if err != nil {
		return 0, exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}
