package categories

import (
	"context"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryMongoRepository struct {
	Collection *mongo.Collection
}

func NewCategoryMongoRepository(db *mongo.Client, dbName string) contracts.CategoryRepository {
	return &CategoryMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCategories),
	}
}

func (repo *CategoryMongoRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var categories []models.Category
	err = cursor.All(ctx, &categories)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return categories, nil
}

func (repo *CategoryMongoRepository) FindByType(ctx context.Context, serviceProviderType string) (*models.Category, error) {
	var category models.Category
	err := repo.Collection.FindOne(ctx, bson.M{"serviceProviderType": serviceProviderType}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &category, nil
}
