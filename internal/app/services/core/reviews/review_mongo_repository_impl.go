package reviews

import (
	"context"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewMongoRepository struct {
	Collection *mongo.Collection
}

func NewReviewMongoRepository(db *mongo.Client, dbName string) contracts.ReviewRepository {
	return &ReviewMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionReviews),
	}
}

func (repo *ReviewMongoRepository) FindAll(ctx context.Context) ([]models.Review, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var reviews []models.Review
	err = cursor.All(ctx, &reviews)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reviews, nil
}
