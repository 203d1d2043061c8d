package blogs

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

type BlogMongoRepository struct {
	Collection *mongo.Collection
}

func NewBlogMongoRepository(db *mongo.Client, dbName string) contracts.BlogRepository {
	return &BlogMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBlogs),
	}
}

func (repo *BlogMongoRepository) Insert(ctx context.Context, blog *models.Blog) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, blog)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, _ := result.InsertedID.(primitive.ObjectID)
	return objectID.Hex(), nil
}

func (repo *BlogMongoRepository) FindAll(ctx context.Context) ([]models.Blog, error) {
	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var blogs []models.Blog
	err = cursor.All(ctx, &blogs)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return blogs, nil
}

func (repo *BlogMongoRepository) FindPage(ctx context.Context, page, pageSize int) ([]models.Blog, error) {
	findOptions := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var blogs []models.Blog
	err = cursor.All(ctx, &blogs)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return blogs, nil
}

func (repo *BlogMongoRepository) Count(ctx context.Context) (int64, error) {
	total, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return total, nil
}

func (repo *BlogMongoRepository) FindByID(ctx context.Context, blogID string) (*models.Blog, error) {
	objectID, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var blog models.Blog
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&blog)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &blog, nil
}

func (repo *BlogMongoRepository) FindByAuthorEmail(ctx context.Context, authorEmail string) ([]models.Blog, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{"authorEmail": authorEmail})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var blogs []models.Blog
	err = cursor.All(ctx, &blogs)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return blogs, nil
}
