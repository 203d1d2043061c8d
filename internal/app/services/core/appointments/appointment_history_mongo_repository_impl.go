package appointments

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

type AppointmentHistoryMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentHistoryMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentHistoryRepository {
	return &AppointmentHistoryMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointmentHistory),
	}
}

func (repo *AppointmentHistoryMongoRepository) Insert(ctx context.Context, history *models.AppointmentHistory) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, history)
	if err != nil {
		return "", exceptions.ErrHistoryInsert(err)
	}
	objectID, _ := result.InsertedID.(primitive.ObjectID)
	return objectID.Hex(), nil
}

func (repo *AppointmentHistoryMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.AppointmentHistory, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var history models.AppointmentHistory
	err = repo.Collection.FindOne(ctx, bson.M{"appointmentId": objectID}).Decode(&history)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &history, nil
}
