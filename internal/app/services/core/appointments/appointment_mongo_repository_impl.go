package appointments

import (
	"context"
	"time"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (repo *AppointmentMongoRepository) Insert(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, _ := result.InsertedID.(primitive.ObjectID)
	return objectID.Hex(), nil
}

func (repo *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var appointment models.Appointment
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (repo *AppointmentMongoRepository) FindByIDs(ctx context.Context, appointmentIDs []string) ([]models.Appointment, error) {
	objectIDs, err := toObjectIDs(appointmentIDs)
	if err != nil {
		return nil, err
	}

	cursor, err := repo.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var appointments []models.Appointment
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) FindByEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := repo.Collection.Find(ctx, bson.M{"email": email}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var appointments []models.Appointment
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) FindByProviderEmail(ctx context.Context, providerEmail string) ([]models.Appointment, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{"providerEmail": providerEmail})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var appointments []models.Appointment
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) FindByPaymentID(ctx context.Context, paymentID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := repo.Collection.FindOne(ctx, bson.M{"paymentId": paymentID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (repo *AppointmentMongoRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var appointments []models.Appointment
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) DeleteByID(ctx context.Context, appointmentID string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return 0, exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func (repo *AppointmentMongoRepository) UpdateAssignment(ctx context.Context, appointmentID, providerEmail, status string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"providerEmail": providerEmail,
		"status":        status,
	}}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *AppointmentMongoRepository) UpdateProgress(ctx context.Context, appointmentID, status, userMeetingLink string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"status":          status,
		"userMeetingLink": userMeetingLink,
	}}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *AppointmentMongoRepository) MarkPending(ctx context.Context, appointmentIDs []string, paymentID, customerEmail string, pendingAt time.Time) (int64, error) {
	objectIDs, err := toObjectIDs(appointmentIDs)
	if err != nil {
		return 0, err
	}

	filter := bson.M{"_id": bson.M{"$in": objectIDs}}
	update := bson.M{"$set": bson.M{
		"paymentId":     paymentID,
		"status":        models.AppointmentStatusPending,
		"customerEmail": customerEmail,
		"pendingAt":     pendingAt,
	}}
	result, err := repo.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

func (repo *AppointmentMongoRepository) MarkPaidByPaymentID(ctx context.Context, paymentID string) (int64, error) {
	filter := bson.M{"paymentId": paymentID}
	update := bson.M{"$set": bson.M{"status": models.AppointmentStatusPaid}}
	result, err := repo.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

func (repo *AppointmentMongoRepository) RevertStalePending(ctx context.Context, olderThan time.Time) (int64, error) {
	filter := bson.M{
		"status":    models.AppointmentStatusPending,
		"pendingAt": bson.M{"$lt": olderThan},
	}
	update := bson.M{
		"$set":   bson.M{"status": models.AppointmentStatusUnpaid},
		"$unset": bson.M{"paymentId": "", "customerEmail": "", "pendingAt": ""},
	}
	result, err := repo.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

func toObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		objectIDs = append(objectIDs, objectID)
	}
	return objectIDs, nil
}
