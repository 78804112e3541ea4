package appointmentOptions

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentOptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentOptionMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentOptionRepository {
	return &AppointmentOptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointmentOptions),
	}
}

func (r *AppointmentOptionMongoRepository) FindAll(ctx context.Context) ([]models.AppointmentOption, error) {
	cursor, err := r.Collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	appointmentOptions := make([]models.AppointmentOption, 0)
	if err := cursor.All(ctx, &appointmentOptions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return normalizeSlots(appointmentOptions), nil
}

func (r *AppointmentOptionMongoRepository) FindByName(ctx context.Context, name string) (*models.AppointmentOption, error) {
	var appointmentOption models.AppointmentOption
	err := r.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&appointmentOption)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointmentOption, nil
}

func (r *AppointmentOptionMongoRepository) FindSpecialities(ctx context.Context) ([]models.Speciality, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	specialities := make([]models.Speciality, 0)
	if err := cursor.All(ctx, &specialities); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return specialities, nil
}

func (r *AppointmentOptionMongoRepository) AggregateAvailability(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	cursor, err := r.Collection.Aggregate(ctx, BuildAvailabilityPipeline(date))
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}

	appointmentOptions := make([]models.AppointmentOption, 0)
	if err := cursor.All(ctx, &appointmentOptions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return normalizeSlots(appointmentOptions), nil
}

func normalizeSlots(appointmentOptions []models.AppointmentOption) []models.AppointmentOption {
	for i := range appointmentOptions {
		if appointmentOptions[i].Slots == nil {
			appointmentOptions[i].Slots = []string{}
		}
	}
	return appointmentOptions
}
