package users

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName string) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (r *UserMongoRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.Collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return users, nil
}

func (r *UserMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

// UpsertByEmail inserts user unless a user with the same email exists. The
// existing document is left untouched.
func (r *UserMongoRepository) UpsertByEmail(ctx context.Context, user *models.User) (string, bool, error) {
	onInsert := bson.M{"email": user.Email}
	if user.Name != "" {
		onInsert["name"] = user.Name
	}

	result, err := r.Collection.UpdateOne(ctx,
		bson.M{"email": user.Email},
		bson.M{"$setOnInsert": onInsert},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", false, nil
		}
		return "", false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.UpsertedID == nil {
		return "", false, nil
	}
	return stringifyID(result.UpsertedID), true, nil
}

func (r *UserMongoRepository) SetRoleByID(ctx context.Context, userID, role string) (*responses.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"role": role}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}

	updateResult := &responses.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}
	if result.UpsertedID != nil {
		updateResult.UpsertedID = stringifyID(result.UpsertedID)
	}
	return updateResult, nil
}

func stringifyID(id interface{}) string {
	if objectID, ok := id.(primitive.ObjectID); ok {
		return objectID.Hex()
	}
	return fmt.Sprint(id)
}
