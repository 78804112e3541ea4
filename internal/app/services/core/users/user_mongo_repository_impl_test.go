package users

import (
	"context"
	"testing"

	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestUserMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("UpsertByEmail inserts a new user", func(mt *mtest.T) {
		repo := &UserMongoRepository{Collection: mt.Coll}
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: id}}}},
		))

		userID, inserted, err := repo.UpsertByEmail(context.Background(), &models.User{Email: "patient@example.com", Name: "Jane"})
		require.NoError(mt, err)
		assert.True(mt, inserted)
		assert.Equal(mt, id.Hex(), userID)
	})

	mt.Run("UpsertByEmail leaves an existing user alone", func(mt *mtest.T) {
		repo := &UserMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		userID, inserted, err := repo.UpsertByEmail(context.Background(), &models.User{Email: "patient@example.com"})
		require.NoError(mt, err)
		assert.False(mt, inserted)
		assert.Empty(mt, userID)
	})

	mt.Run("SetRoleByID rejects malformed id", func(mt *mtest.T) {
		repo := &UserMongoRepository{Collection: mt.Coll}

		_, err := repo.SetRoleByID(context.Background(), "not-an-object-id", "admin")
		var customErr *exceptions.CustomError
		require.ErrorAs(mt, err, &customErr)
		assert.Equal(mt, 400, customErr.StatusCode)
	})

	mt.Run("SetRoleByID reports counts", func(mt *mtest.T) {
		repo := &UserMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		got, err := repo.SetRoleByID(context.Background(), primitive.NewObjectID().Hex(), "admin")
		require.NoError(mt, err)
		assert.True(mt, got.Acknowledged)
		assert.Equal(mt, int64(1), got.MatchedCount)
		assert.Equal(mt, int64(1), got.ModifiedCount)
		assert.Empty(mt, got.UpsertedID)
	})

	mt.Run("FindByEmail returns nil for unknown email", func(mt *mtest.T) {
		repo := &UserMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "doctorsPortal.users", mtest.FirstBatch))

		user, err := repo.FindByEmail(context.Background(), "nobody@example.com")
		require.NoError(mt, err)
		assert.Nil(mt, user)
	})

	mt.Run("FindByEmail decodes role", func(mt *mtest.T) {
		repo := &UserMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "doctorsPortal.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "admin@example.com"},
			{Key: "role", Value: "admin"},
		}))

		user, err := repo.FindByEmail(context.Background(), "admin@example.com")
		require.NoError(mt, err)
		require.NotNil(mt, user)
		assert.Equal(mt, "admin", user.Role)
	})
}
