package repository

import (
	"context"
	"testing"
	"time"

	"stickynotes/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestUserRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("AddUser", func(mt *mtest.T) {
		repo := &UserRepo{MongoCollection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.AddUser(ctx, &model.User{UserID: "u1", Username: "ada", Password: "salt$hash"})
		require.NoError(mt, err)
	})

	mt.Run("AddUser duplicate username", func(mt *mtest.T) {
		repo := &UserRepo{MongoCollection: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: users index: unique_username",
		}))

		err := repo.AddUser(ctx, &model.User{UserID: "u2", Username: "ada", Password: "salt$hash"})
		assert.ErrorIs(mt, err, ErrDuplicate)
	})

	mt.Run("AddUser missing password", func(mt *mtest.T) {
		repo := &UserRepo{MongoCollection: mt.Coll}

		err := repo.AddUser(ctx, &model.User{UserID: "u3", Username: "ada"})
		assert.Error(mt, err)
	})

	mt.Run("FindUserByUsername", func(mt *mtest.T) {
		repo := &UserRepo{MongoCollection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "user_id", Value: "u1"},
			{Key: "username", Value: "ada"},
			{Key: "password", Value: "salt$hash"},
			{Key: "created_at", Value: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		}))

		user, err := repo.FindUserByUsername(ctx, "ada")
		require.NoError(mt, err)
		assert.Equal(mt, "u1", user.UserID)
		assert.Equal(mt, "salt$hash", user.Password)
	})

	mt.Run("FindUser missing", func(mt *mtest.T) {
		repo := &UserRepo{MongoCollection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := repo.FindUser(ctx, "ghost")
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}
