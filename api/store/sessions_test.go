/* sessions_test.go
 * Contains unit tests for sessions.go using the mtest mock deployment
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"previsioni-bot/api/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func sessionDoc(ownerID string) bson.D {
	return bson.D{
		{Key: "ownerid", Value: ownerID},
		{Key: "username", Value: "tester"},
		{Key: "token", Value: "token-" + ownerID},
		{Key: "account", Value: bson.D{
			{Key: "id", Value: "u-" + ownerID},
			{Key: "email", Value: "mario.rossi@example.com"},
			{Key: "nome", Value: "Mario"},
			{Key: "cognome", Value: "Rossi"},
			{Key: "ruolo", Value: "Admin"},
		}},
		{Key: "createdat", Value: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)},
	}
}

// region SaveSession tests

// upsertResponse is the reply of an update that created or replaced one document
func upsertResponse() bson.D {
	return bson.D{
		{Key: "ok", Value: 1},
		{Key: "n", Value: 1},
		{Key: "nModified", Value: 0},
	}
}

func TestSaveSession_UpsertsByOwner(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sends a single upsert keyed by owner", func(mt *mtest.T) {
		store := NewTestStore(mt.Client, mt.DB, mt.Coll)

		mt.AddMockResponses(upsertResponse())

		err := store.SaveSession(context.Background(), CreateSampleSession("owner1"))
		require.NoError(t, err)

		started := mt.GetStartedEvent()
		require.NotNil(t, started)
		assert.Equal(t, "update", started.CommandName)
		assert.True(t, started.Command.Lookup("updates", "0", "upsert").Boolean())
		assert.Equal(t, "owner1", started.Command.Lookup("updates", "0", "q", "ownerid").StringValue())
		assert.Nil(t, mt.GetStartedEvent(), "no lookup or insert before the upsert")
	})
}

func TestSaveSession_RepeatedLoginSameOwner(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("a second save for the same owner updates instead of inserting", func(mt *mtest.T) {
		store := NewTestStore(mt.Client, mt.DB, mt.Coll)

		updated := bson.D{
			{Key: "ok", Value: 1},
			{Key: "n", Value: 1},
			{Key: "nModified", Value: 1},
		}
		mt.AddMockResponses(upsertResponse(), updated)

		first := CreateSampleSession("owner1")
		second := CreateSampleSession("owner1")
		second.Token = "fresh-token"

		require.NoError(t, store.SaveSession(context.Background(), first))
		require.NoError(t, store.SaveSession(context.Background(), second))

		for i := 0; i < 2; i++ {
			started := mt.GetStartedEvent()
			require.NotNil(t, started)
			assert.Equal(t, "update", started.CommandName)
		}
	})
}

func TestSaveSession_NoOwner(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("rejects a session without owner", func(mt *mtest.T) {
		store := NewTestStore(mt.Client, mt.DB, mt.Coll)

		err := store.SaveSession(context.Background(), shared.Session{Token: "t"})
		assert.Error(t, err)
	})
}

func TestSaveSession_WriteError(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns error when the upsert fails", func(mt *mtest.T) {
		store := NewTestStore(mt.Client, mt.DB, mt.Coll)

		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := store.SaveSession(context.Background(), CreateSampleSession("owner1"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save session")
	})
}

func TestSaveSession_CommandError(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns error when the server fails", func(mt *mtest.T) {
		store := NewTestStore(mt.Client, mt.DB, mt.Coll)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "database error",
		}))

		err := store.SaveSession(context.Background(), CreateSampleSession("owner1"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database error")
	})
}

// endregion

// region GetSession tests

func TestGetSession_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("gets the session", func(mt *mtest.T) {
		store := NewTestStore(mt.Client, mt.DB, mt.Coll)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.sessions", mtest.FirstBatch, sessionDoc("owner1")))

		session, err := store.GetSession(context.Background(), "owner1")
		require.NoError(t, err)
		assert.Equal(t, "owner1", session.OwnerID)
		assert.Equal(t, "token-owner1", session.Token)
		assert.Equal(t, "u-owner1", session.Account.ID)
		assert.Equal(t, "Mario Rossi", session.Account.FullName())
		assert.True(t, session.IsAdmin())
	})
}

func TestGetSession_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns ErrNoDocuments when missing", func(mt *mtest.T) {
		store := NewTestStore(mt.Client, mt.DB, mt.Coll)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.sessions", mtest.FirstBatch))

		_, err := store.GetSession(context.Background(), "ghost")
		assert.True(t, errors.Is(err, mongo.ErrNoDocuments))
	})
}

func TestGetSession_Error(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("wraps db errors", func(mt *mtest.T) {
		store := NewTestStore(mt.Client, mt.DB, mt.Coll)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "database error",
		}))

		_, err := store.GetSession(context.Background(), "owner1")
		require.Error(t, err)
		assert.False(t, errors.Is(err, mongo.ErrNoDocuments))
		assert.Contains(t, err.Error(), "error fetching session from db")
	})
}

// endregion

// region DeleteSession tests

func TestDeleteSession_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deletes the session", func(mt *mtest.T) {
		store := NewTestStore(mt.Client, mt.DB, mt.Coll)

		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}})

		err := store.DeleteSession(context.Background(), "owner1")
		assert.NoError(t, err)
	})
}

func TestDeleteSession_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns ErrNoDocuments when nothing was deleted", func(mt *mtest.T) {
		store := NewTestStore(mt.Client, mt.DB, mt.Coll)

		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})

		err := store.DeleteSession(context.Background(), "ghost")
		assert.True(t, errors.Is(err, mongo.ErrNoDocuments))
	})
}

func TestDeleteSession_Error(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("wraps db errors", func(mt *mtest.T) {
		store := NewTestStore(mt.Client, mt.DB, mt.Coll)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "database error",
		}))

		err := store.DeleteSession(context.Background(), "owner1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete session")
	})
}

// endregion

// region EnsureIndexes tests

func TestEnsureIndexes_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates indexes", func(mt *mtest.T) {
		store := NewTestStore(mt.Client, mt.DB, mt.Coll)

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := store.EnsureIndexes(context.Background(), 30*24*time.Hour)
		assert.NoError(t, err)
	})
}

func TestEnsureIndexes_Error(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("wraps errors", func(mt *mtest.T) {
		store := NewTestStore(mt.Client, mt.DB, mt.Coll)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    85,
			Message: "index options conflict",
		}))

		err := store.EnsureIndexes(context.Background(), 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create session indexes")
	})
}

// endregion
