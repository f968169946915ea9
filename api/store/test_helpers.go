/* test_helpers.go
 * Contains test helper functions for store package tests
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"time"

	"previsioni-bot/api/shared"

	"go.mongodb.org/mongo-driver/mongo"
)

// NewTestStore wraps an already connected client, such as the mtest mock client
func NewTestStore(client *mongo.Client, db *mongo.Database, sessions *mongo.Collection) *Store {
	s := &Store{
		Client:   client,
		Database: db,
	}
	s.Collections.Sessions = sessions
	return s
}

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func CreateTestStore(mongoURI string) (*Store, func(), error) {
	store, err := NewStore(context.TODO(), "test_previsioni", mongoURI)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if store.Client != nil {
			// Drop test database
			store.Database.Drop(context.TODO())
			// Disconnect client
			store.Client.Disconnect(context.TODO())
		}
	}

	return store, cleanup, nil
}

// CreateSampleSession creates sample Session data for testing.
func CreateSampleSession(ownerID string) shared.Session {
	return shared.Session{
		OwnerID:  ownerID,
		Username: "tester",
		Account: shared.Account{
			ID:      "u-" + ownerID,
			Email:   "mario.rossi@example.com",
			Nome:    "Mario",
			Cognome: "Rossi",
			Ruolo:   "User",
		},
		Token:     "token-" + ownerID,
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}
