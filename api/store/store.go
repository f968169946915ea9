/* store.go
 * Contains the store struct and NewStore function. The store only holds client side state: the backend
 * session of each Discord user. Everything else lives in the prediction backend
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const sessionsCollection = "sessions"

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Collections struct {
		Sessions *mongo.Collection
	}
}

// Function for initialising Store. Opens the db connection and sets the collection values
// Preconditions: Receives context and strings containing dbName and mongoURI
// Postconditions: Returns pointer to the Store object, or error if it occurs
func NewStore(ctx context.Context, dbName string, mongoURI string) (*Store, error) {
	if dbName == "" {
		return nil, fmt.Errorf("database name cannot be empty")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	return newStoreFromClient(client, dbName), nil
}

func newStoreFromClient(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	s := &Store{
		Client:   client,
		Database: db,
	}
	s.Collections.Sessions = db.Collection(sessionsCollection)
	return s
}

// Ping checks that the primary is reachable
// Preconditions: Receives context
// Postconditions: Returns nil if mongo answered, or the wrapped error
func (s *Store) Ping(ctx context.Context) error {
	if err := s.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongo: %w", err)
	}
	return nil
}
