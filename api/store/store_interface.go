/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"time"

	"previsioni-bot/api/shared"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	SaveSession(ctx context.Context, session shared.Session) error
	GetSession(ctx context.Context, ownerID string) (shared.Session, error)
	DeleteSession(ctx context.Context, ownerID string) error
	EnsureIndexes(ctx context.Context, sessionTTL time.Duration) error
	Ping(ctx context.Context) error

	// Getter methods for accessing fields
	GetDatabase() interface{ Name() string }
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// GetDatabase returns the database instance
func (s *Store) GetDatabase() interface{ Name() string } {
	return s.Database
}

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}
