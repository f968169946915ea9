/* sessions.go
 * Contains the methods for interacting with the sessions collection. A session is written on login or
 * registration, read at the start of every authenticated command and deleted on logout or when the
 * backend stops accepting its token
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"previsioni-bot/api/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SaveSession stores a user's session in the db
// Preconditions: Receives context and the Session to store. OwnerID must be set
// Postconditions: Stores or replaces the owner's session, or returns an error if the operation was unsuccessful
func (s *Store) SaveSession(ctx context.Context, session shared.Session) error {
	if session.OwnerID == "" {
		return fmt.Errorf("session has no owner")
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	// Upsert by owner so two logins racing for the same user cannot both insert
	opts := options.Update().SetUpsert(true)
	_, err := s.Collections.Sessions.UpdateOne(ctx, bson.M{"ownerid": session.OwnerID}, bson.M{"$set": session}, opts)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession does DB lookup and gets the session for a user
// Preconditions: Receives context and the Discord user id
// Postconditions: Returns the user's session if it exists, mongo.ErrNoDocuments if it doesn't, or an error if it occurs
func (s *Store) GetSession(ctx context.Context, ownerID string) (shared.Session, error) {
	var result shared.Session
	err := s.Collections.Sessions.FindOne(ctx, bson.M{"ownerid": ownerID}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return shared.Session{}, err
		}
		return shared.Session{}, fmt.Errorf("error fetching session from db: %w", err)
	}
	return result, nil
}

// DeleteSession removes the session of a user
// Preconditions: Receives context and the Discord user id
// Postconditions: Returns nil if a session was deleted, mongo.ErrNoDocuments if there was none, or an error if it occurs
func (s *Store) DeleteSession(ctx context.Context, ownerID string) error {
	result, err := s.Collections.Sessions.DeleteOne(ctx, bson.M{"ownerid": ownerID})
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// EnsureIndexes creates the unique owner index and the TTL index that expires old sessions.
// A sessionTTL of zero disables expiry
func (s *Store) EnsureIndexes(ctx context.Context, sessionTTL time.Duration) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if sessionTTL > 0 {
		models = append(models, mongo.IndexModel{
			Keys:    bson.D{{Key: "createdat", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(sessionTTL.Seconds())),
		})
	}

	if _, err := s.Collections.Sessions.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("failed to create session indexes: %w", err)
	}
	return nil
}
