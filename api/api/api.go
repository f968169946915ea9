/* api.go
 * This file contains the API struct and the helpers shared by its methods. The API is the only thing the
 * front-end talks to: it owns the session store and the backend client, and holds no other state than
 * the set of submissions currently in flight
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"previsioni-bot/api/config"
	"previsioni-bot/api/external"
	"previsioni-bot/api/metrics"
	"previsioni-bot/api/shared"
	"previsioni-bot/api/store"

	"go.mongodb.org/mongo-driver/mongo"
)

// API provides methods for interacting with the prediction backend on behalf of Discord users
type API struct {
	Store   store.Interface
	Backend external.Backend
	Metrics *metrics.Metrics

	// Now is the clock used for deadline checks
	Now func() time.Time

	mu       sync.Mutex
	inflight map[string]struct{}
}

// New creates an API from already built dependencies
func New(s store.Interface, backend external.Backend, m *metrics.Metrics) *API {
	return &API{
		Store:    s,
		Backend:  backend,
		Metrics:  m,
		Now:      time.Now,
		inflight: make(map[string]struct{}),
	}
}

// NewAPI creates a new API instance with the provided configuration
// Preconditions: Receives context, a validated config and the metrics collector (may be nil)
// Postconditions: Returns the API connected to mongo and the backend, or an error if it occurs
func NewAPI(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*API, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s, err := store.NewStore(ctx, cfg.Mongo.Database, cfg.Mongo.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	if err := s.EnsureIndexes(ctx, cfg.Mongo.SessionTTL); err != nil {
		// Sessions still work without the indexes, they just never expire
		log.Println("failed to create session indexes:", err)
	}

	client, err := external.NewClient(cfg.Backend.URL,
		external.WithTimeout(cfg.Backend.Timeout),
		external.WithRateLimit(cfg.Backend.RateLimit, cfg.Backend.Burst),
		external.WithMetrics(m),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize backend client: %w", err)
	}

	return New(s, client, m), nil
}

func (a *API) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// Ready reports whether the session store can be reached
func (a *API) Ready(ctx context.Context) error {
	if a.Store == nil {
		return fmt.Errorf("store is not configured")
	}
	return a.Store.Ping(ctx)
}

// session loads the stored session of a Discord user
func (a *API) session(ctx context.Context, ownerID string) (shared.Session, error) {
	session, err := a.Store.GetSession(ctx, ownerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return shared.Session{}, ErrNotLoggedIn
		}
		return shared.Session{}, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}

// withSession loads the owner's session and runs fn with it. A backend error caused by a refused token
// deletes the session
func (a *API) withSession(ctx context.Context, ownerID string, fn func(session shared.Session) error) error {
	session, err := a.session(ctx, ownerID)
	if err != nil {
		return err
	}
	if err := fn(session); err != nil {
		return a.checkUnauthorized(ctx, ownerID, err)
	}
	return nil
}

// checkUnauthorized deletes the session when err says the backend refused the token
func (a *API) checkUnauthorized(ctx context.Context, ownerID string, err error) error {
	if !errors.Is(err, external.ErrUnauthorized) {
		return err
	}

	if delErr := a.Store.DeleteSession(ctx, ownerID); delErr != nil && !errors.Is(delErr, mongo.ErrNoDocuments) {
		log.Printf("failed to delete expired session for %s: %v", ownerID, delErr)
	}
	return fmt.Errorf("%w: %w", ErrSessionExpired, err)
}

// acquire marks key as in flight. Returns false if it already was
func (a *API) acquire(key string) (func(), bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.inflight == nil {
		a.inflight = make(map[string]struct{})
	}
	if _, busy := a.inflight[key]; busy {
		return nil, false
	}
	a.inflight[key] = struct{}{}

	return func() {
		a.mu.Lock()
		delete(a.inflight, key)
		a.mu.Unlock()
	}, true
}
