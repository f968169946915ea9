/* accounts.go
 * Contains login, registration and logout. These are the only operations that write or delete a session
 * on purpose
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"previsioni-bot/api/external"
	"previsioni-bot/api/shared"

	"go.mongodb.org/mongo-driver/mongo"
)

// Login authenticates the Discord user against the backend and stores the session
// Preconditions: Receives context, the Discord user and the backend credentials
// Postconditions: Returns the stored session, or an error if the backend refused or the session could not be saved
func (a *API) Login(ctx context.Context, user shared.User, email string, password string) (shared.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return shared.Session{}, fmt.Errorf("email and password are required")
	}

	response, err := a.Backend.Login(ctx, external.LoginRequest{Email: email, Password: password})
	if err != nil {
		return shared.Session{}, err
	}
	return a.storeSession(ctx, user, response)
}

// Register creates a backend account for the Discord user and stores the session
func (a *API) Register(ctx context.Context, user shared.User, request external.RegisterRequest) (shared.Session, error) {
	request.Email = strings.TrimSpace(request.Email)
	request.Nome = strings.TrimSpace(request.Nome)
	request.Cognome = strings.TrimSpace(request.Cognome)
	if request.Email == "" || request.Password == "" || request.Nome == "" || request.Cognome == "" {
		return shared.Session{}, fmt.Errorf("email, password, first name and last name are required")
	}

	response, err := a.Backend.Register(ctx, request)
	if err != nil {
		return shared.Session{}, err
	}
	return a.storeSession(ctx, user, response)
}

// Logout deletes the user's session. Returns ErrNotLoggedIn if there was none
func (a *API) Logout(ctx context.Context, ownerID string) error {
	err := a.Store.DeleteSession(ctx, ownerID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotLoggedIn
	}
	return err
}

// Session returns the stored session of a user, or ErrNotLoggedIn
func (a *API) Session(ctx context.Context, ownerID string) (shared.Session, error) {
	return a.session(ctx, ownerID)
}

func (a *API) storeSession(ctx context.Context, user shared.User, response *external.AuthResponse) (shared.Session, error) {
	session := shared.Session{
		OwnerID:   user.UserID,
		Username:  user.Username,
		Account:   response.User,
		Token:     response.Token,
		CreatedAt: a.now().UTC(),
	}
	if err := a.Store.SaveSession(ctx, session); err != nil {
		return shared.Session{}, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}
