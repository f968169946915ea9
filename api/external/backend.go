/* backend.go
 * Contains the Backend interface implemented by Client. The application layer depends on this interface
 * so tests can replace the HTTP backend with a mock
 * Authors: Zachary Bower
 */

package external

import "context"

// Backend is the set of backend operations used by the application
type Backend interface {
	// Predictions
	GetPartitaDetails(ctx context.Context, token string, partitaID string) (*PartitaDetailsResponse, error)
	SavePronostico(ctx context.Context, token string, request SaveRequest) (*Envelope, error)
	GetPronosticiByGiornata(ctx context.Context, token string, giornataID string, legaID string) (*PronosticiResponse, error)

	// Accounts
	Login(ctx context.Context, request LoginRequest) (*AuthResponse, error)
	Register(ctx context.Context, request RegisterRequest) (*AuthResponse, error)

	// Leagues
	GetLeghe(ctx context.Context, token string) (*LegheResponse, error)
	GetLegheUtente(ctx context.Context, token string, utenteID string) (*LegheResponse, error)
	JoinLega(ctx context.Context, token string, utenteID string, legaID string) (*Envelope, error)
	GetClassifica(ctx context.Context, token string, legaID string) (*ClassificaResponse, error)

	// Rounds
	GetGiornateCorrenti(ctx context.Context, token string) (*GiornateResponse, error)
	GetPartiteByGiornata(ctx context.Context, token string, giornataID string) (*PartiteResponse, error)
}

var _ Backend = (*Client)(nil)
