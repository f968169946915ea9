/* test_mocks.go
 * Contains mock structures for testing the API package and its consumers
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"sync"
	"time"

	"previsioni-bot/api/external"
	"previsioni-bot/api/shared"
	"previsioni-bot/api/store"

	"go.mongodb.org/mongo-driver/mongo"
)

// MockStore implements the Store interface for testing
type MockStore struct {
	mu       sync.Mutex
	Sessions map[string]shared.Session

	// Error injection for testing error paths
	SaveSessionError   error
	GetSessionError    error
	DeleteSessionError error
	EnsureIndexesError error
	PingError          error

	DatabaseName string
}

var _ store.Interface = (*MockStore)(nil)

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// NewMockStore creates a new MockStore with default values
func NewMockStore() *MockStore {
	return &MockStore{
		Sessions:     make(map[string]shared.Session),
		DatabaseName: "test_db",
	}
}

// AddSession stores a session directly
func (m *MockStore) AddSession(session shared.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sessions[session.OwnerID] = session
}

// HasSession reports whether ownerID has a session
func (m *MockStore) HasSession(ownerID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Sessions[ownerID]
	return ok
}

// SaveSession mock implementation
func (m *MockStore) SaveSession(ctx context.Context, session shared.Session) error {
	if m.SaveSessionError != nil {
		return m.SaveSessionError
	}
	m.AddSession(session)
	return nil
}

// GetSession mock implementation
func (m *MockStore) GetSession(ctx context.Context, ownerID string) (shared.Session, error) {
	if m.GetSessionError != nil {
		return shared.Session{}, m.GetSessionError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.Sessions[ownerID]
	if !ok {
		return shared.Session{}, mongo.ErrNoDocuments
	}
	return session, nil
}

// DeleteSession mock implementation
func (m *MockStore) DeleteSession(ctx context.Context, ownerID string) error {
	if m.DeleteSessionError != nil {
		return m.DeleteSessionError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Sessions[ownerID]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.Sessions, ownerID)
	return nil
}

// EnsureIndexes mock implementation
func (m *MockStore) EnsureIndexes(ctx context.Context, sessionTTL time.Duration) error {
	return m.EnsureIndexesError
}

// Ping mock implementation
func (m *MockStore) Ping(ctx context.Context) error {
	return m.PingError
}

// GetDatabase mock implementation
func (m *MockStore) GetDatabase() interface{ Name() string } {
	return &mockDatabase{name: m.DatabaseName}
}

// GetClient mock implementation
func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return nil
}

// MockBackend implements external.Backend for testing. Responses are canned, calls are counted
type MockBackend struct {
	mu sync.Mutex

	// Canned responses
	Details     *external.PartitaDetailsResponse
	SaveMessage string
	Pronostici  []external.Pronostico
	Auth        *external.AuthResponse
	Leghe       []external.Lega
	MyLeghe     []external.Lega
	Classifica  *external.ClassificaResponse
	Giornate    []external.Giornata
	Partite     []external.Partita

	// Error injection for testing error paths
	DetailsError    error
	SaveError       error
	PronosticiError error
	AuthError       error
	LegheError      error
	JoinError       error
	ClassificaError error
	GiornateError   error
	PartiteError    error

	// SaveHook runs inside SavePronostico before it returns, used to hold a submission in flight
	SaveHook func()

	// Recorded calls
	Calls        map[string]int
	SaveRequests []external.SaveRequest
	Tokens       []string
	JoinedLeague string
}

var _ external.Backend = (*MockBackend)(nil)

// NewMockBackend creates a new MockBackend with empty responses
func NewMockBackend() *MockBackend {
	return &MockBackend{Calls: make(map[string]int)}
}

func (m *MockBackend) record(op string, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Calls == nil {
		m.Calls = make(map[string]int)
	}
	m.Calls[op]++
	m.Tokens = append(m.Tokens, token)
}

// CallCount returns how many times op was called
func (m *MockBackend) CallCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[op]
}

// TotalCalls returns the number of calls over all operations
func (m *MockBackend) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.Calls {
		total += n
	}
	return total
}

// Saved returns a copy of the recorded save requests
func (m *MockBackend) Saved() []external.SaveRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]external.SaveRequest(nil), m.SaveRequests...)
}

func (m *MockBackend) GetPartitaDetails(ctx context.Context, token string, partitaID string) (*external.PartitaDetailsResponse, error) {
	m.record("getPartitaDetails", token)
	if m.DetailsError != nil {
		return nil, m.DetailsError
	}
	if m.Details == nil {
		return &external.PartitaDetailsResponse{Envelope: external.Envelope{Success: true}}, nil
	}
	return m.Details, nil
}

func (m *MockBackend) SavePronostico(ctx context.Context, token string, request external.SaveRequest) (*external.Envelope, error) {
	m.record("save", token)
	m.mu.Lock()
	m.SaveRequests = append(m.SaveRequests, request)
	m.mu.Unlock()

	if m.SaveHook != nil {
		m.SaveHook()
	}
	if m.SaveError != nil {
		return nil, m.SaveError
	}
	return &external.Envelope{Success: true, Message: m.SaveMessage}, nil
}

func (m *MockBackend) GetPronosticiByGiornata(ctx context.Context, token string, giornataID string, legaID string) (*external.PronosticiResponse, error) {
	m.record("getByGiornata", token)
	if m.PronosticiError != nil {
		return nil, m.PronosticiError
	}
	return &external.PronosticiResponse{Envelope: external.Envelope{Success: true}, Pronostici: m.Pronostici}, nil
}

func (m *MockBackend) Login(ctx context.Context, request external.LoginRequest) (*external.AuthResponse, error) {
	m.record("login", "")
	if m.AuthError != nil {
		return nil, m.AuthError
	}
	return m.Auth, nil
}

func (m *MockBackend) Register(ctx context.Context, request external.RegisterRequest) (*external.AuthResponse, error) {
	m.record("register", "")
	if m.AuthError != nil {
		return nil, m.AuthError
	}
	return m.Auth, nil
}

func (m *MockBackend) GetLeghe(ctx context.Context, token string) (*external.LegheResponse, error) {
	m.record("getLeghe", token)
	if m.LegheError != nil {
		return nil, m.LegheError
	}
	return &external.LegheResponse{Envelope: external.Envelope{Success: true}, Leghe: m.Leghe}, nil
}

func (m *MockBackend) GetLegheUtente(ctx context.Context, token string, utenteID string) (*external.LegheResponse, error) {
	m.record("getLegheUtente", token)
	if m.LegheError != nil {
		return nil, m.LegheError
	}
	return &external.LegheResponse{Envelope: external.Envelope{Success: true}, Leghe: m.MyLeghe}, nil
}

func (m *MockBackend) JoinLega(ctx context.Context, token string, utenteID string, legaID string) (*external.Envelope, error) {
	m.record("join", token)
	if m.JoinError != nil {
		return nil, m.JoinError
	}
	m.mu.Lock()
	m.JoinedLeague = legaID
	m.mu.Unlock()
	return &external.Envelope{Success: true}, nil
}

func (m *MockBackend) GetClassifica(ctx context.Context, token string, legaID string) (*external.ClassificaResponse, error) {
	m.record("getClassifica", token)
	if m.ClassificaError != nil {
		return nil, m.ClassificaError
	}
	if m.Classifica == nil {
		return &external.ClassificaResponse{Envelope: external.Envelope{Success: true}}, nil
	}
	return m.Classifica, nil
}

func (m *MockBackend) GetGiornateCorrenti(ctx context.Context, token string) (*external.GiornateResponse, error) {
	m.record("getGiornate", token)
	if m.GiornateError != nil {
		return nil, m.GiornateError
	}
	rounds := append([]external.Giornata(nil), m.Giornate...)
	return &external.GiornateResponse{Envelope: external.Envelope{Success: true}, Giornate: rounds}, nil
}

func (m *MockBackend) GetPartiteByGiornata(ctx context.Context, token string, giornataID string) (*external.PartiteResponse, error) {
	m.record("getPartite", token)
	if m.PartiteError != nil {
		return nil, m.PartiteError
	}
	matches := append([]external.Partita(nil), m.Partite...)
	return &external.PartiteResponse{Envelope: external.Envelope{Success: true}, Partite: matches}, nil
}
