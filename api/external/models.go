/* models.go
 * Contains the request and response structs exchanged with the prediction backend
 * Authors: Zachary Bower
 */

package external

import (
	"time"

	"previsioni-bot/api/shared"
)

// Envelope is the part common to every backend response
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Giornata is a match day. Predictions for its matches close at ChiusuraPronostici
type Giornata struct {
	ID                 string    `json:"id"`
	Numero             int       `json:"numero"`
	ChiusuraPronostici time.Time `json:"chiusura_pronostici"`
}

// Partita is a read-only snapshot of a match
type Partita struct {
	ID                   string             `json:"id"`
	GiornataID           string             `json:"giornata_id"`
	SquadraCasaID        string             `json:"squadra_casa_id"`
	SquadraCasaNome      string             `json:"squadra_casa_nome"`
	SquadraTrasfertaID   string             `json:"squadra_trasferta_id"`
	SquadraTrasfertaNome string             `json:"squadra_trasferta_nome"`
	DataPartita          time.Time          `json:"data_partita"`
	Stato                shared.MatchStatus `json:"stato"`
	GolCasa              *int               `json:"gol_casa,omitempty"`
	GolTrasferta         *int               `json:"gol_trasferta,omitempty"`
}

// Giocatore is a player on one of the teams of a match
type Giocatore struct {
	ID      string `json:"id"`
	Nome    string `json:"nome"`
	Cognome string `json:"cognome"`
	Ruolo   string `json:"ruolo"`
}

// FullName returns "Nome Cognome"
func (g Giocatore) FullName() string {
	if g.Nome == "" {
		return g.Cognome
	}
	if g.Cognome == "" {
		return g.Nome
	}
	return g.Nome + " " + g.Cognome
}

// Pronostico is a saved prediction as returned by the backend. Marcatori is the JSON encoded id list
type Pronostico struct {
	ID           string `json:"id"`
	PartitaID    string `json:"partita_id"`
	LegaID       string `json:"lega_id"`
	UtenteID     string `json:"utente_id"`
	Segno        string `json:"segno"`
	GolCasa      int    `json:"gol_casa"`
	GolTrasferta int    `json:"gol_trasferta"`
	Marcatori    string `json:"marcatori"`
	Punti        *int   `json:"punti,omitempty"`
}

// PartitaDetailsResponse is the response to pronostici.getPartitaDetails
type PartitaDetailsResponse struct {
	Envelope
	Giornata           Giornata    `json:"giornata"`
	Partita            Partita     `json:"partita"`
	Pronostico         *Pronostico `json:"pronostico,omitempty"`
	GiocatoriCasa      []Giocatore `json:"giocatori_casa"`
	GiocatoriTrasferta []Giocatore `json:"giocatori_trasferta"`
}

// SaveRequest is the payload of pronostici.save
type SaveRequest struct {
	PartitaID    string `json:"partita_id"`
	LegaID       string `json:"lega_id,omitempty"`
	UtenteID     string `json:"utente_id"`
	Segno        string `json:"segno"`
	GolCasa      int    `json:"gol_casa"`
	GolTrasferta int    `json:"gol_trasferta"`
	Marcatori    string `json:"marcatori"`
}

// PronosticiResponse is the response to pronostici.getByGiornata
type PronosticiResponse struct {
	Envelope
	Giornata   Giornata     `json:"giornata"`
	Pronostici []Pronostico `json:"pronostici"`
}

// LoginRequest is the payload of auth.login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload of auth.register
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nome     string `json:"nome"`
	Cognome  string `json:"cognome"`
}

// AuthResponse is the response to auth.login and auth.register
type AuthResponse struct {
	Envelope
	User  shared.Account `json:"user"`
	Token string         `json:"token"`
}

// Lega is a league users can join
type Lega struct {
	ID            string `json:"id"`
	Nome          string `json:"nome"`
	Descrizione   string `json:"descrizione"`
	DataCreazione string `json:"data_creazione,omitempty"`
}

// LegheResponse is the response to leghe.getAll and leghe.getByUtente
type LegheResponse struct {
	Envelope
	Leghe []Lega `json:"leghe"`
}

// VoceClassifica is one row of a league standings table
type VoceClassifica struct {
	Posizione int    `json:"posizione"`
	UtenteID  string `json:"utente_id"`
	Nome      string `json:"nome"`
	Cognome   string `json:"cognome"`
	Punti     int    `json:"punti"`
}

// ClassificaResponse is the response to leghe.getClassifica
type ClassificaResponse struct {
	Envelope
	Lega       Lega             `json:"lega"`
	Classifica []VoceClassifica `json:"classifica"`
}

// GiornateResponse is the response to giornate.getCorrenti
type GiornateResponse struct {
	Envelope
	Giornate []Giornata `json:"giornate"`
}

// PartiteResponse is the response to partite.getByGiornata
type PartiteResponse struct {
	Envelope
	Giornata Giornata  `json:"giornata"`
	Partite  []Partita `json:"partite"`
}
