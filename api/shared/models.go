/* models.go
 * This file contain the structs and helper functions that are shared between sub packages
 * Authors: Zachary Bower
 */

package shared

import "time"

// User is the Discord identity issuing a command
type User struct {
	UserID   string
	Username string
}

// Account is the user record returned by the prediction backend on login or registration
type Account struct {
	ID      string `bson:"id,omitempty" json:"id"`
	Email   string `bson:"email,omitempty" json:"email"`
	Nome    string `bson:"nome,omitempty" json:"nome"`
	Cognome string `bson:"cognome,omitempty" json:"cognome"`
	Ruolo   string `bson:"ruolo,omitempty" json:"ruolo"`
}

// FullName returns "nome cognome", falling back to the email when the backend did not send a name
func (a Account) FullName() string {
	if a.Nome == "" && a.Cognome == "" {
		return a.Email
	}
	if a.Cognome == "" {
		return a.Nome
	}
	if a.Nome == "" {
		return a.Cognome
	}
	return a.Nome + " " + a.Cognome
}

// Session is the application context for one Discord user. It is created on login or registration,
// read at the start of every authenticated backend call and deleted on logout or when the backend
// rejects the token.
type Session struct {
	OwnerID   string    `bson:"ownerid,omitempty"` // Discord user id
	Username  string    `bson:"username,omitempty"`
	Account   Account   `bson:"account,omitempty"`
	Token     string    `bson:"token,omitempty"`
	CreatedAt time.Time `bson:"createdat,omitempty"`
}

// IsAdmin reports whether the backend granted the admin role
func (s Session) IsAdmin() bool {
	return s.Account.Ruolo == RoleAdmin
}

const RoleAdmin = "Admin"

// MatchStatus is the lifecycle state of a match as reported by the backend
type MatchStatus string

const (
	MatchNotPlayed  MatchStatus = "da_disputare"
	MatchInProgress MatchStatus = "in_corso"
	MatchFinished   MatchStatus = "terminata"
)

// Label returns a human readable status
func (s MatchStatus) Label() string {
	switch s {
	case MatchNotPlayed:
		return "not played"
	case MatchInProgress:
		return "in progress"
	case MatchFinished:
		return "finished"
	default:
		return string(s)
	}
}
