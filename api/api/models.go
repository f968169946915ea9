/* models.go
 * This file contain the structs used by api consumers
 * Authors: Zachary Bower
 */

package api

import (
	"previsioni-bot/api/external"
	"previsioni-bot/api/logic"
)

// Ack is returned by a successful submission. Refresh tells the caller to re-fetch the round's
// predictions, nothing is cached locally
type Ack struct {
	MatchID string
	Refresh bool
	Message string
}

// PredictionInput is a prediction as entered by a user
type PredictionInput struct {
	LeagueID string
	MatchID  string

	// Scoreline is nil when the scorers are the primary input, the result is then derived from them
	Scoreline *logic.Scoreline

	// Symbol is empty when it should be derived from the scoreline
	Symbol logic.Symbol

	// Scorers holds player ids or names as typed
	Scorers []string
}

// PredictionOutcome is what PredictMatch reports back after a successful save
type PredictionOutcome struct {
	Ack        Ack
	Prediction logic.Prediction
	Match      external.Partita
	Round      external.Giornata

	// PlayerNames maps the id of every player of both teams to their full name
	PlayerNames map[string]string

	// Predictions is the refreshed list for the round, nil if the refresh failed
	Predictions []external.Pronostico
}
