/* predictions.go
 * Contains the prediction submission flow: check the deadline, validate, send exactly once, then ask the
 * caller to refresh. Early failures never reach the network
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"errors"
	"log"
	"time"

	"previsioni-bot/api/external"
	"previsioni-bot/api/logic"
	"previsioni-bot/api/shared"
)

const defaultSavedMessage = "Prediction saved"

// SubmitPrediction sends one prediction to the backend.
// Preconditions: Receives context, the user's session, the prediction, the round deadline and the rosters of the two teams
// Postconditions: Returns an Ack with Refresh set after exactly one save call, or ErrDeadlineExpired /
// *logic.ValidationError / ErrSubmissionInFlight without any network call, or the backend error
// (*external.TransportError or *external.RejectedError)
func (a *API) SubmitPrediction(ctx context.Context, session shared.Session, pred logic.Prediction, deadline time.Time, rosters logic.Rosters) (Ack, error) {
	if !logic.IsOpen(deadline, a.now()) {
		a.Metrics.RecordSubmission("expired")
		return Ack{}, ErrDeadlineExpired
	}

	if err := logic.Validate(pred.Symbol, pred.Scoreline, pred.Scorers, rosters); err != nil {
		a.Metrics.RecordSubmission("invalid")
		return Ack{}, err
	}

	release, ok := a.acquire(pred.UserID + "/" + pred.MatchID)
	if !ok {
		a.Metrics.RecordSubmission("duplicate")
		return Ack{}, ErrSubmissionInFlight
	}
	defer release()

	marcatori, err := external.EncodeMarcatori(pred.Scorers.Sorted())
	if err != nil {
		return Ack{}, err
	}

	request := external.SaveRequest{
		PartitaID:    pred.MatchID,
		LegaID:       pred.LeagueID,
		UtenteID:     pred.UserID,
		Segno:        pred.Symbol.String(),
		GolCasa:      pred.Scoreline.Home,
		GolTrasferta: pred.Scoreline.Away,
		Marcatori:    marcatori,
	}

	done := a.Metrics.SubmissionStarted()
	response, err := a.Backend.SavePronostico(ctx, session.Token, request)
	done()
	if err != nil {
		a.Metrics.RecordSubmission(failureLabel(err))
		return Ack{}, a.checkUnauthorized(ctx, session.OwnerID, err)
	}
	a.Metrics.RecordSubmission("saved")

	message := defaultSavedMessage
	if response != nil && response.Message != "" {
		message = response.Message
	}
	return Ack{MatchID: pred.MatchID, Refresh: true, Message: message}, nil
}

// PredictMatch builds a prediction from user input and submits it. The match details supply the deadline,
// the rosters and the ids of the scorers typed by name
// Preconditions: Receives context, the Discord user id and the input
// Postconditions: Returns the outcome including the refreshed predictions of the round, or an error if it occurs
func (a *API) PredictMatch(ctx context.Context, ownerID string, input PredictionInput) (*PredictionOutcome, error) {
	session, err := a.session(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	details, err := a.Backend.GetPartitaDetails(ctx, session.Token, input.MatchID)
	if err != nil {
		return nil, a.checkUnauthorized(ctx, ownerID, err)
	}

	// The round deadline is checked by SubmitPrediction. A match that already kicked off is closed
	// even while its round is open
	now := a.now()
	if logic.IsOpen(details.Giornata.ChiusuraPronostici, now) && !logic.MatchOpen(details.Partita.Stato, details.Partita.DataPartita, now) {
		a.Metrics.RecordSubmission("closed")
		return nil, ErrMatchClosed
	}

	rosters, players := rostersFromDetails(details)
	ids, unresolved := logic.ResolveScorers(input.Scorers, players)
	// Names that matched nobody stay in the set so validation reports them
	scorers := logic.NewScorerSet(append(ids, unresolved...)...)

	pred := logic.Prediction{
		UserID:   session.Account.ID,
		MatchID:  input.MatchID,
		LeagueID: input.LeagueID,
		Scorers:  scorers,
	}

	if input.Scoreline == nil {
		pred.Scoreline, pred.Symbol = logic.Reconcile(scorers, rosters)
	} else {
		pred.Scoreline = *input.Scoreline
		pred.Symbol = logic.Classify(pred.Scoreline.Home, pred.Scoreline.Away)
		pred.Scorers = logic.PruneScorers(pred.Scoreline, scorers, rosters)
	}
	if input.Symbol != "" {
		pred.Symbol = input.Symbol
	}

	ack, err := a.SubmitPrediction(ctx, session, pred, details.Giornata.ChiusuraPronostici, rosters)
	if err != nil {
		return nil, err
	}

	outcome := &PredictionOutcome{
		Ack:         ack,
		Prediction:  pred,
		Match:       details.Partita,
		Round:       details.Giornata,
		PlayerNames: make(map[string]string, len(players)),
	}
	for _, p := range players {
		outcome.PlayerNames[p.ID] = p.Name
	}

	if ack.Refresh {
		refreshed, err := a.Backend.GetPronosticiByGiornata(ctx, session.Token, details.Giornata.ID, input.LeagueID)
		if err != nil {
			// The save went through, only the refresh failed
			log.Printf("failed to refresh predictions for round %s: %v", details.Giornata.ID, err)
		} else {
			outcome.Predictions = refreshed.Pronostici
		}
	}
	return outcome, nil
}

// PredictFromScorers submits a prediction whose result is derived from the selected scorers
func (a *API) PredictFromScorers(ctx context.Context, ownerID string, leagueID string, matchID string, scorers []string) (*PredictionOutcome, error) {
	return a.PredictMatch(ctx, ownerID, PredictionInput{
		LeagueID: leagueID,
		MatchID:  matchID,
		Scorers:  scorers,
	})
}

// MatchDetails fetches a match with its rosters, deadline and the user's current prediction
func (a *API) MatchDetails(ctx context.Context, ownerID string, matchID string) (*external.PartitaDetailsResponse, error) {
	var details *external.PartitaDetailsResponse
	err := a.withSession(ctx, ownerID, func(session shared.Session) error {
		var err error
		details, err = a.Backend.GetPartitaDetails(ctx, session.Token, matchID)
		return err
	})
	return details, err
}

// RoundPredictions fetches the user's predictions for a round, optionally within one league
func (a *API) RoundPredictions(ctx context.Context, ownerID string, roundID string, leagueID string) (*external.PronosticiResponse, error) {
	var predictions *external.PronosticiResponse
	err := a.withSession(ctx, ownerID, func(session shared.Session) error {
		var err error
		predictions, err = a.Backend.GetPronosticiByGiornata(ctx, session.Token, roundID, leagueID)
		return err
	})
	return predictions, err
}

// rostersFromDetails returns the roster id sets and the players used for name lookup
func rostersFromDetails(details *external.PartitaDetailsResponse) (logic.Rosters, []logic.Player) {
	var home, away []string
	players := make([]logic.Player, 0, len(details.GiocatoriCasa)+len(details.GiocatoriTrasferta))

	for _, g := range details.GiocatoriCasa {
		home = append(home, g.ID)
		players = append(players, logic.Player{ID: g.ID, Name: g.FullName()})
	}
	for _, g := range details.GiocatoriTrasferta {
		away = append(away, g.ID)
		players = append(players, logic.Player{ID: g.ID, Name: g.FullName()})
	}
	return logic.NewRosters(home, away), players
}

// failureLabel classifies a backend error for the submissions metric
func failureLabel(err error) string {
	var rejected *external.RejectedError
	switch {
	case errors.Is(err, external.ErrUnauthorized):
		return "unauthorized"
	case errors.As(err, &rejected):
		return "rejected"
	default:
		return "transport"
	}
}
