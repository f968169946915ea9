/* rounds.go
 * Contains the round and match listings
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"sort"

	"previsioni-bot/api/external"
	"previsioni-bot/api/shared"
)

// CurrentRounds lists the open rounds, earliest deadline first
func (a *API) CurrentRounds(ctx context.Context, ownerID string) ([]external.Giornata, error) {
	var rounds []external.Giornata
	err := a.withSession(ctx, ownerID, func(session shared.Session) error {
		response, err := a.Backend.GetGiornateCorrenti(ctx, session.Token)
		if err != nil {
			return err
		}
		rounds = response.Giornate
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rounds, func(i, j int) bool {
		return rounds[i].ChiusuraPronostici.Before(rounds[j].ChiusuraPronostici)
	})
	return rounds, nil
}

// RoundMatches lists the matches of a round ordered by kickoff
func (a *API) RoundMatches(ctx context.Context, ownerID string, roundID string) (*external.PartiteResponse, error) {
	var matches *external.PartiteResponse
	err := a.withSession(ctx, ownerID, func(session shared.Session) error {
		var err error
		matches, err = a.Backend.GetPartiteByGiornata(ctx, session.Token, roundID)
		return err
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(matches.Partite, func(i, j int) bool {
		return matches.Partite[i].DataPartita.Before(matches.Partite[j].DataPartita)
	})
	return matches, nil
}
