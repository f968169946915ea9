/* leagues.go
 * Contains the league operations: listing, joining and standings. Standings are computed by the backend
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"strings"

	"previsioni-bot/api/external"
	"previsioni-bot/api/shared"
)

// Leagues lists every league
func (a *API) Leagues(ctx context.Context, ownerID string) ([]external.Lega, error) {
	var leagues []external.Lega
	err := a.withSession(ctx, ownerID, func(session shared.Session) error {
		response, err := a.Backend.GetLeghe(ctx, session.Token)
		if err != nil {
			return err
		}
		leagues = response.Leghe
		return nil
	})
	return leagues, err
}

// MyLeagues lists the leagues the user has joined
func (a *API) MyLeagues(ctx context.Context, ownerID string) ([]external.Lega, error) {
	var leagues []external.Lega
	err := a.withSession(ctx, ownerID, func(session shared.Session) error {
		response, err := a.Backend.GetLegheUtente(ctx, session.Token, session.Account.ID)
		if err != nil {
			return err
		}
		leagues = response.Leghe
		return nil
	})
	return leagues, err
}

// JoinLeague adds the user to a league. Returns the backend's message
func (a *API) JoinLeague(ctx context.Context, ownerID string, leagueID string) (string, error) {
	message := "Joined league"
	err := a.withSession(ctx, ownerID, func(session shared.Session) error {
		response, err := a.Backend.JoinLega(ctx, session.Token, session.Account.ID, strings.TrimSpace(leagueID))
		if err != nil {
			return err
		}
		if response.Message != "" {
			message = response.Message
		}
		return nil
	})
	return message, err
}

// Standings fetches the ranked standings of a league
func (a *API) Standings(ctx context.Context, ownerID string, leagueID string) (*external.ClassificaResponse, error) {
	var standings *external.ClassificaResponse
	err := a.withSession(ctx, ownerID, func(session shared.Session) error {
		var err error
		standings, err = a.Backend.GetClassifica(ctx, session.Token, leagueID)
		return err
	})
	return standings, err
}
