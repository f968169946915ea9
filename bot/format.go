/* format.go
 * Contains the functions rendering backend data as Discord messages
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"strings"
	"time"

	"previsioni-bot/api/api"
	"previsioni-bot/api/external"
	"previsioni-bot/api/logic"
	"previsioni-bot/api/shared"
)

func formatLeagues(title string, empty string, leagues []external.Lega) string {
	if len(leagues) == 0 {
		return empty
	}

	var res strings.Builder
	res.WriteString(title + "\n")
	for _, lega := range leagues {
		if lega.Descrizione != "" {
			res.WriteString(fmt.Sprintf("- `%s` %s: %s\n", lega.ID, lega.Nome, lega.Descrizione))
		} else {
			res.WriteString(fmt.Sprintf("- `%s` %s\n", lega.ID, lega.Nome))
		}
	}
	return res.String()
}

// formatRound renders e.g. "Round 27 (`g1`): predictions close 15/03/2025 15:00, 2h left"
func formatRound(round external.Giornata, now time.Time) string {
	left := logic.TimeLeft(round.ChiusuraPronostici, now)
	if left != "closed" {
		left += " left"
	}
	return fmt.Sprintf("Round %d (`%s`): predictions close %s, %s",
		round.Numero, round.ID, logic.FormatDate(round.ChiusuraPronostici, true), left)
}

// formatMatch renders e.g. "`m1` Inter - Milan, 15/03/2025 16:00 (not played)"
func formatMatch(match external.Partita) string {
	res := fmt.Sprintf("`%s` %s - %s, %s", match.ID, match.SquadraCasaNome, match.SquadraTrasfertaNome,
		logic.FormatDate(match.DataPartita, true))
	if match.GolCasa != nil && match.GolTrasferta != nil {
		res += fmt.Sprintf(" %d-%d", *match.GolCasa, *match.GolTrasferta)
	}
	return res + fmt.Sprintf(" (%s)", match.Stato.Label())
}

// scorerNames renders scorer ids with the player names known from the rosters
func scorerNames(ids []string, names map[string]string) string {
	if len(ids) == 0 {
		return "none"
	}
	rendered := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok {
			rendered = append(rendered, name)
		} else {
			rendered = append(rendered, id)
		}
	}
	return strings.Join(rendered, ", ")
}

func formatPronostico(p external.Pronostico) string {
	res := fmt.Sprintf("`%s` %s %d-%d", p.PartitaID, logic.Symbol(p.Segno).Label(), p.GolCasa, p.GolTrasferta)

	scorers, err := external.DecodeMarcatori(p.Marcatori)
	if err == nil && len(scorers) > 0 {
		res += ", scorers: " + scorerNames(scorers, nil)
	}
	if p.Punti != nil {
		res += fmt.Sprintf(", %d points", *p.Punti)
	}
	return res
}

func formatDetails(details *external.PartitaDetailsResponse, now time.Time) string {
	match := details.Partita
	names := make(map[string]string)

	var res strings.Builder
	res.WriteString(formatMatch(match) + "\n")
	res.WriteString(formatRound(details.Giornata, now) + "\n")
	if !logic.IsOpen(details.Giornata.ChiusuraPronostici, now) || !logic.MatchOpen(match.Stato, match.DataPartita, now) {
		res.WriteString("This match no longer accepts predictions\n")
	}

	writeRoster := func(team string, players []external.Giocatore) {
		res.WriteString(fmt.Sprintf("%s:", team))
		for i, g := range players {
			names[g.ID] = g.FullName()
			sep := ","
			if i == 0 {
				sep = ""
			}
			res.WriteString(fmt.Sprintf("%s %s (`%s`)", sep, g.FullName(), g.ID))
		}
		res.WriteString("\n")
	}
	writeRoster(match.SquadraCasaNome, details.GiocatoriCasa)
	writeRoster(match.SquadraTrasfertaNome, details.GiocatoriTrasferta)

	if details.Pronostico == nil {
		res.WriteString("You have not predicted this match yet")
		return res.String()
	}
	p := details.Pronostico
	res.WriteString(fmt.Sprintf("Your prediction: %s %d-%d", logic.Symbol(p.Segno).Label(), p.GolCasa, p.GolTrasferta))
	if scorers, err := external.DecodeMarcatori(p.Marcatori); err == nil && len(scorers) > 0 {
		res.WriteString(", scorers: " + scorerNames(scorers, names))
	}
	return res.String()
}

func formatOutcome(outcome *api.PredictionOutcome) string {
	pred := outcome.Prediction
	match := outcome.Match

	var res strings.Builder
	res.WriteString(outcome.Ack.Message + "\n")
	res.WriteString(fmt.Sprintf("%s - %s: %s, %s\n", match.SquadraCasaNome, match.SquadraTrasfertaNome,
		pred.Scoreline, pred.Symbol.Label()))
	if scorers := pred.Scorers.Sorted(); len(scorers) > 0 {
		res.WriteString(fmt.Sprintf("Scorers: %s\n", scorerNames(scorers, outcome.PlayerNames)))
	}
	if outcome.Predictions != nil {
		res.WriteString(fmt.Sprintf("You have %d predictions for round %d", len(outcome.Predictions), outcome.Round.Numero))
	}
	return res.String()
}

func formatStandings(standings *external.ClassificaResponse) string {
	var res strings.Builder
	res.WriteString(fmt.Sprintf("Standings for %s:\n", standings.Lega.Nome))
	if len(standings.Classifica) == 0 {
		res.WriteString("No points have been awarded yet\n")
	}
	for _, row := range standings.Classifica {
		name := shared.Account{Nome: row.Nome, Cognome: row.Cognome}.FullName()
		res.WriteString(fmt.Sprintf("%d. %s: %d\n", row.Posizione, name, row.Punti))
	}
	return res.String()
}
