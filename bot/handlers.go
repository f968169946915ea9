/* handlers.go
 * Contains the command handlers. Handlers accept the DiscordSession interface so they can be tested
 * without a gateway connection
 * Authors: Zachary Bower
 */

package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"previsioni-bot/api/api"
	"previsioni-bot/api/external"
	"previsioni-bot/api/logic"
	"previsioni-bot/api/shared"

	"github.com/bwmarrin/discordgo"
)

// newMessageHandler routes messages to the handler registered for their first word
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author == nil || message.Author.ID == botUserID {
		return
	}
	if !startsWith(message.Content, commandPrefix) {
		return
	}

	args, err := splitArgs(message.Content)
	if err != nil {
		b.send(session, message.ChannelID, "I could not read that command, check that every quote is closed")
		return
	}
	if len(args) == 0 {
		return
	}

	cmd, ok := commandIndex[strings.ToLower(args[0])]
	if !ok {
		return
	}
	b.APIPtr.Metrics.RecordCommand(cmd.name)

	if cmd.dmOnly && message.GuildID != "" {
		// The message may carry a password, try to take it down
		if err := session.ChannelMessageDelete(message.ChannelID, message.ID); err != nil {
			log.Printf("could not delete %s message in channel %s: %v", cmd.name, message.ChannelID, err)
		}
		b.send(session, message.ChannelID, fmt.Sprintf("For your privacy `%s` only works in a direct message. Change your password if you sent it here", cmd.name))
		return
	}

	if len(args)-1 < cmd.minArgs {
		b.send(session, message.ChannelID, fmt.Sprintf("Usage: `%s`", cmd.usage))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	cmd.handler(b, ctx, session, message, args[1:])
}

// send delivers content to a channel, split into several messages when it is too long
func (b *Bot) send(session DiscordSession, channelID string, content string) {
	for _, chunk := range chunkMessage(content) {
		if _, err := session.ChannelMessageSend(channelID, chunk); err != nil {
			log.Printf("failed to send message to channel %s: %v", channelID, err)
			return
		}
	}
}

// replyError logs err and sends the user a message describing it
func (b *Bot) replyError(session DiscordSession, message *discordgo.MessageCreate, cmd string, err error) {
	log.Printf("%s failed for %s: %v", cmd, message.Author.ID, err)
	b.send(session, message.ChannelID, describeError(err))
}

// describeError turns any error returned by the API into a message for the user
func describeError(err error) string {
	var validation *logic.ValidationError
	var rejected *external.RejectedError
	var transport *external.TransportError

	switch {
	case errors.Is(err, api.ErrSessionExpired):
		return "Your session has expired. Send me `$login <email> <password>` in a direct message to log in again"
	case errors.Is(err, api.ErrNotLoggedIn):
		return "You are not logged in. Send me `$login <email> <password>` in a direct message"
	case errors.Is(err, api.ErrDeadlineExpired):
		return "The deadline for predictions has passed"
	case errors.Is(err, api.ErrMatchClosed):
		return "This match no longer accepts predictions"
	case errors.Is(err, api.ErrSubmissionInFlight):
		return "Your prediction for this match is still being sent, wait for the answer"
	case errors.Is(err, external.ErrUnauthorized):
		return "The server refused the credentials"
	case errors.As(err, &validation):
		return fmt.Sprintf("Invalid prediction: %s", validation.Error())
	case errors.As(err, &rejected):
		return rejected.Error()
	case errors.As(err, &transport):
		return "Could not reach the prediction server, please try again later"
	default:
		return "An unexpected error occurred"
	}
}

func discordUser(message *discordgo.MessageCreate) shared.User {
	return shared.User{UserID: message.Author.ID, Username: message.Author.Username}
}

// helpHandler handles the $help command
func (b *Bot) helpHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string) {
	var res strings.Builder
	res.WriteString("Previsioni Bot\n")
	for _, c := range commandList {
		res.WriteString(fmt.Sprintf("`%s`: %s\n", c.usage, c.description))
	}
	res.WriteString("Scorers can be given by id or by name, names with spaces need to be encased in \" (e.g. \"Lautaro Martinez\")\n")
	b.send(session, message.ChannelID, res.String())
}

// loginHandler handles the $login command
func (b *Bot) loginHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string) {
	s, err := b.APIPtr.Login(ctx, discordUser(message), args[0], args[1])
	if err != nil {
		b.replyError(session, message, "$login", err)
		return
	}
	b.send(session, message.ChannelID, fmt.Sprintf("Logged in as %s", s.Account.FullName()))
}

// registerHandler handles the $register command
func (b *Bot) registerHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string) {
	request := external.RegisterRequest{
		Email:    args[0],
		Password: args[1],
		Nome:     args[2],
		Cognome:  strings.Join(args[3:], " "),
	}
	s, err := b.APIPtr.Register(ctx, discordUser(message), request)
	if err != nil {
		b.replyError(session, message, "$register", err)
		return
	}
	b.send(session, message.ChannelID, fmt.Sprintf("Welcome %s, your account has been created and you are logged in", s.Account.FullName()))
}

// logoutHandler handles the $logout command
func (b *Bot) logoutHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if err := b.APIPtr.Logout(ctx, message.Author.ID); err != nil {
		b.replyError(session, message, "$logout", err)
		return
	}
	b.send(session, message.ChannelID, "You have been logged out")
}

// leaguesHandler handles the $leagues command
func (b *Bot) leaguesHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string) {
	leagues, err := b.APIPtr.Leagues(ctx, message.Author.ID)
	if err != nil {
		b.replyError(session, message, "$leagues", err)
		return
	}
	b.send(session, message.ChannelID, formatLeagues("Leagues:", "There are no leagues yet", leagues))
}

// myLeaguesHandler handles the $myleagues command
func (b *Bot) myLeaguesHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string) {
	leagues, err := b.APIPtr.MyLeagues(ctx, message.Author.ID)
	if err != nil {
		b.replyError(session, message, "$myleagues", err)
		return
	}
	b.send(session, message.ChannelID, formatLeagues("Your leagues:", "You have not joined any league. Use `$leagues` and `$join`", leagues))
}

// joinHandler handles the $join command
func (b *Bot) joinHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string) {
	res, err := b.APIPtr.JoinLeague(ctx, message.Author.ID, args[0])
	if err != nil {
		b.replyError(session, message, "$join", err)
		return
	}
	b.send(session, message.ChannelID, res)
}

// roundsHandler handles the $rounds command
func (b *Bot) roundsHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string) {
	rounds, err := b.APIPtr.CurrentRounds(ctx, message.Author.ID)
	if err != nil {
		b.replyError(session, message, "$rounds", err)
		return
	}
	if len(rounds) == 0 {
		b.send(session, message.ChannelID, "There are no open rounds")
		return
	}

	now := b.now()
	var res strings.Builder
	res.WriteString("Open rounds:\n")
	for _, round := range rounds {
		res.WriteString(fmt.Sprintf("- %s\n", formatRound(round, now)))
	}
	b.send(session, message.ChannelID, res.String())
}

// matchesHandler handles the $matches command
func (b *Bot) matchesHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string) {
	matches, err := b.APIPtr.RoundMatches(ctx, message.Author.ID, args[0])
	if err != nil {
		b.replyError(session, message, "$matches", err)
		return
	}

	var res strings.Builder
	res.WriteString(fmt.Sprintf("%s\n", formatRound(matches.Giornata, b.now())))
	if len(matches.Partite) == 0 {
		res.WriteString("No matches in this round\n")
	}
	for _, match := range matches.Partite {
		res.WriteString(fmt.Sprintf("- %s\n", formatMatch(match)))
	}
	b.send(session, message.ChannelID, res.String())
}

// matchHandler handles the $match command
func (b *Bot) matchHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string) {
	details, err := b.APIPtr.MatchDetails(ctx, message.Author.ID, args[0])
	if err != nil {
		b.replyError(session, message, "$match", err)
		return
	}
	b.send(session, message.ChannelID, formatDetails(details, b.now()))
}

// predictHandler handles the $predict command: <league> <match> <home-away> [1|X|2] [scorers...]
func (b *Bot) predictHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string) {
	scoreline, err := logic.ParseScoreline(args[2])
	if err != nil {
		b.send(session, message.ChannelID, fmt.Sprintf("Invalid result: %s", err))
		return
	}

	input := api.PredictionInput{
		LeagueID:  args[0],
		MatchID:   args[1],
		Scoreline: &scoreline,
	}

	rest := args[3:]
	if len(rest) > 0 && logic.IsSymbol(rest[0]) {
		input.Symbol, _ = logic.ParseSymbol(rest[0])
		rest = rest[1:]
	}
	input.Scorers = rest

	outcome, err := b.APIPtr.PredictMatch(ctx, message.Author.ID, input)
	if err != nil {
		b.replyError(session, message, "$predict", err)
		return
	}
	b.send(session, message.ChannelID, formatOutcome(outcome))
}

// scorersHandler handles the $scorers command, where the result follows from the chosen scorers
func (b *Bot) scorersHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string) {
	outcome, err := b.APIPtr.PredictFromScorers(ctx, message.Author.ID, args[0], args[1], args[2:])
	if err != nil {
		b.replyError(session, message, "$scorers", err)
		return
	}
	b.send(session, message.ChannelID, formatOutcome(outcome))
}

// predictionsHandler handles the $predictions command
func (b *Bot) predictionsHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string) {
	leagueID := ""
	if len(args) > 1 {
		leagueID = args[1]
	}

	predictions, err := b.APIPtr.RoundPredictions(ctx, message.Author.ID, args[0], leagueID)
	if err != nil {
		b.replyError(session, message, "$predictions", err)
		return
	}

	var res strings.Builder
	res.WriteString(fmt.Sprintf("Your predictions for round %d:\n", predictions.Giornata.Numero))
	if len(predictions.Pronostici) == 0 {
		res.WriteString("No predictions yet. Use `$predict` to set one\n")
	}
	for _, p := range predictions.Pronostici {
		res.WriteString(fmt.Sprintf("- %s\n", formatPronostico(p)))
	}
	b.send(session, message.ChannelID, res.String())
}

// standingsHandler handles the $standings command
func (b *Bot) standingsHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string) {
	standings, err := b.APIPtr.Standings(ctx, message.Author.ID, args[0])
	if err != nil {
		b.replyError(session, message, "$standings", err)
		return
	}
	b.send(session, message.ChannelID, formatStandings(standings))
}
