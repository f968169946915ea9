/* bot.go
 * Contains the Bot struct and the command table used to route Discord messages to their handlers.
 * Requires a discord bot token and an APIPtr, both of which are passed in from main.go
 * Authors: Zachary Bower
 */

package bot

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"previsioni-bot/api/api"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"
)

const (
	commandPrefix = "$"

	// Upper bound for one command. A prediction makes up to three backend calls
	handlerTimeout = 2 * time.Minute

	// Discord rejects messages longer than this
	maxMessageLength = 2000
)

type Bot struct {
	BotToken string
	APIPtr   *api.API
	Now      func() time.Time
}

// handlerFunc is the signature shared by every command handler. args excludes the command itself
type handlerFunc func(b *Bot, ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string)

// command is one entry of the dispatch table
type command struct {
	name        string
	usage       string
	description string
	minArgs     int
	dmOnly      bool
	handler     handlerFunc
}

var (
	commandList  []command
	commandIndex map[string]command
)

// The table is filled in init because $help reads it
func init() {
	commandList = []command{
		{name: "$help", usage: "$help", description: "shows this message", handler: (*Bot).helpHandler},
		{name: "$login", usage: "$login <email> <password>", description: "logs you in, direct message only", minArgs: 2, dmOnly: true, handler: (*Bot).loginHandler},
		{name: "$register", usage: `$register <email> <password> <first name> <last name>`, description: "creates an account, direct message only", minArgs: 4, dmOnly: true, handler: (*Bot).registerHandler},
		{name: "$logout", usage: "$logout", description: "forgets your session", handler: (*Bot).logoutHandler},
		{name: "$leagues", usage: "$leagues", description: "lists every league", handler: (*Bot).leaguesHandler},
		{name: "$myleagues", usage: "$myleagues", description: "lists the leagues you joined", handler: (*Bot).myLeaguesHandler},
		{name: "$join", usage: "$join <league>", description: "joins a league", minArgs: 1, handler: (*Bot).joinHandler},
		{name: "$rounds", usage: "$rounds", description: "lists the open rounds and their deadlines", handler: (*Bot).roundsHandler},
		{name: "$matches", usage: "$matches <round>", description: "lists the matches of a round", minArgs: 1, handler: (*Bot).matchesHandler},
		{name: "$match", usage: "$match <match>", description: "shows a match, its players and your prediction", minArgs: 1, handler: (*Bot).matchHandler},
		{name: "$predict", usage: `$predict <league> <match> <home-away> [1|X|2] [scorers...]`, description: "saves a prediction. The symbol is worked out from the result when omitted", minArgs: 3, handler: (*Bot).predictHandler},
		{name: "$scorers", usage: `$scorers <league> <match> <scorers...>`, description: "saves a prediction whose result is worked out from the scorers", minArgs: 2, handler: (*Bot).scorersHandler},
		{name: "$predictions", usage: "$predictions <round> [league]", description: "shows your predictions for a round", minArgs: 1, handler: (*Bot).predictionsHandler},
		{name: "$standings", usage: "$standings <league>", description: "shows the standings of a league", minArgs: 1, handler: (*Bot).standingsHandler},
	}

	commandIndex = make(map[string]command, len(commandList))
	for _, c := range commandList {
		commandIndex[c.name] = c
	}
}

// NewBot creates a Bot
// Preconditions: Receives the discord bot token and an initialised API
// Postconditions: Returns the Bot, or an error if either is missing
func NewBot(botToken string, apiPtr *api.API) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}
	if apiPtr == nil {
		return nil, fmt.Errorf("apiPtr is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
		Now:      time.Now,
	}, nil
}

func (b *Bot) now() time.Time {
	if b.Now == nil {
		return time.Now()
	}
	return b.Now()
}

// startsWith reports whether inputString begins with substring
func startsWith(inputString string, substring string) bool {
	return strings.HasPrefix(inputString, substring)
}

// splitArgs splits a message on spaces keeping quoted names such as "Lautaro Martinez" together.
// Quotes are removed and empty parts dropped
func splitArgs(content string) ([]string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := spaceSplitter.Split(content)
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		part = strings.TrimPrefix(strings.TrimSuffix(part, `"`), `"`)
		part = strings.TrimPrefix(strings.TrimSuffix(part, "”"), "“")
		part = strings.TrimSpace(part)
		if part != "" {
			args = append(args, part)
		}
	}
	return args, nil
}

// chunkMessage splits content on line boundaries into pieces Discord accepts
func chunkMessage(content string) []string {
	if len(content) <= maxMessageLength {
		return []string{content}
	}

	var chunks []string
	var current strings.Builder
	for _, line := range strings.SplitAfter(content, "\n") {
		for len(line) > maxMessageLength {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			// Cut on a rune boundary
			cut := maxMessageLength
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}
		if current.Len()+len(line) > maxMessageLength {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
