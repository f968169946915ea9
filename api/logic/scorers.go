/* scorers.go
 * Contains the logic for matching scorer names typed by a user to player ids
 * Authors: Zachary Bower
 */

package logic

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Player is a roster entry that can be selected as a scorer
type Player struct {
	ID   string
	Name string
}

// MinFuzzyLength is the shortest input that is matched approximately. Shorter inputs must be an id or a full name
const MinFuzzyLength = 3

// ResolveScorers maps user input to player ids.
// An input resolves when it is a player id, a full name, or a partial name that one player matches better
// than every other. Inputs that are too short, match nobody or match several players equally well are
// returned as unresolved so the caller never guesses a player
// Preconditions: receives the names (or ids) typed by the user and the players of both teams
// Postconditions: returns the ids of matched players in input order, and the inputs that could not be resolved
func ResolveScorers(inputs []string, players []Player) ([]string, []string) {
	var ids []string
	var unresolved []string

	byID := make(map[string]bool, len(players))
	lookup := make(map[string]string, len(players))
	shared := make(map[string]bool)
	var names []string
	for _, p := range players {
		byID[p.ID] = true
		name := normalizeName(p.Name)
		if _, exists := lookup[name]; exists {
			// Two players with the same name can only be picked by id
			shared[name] = true
			continue
		}
		lookup[name] = p.ID
		names = append(names, name)
	}

	for _, input := range inputs {
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if byID[input] {
			ids = append(ids, input)
			continue
		}

		match, ok := bestName(normalizeName(input), names)
		if !ok || shared[match] {
			unresolved = append(unresolved, input)
			continue
		}
		ids = append(ids, lookup[match])
	}
	return ids, unresolved
}

// bestName returns the name target stands for. An exact name always wins, otherwise the closest fuzzy
// match is taken only when it is unique
func bestName(target string, names []string) (string, bool) {
	for _, name := range names {
		if name == target {
			return name, true
		}
	}
	if utf8.RuneCountInString(target) < MinFuzzyLength {
		return "", false
	}

	ranks := fuzzy.RankFindFold(target, names)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	if len(ranks) > 1 && ranks[0].Distance == ranks[1].Distance {
		return "", false
	}
	return ranks[0].Target, true
}

// normalizeName lowercases, strips accents and collapses whitespace so "Džeko" matches "dzeko"
func normalizeName(name string) string {
	name = strings.ToLower(name)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(t, name); err == nil {
		name = stripped
	}
	return strings.Join(strings.Fields(name), " ")
}
