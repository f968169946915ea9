/* models.go
 * Contains the value types used when building and checking a prediction
 * Authors: Zachary Bower
 */

package logic

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MaxGoals is the highest goal count a user can enter for one side
const MaxGoals = 20

// Scoreline is an ordered pair of goals (home, away)
type Scoreline struct {
	Home int
	Away int
}

// String formats the scoreline as "H-A"
func (s Scoreline) String() string {
	return fmt.Sprintf("%d-%d", s.Home, s.Away)
}

// InRange reports whether both sides are within 0..MaxGoals
func (s Scoreline) InRange() bool {
	return s.Home >= 0 && s.Home <= MaxGoals && s.Away >= 0 && s.Away <= MaxGoals
}

// ParseScoreline parses user input such as "2-1", "2:1" or "2 - 1"
// Preconditions: Receives the raw text typed by the user
// Postconditions: Returns the Scoreline, or an error if the text is not two non-negative integers within range
func ParseScoreline(text string) (Scoreline, error) {
	text = strings.TrimSpace(text)
	sep := strings.IndexAny(text, "-:")
	if sep < 0 {
		return Scoreline{}, fmt.Errorf("invalid result '%s', expected format home-away (e.g. 2-1)", text)
	}

	home, err := strconv.Atoi(strings.TrimSpace(text[:sep]))
	if err != nil {
		return Scoreline{}, fmt.Errorf("invalid home goals in '%s'", text)
	}
	away, err := strconv.Atoi(strings.TrimSpace(text[sep+1:]))
	if err != nil {
		return Scoreline{}, fmt.Errorf("invalid away goals in '%s'", text)
	}

	s := Scoreline{Home: home, Away: away}
	if !s.InRange() {
		return Scoreline{}, fmt.Errorf("goals must be between 0 and %d, got %s", MaxGoals, s)
	}
	return s, nil
}

// ScorerSet is an unordered set of player ids
type ScorerSet map[string]struct{}

// NewScorerSet builds a set from ids, ignoring blanks and duplicates
func NewScorerSet(ids ...string) ScorerSet {
	set := make(ScorerSet, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is in the set
func (s ScorerSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in ascending order
func (s ScorerSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CountIn returns |s ∩ other|
func (s ScorerSet) CountIn(other ScorerSet) int {
	count := 0
	for id := range s {
		if other.Contains(id) {
			count++
		}
	}
	return count
}

// Rosters holds the player ids of the two teams in a match
type Rosters struct {
	Home ScorerSet
	Away ScorerSet
}

// NewRosters builds Rosters from the two id lists
func NewRosters(home []string, away []string) Rosters {
	return Rosters{Home: NewScorerSet(home...), Away: NewScorerSet(away...)}
}

// Prediction is the tuple sent to the backend when a user saves a prediction
type Prediction struct {
	UserID    string
	MatchID   string
	LeagueID  string
	Symbol    Symbol
	Scoreline Scoreline
	Scorers   ScorerSet
}
