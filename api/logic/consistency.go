/* consistency.go
 * Contains the checks run on a prediction before it is sent to the backend: the symbol must match the
 * scoreline and every scorer must play for one of the two teams
 * Authors: Zachary Bower
 */

package logic

import "fmt"

// ValidationKind identifies which consistency rule a prediction broke
type ValidationKind int

const (
	ScoreOutOfRange ValidationKind = iota + 1
	SymbolMismatch
	UnknownScorer
)

func (k ValidationKind) String() string {
	switch k {
	case ScoreOutOfRange:
		return "score out of range"
	case SymbolMismatch:
		return "symbol mismatch"
	case UnknownScorer:
		return "unknown scorer"
	}
	return "unknown"
}

// ValidationError is returned when a prediction is inconsistent. It is never sent over the network
type ValidationError struct {
	Kind      ValidationKind
	Submitted Symbol
	Computed  Symbol
	Scoreline Scoreline
	ScorerID  string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ScoreOutOfRange:
		return fmt.Sprintf("result %s is out of range, goals must be between 0 and %d", e.Scoreline, MaxGoals)
	case SymbolMismatch:
		return fmt.Sprintf("symbol %s does not correspond to result %s (computed: %s)", e.Submitted, e.Scoreline, e.Computed)
	case UnknownScorer:
		return fmt.Sprintf("scorer '%s' does not play for either team", e.ScorerID)
	}
	return "invalid prediction"
}

// Validate checks that symbol, scoreline and scorers are consistent with each other.
// Rules are checked in order and the first violation is returned:
// the scoreline is within range, the symbol equals Classify(scoreline), every scorer is in one of the rosters.
// Preconditions: Receives the user's symbol, scoreline, selected scorers and the two team rosters
// Postconditions: Returns nil if the prediction is consistent, else a *ValidationError
func Validate(symbol Symbol, scoreline Scoreline, scorers ScorerSet, rosters Rosters) error {
	if !scoreline.InRange() {
		return &ValidationError{Kind: ScoreOutOfRange, Scoreline: scoreline}
	}

	computed := Classify(scoreline.Home, scoreline.Away)
	if symbol != computed {
		return &ValidationError{Kind: SymbolMismatch, Submitted: symbol, Computed: computed, Scoreline: scoreline}
	}

	// Sorted so the reported scorer does not depend on map iteration order
	for _, id := range scorers.Sorted() {
		if !rosters.Home.Contains(id) && !rosters.Away.Contains(id) {
			return &ValidationError{Kind: UnknownScorer, ScorerID: id, Scoreline: scoreline}
		}
	}
	return nil
}

// Reconcile derives the scoreline and symbol from the selected scorers, used when the scorer picks are
// the primary input: each side scores as many goals as it has selected scorers
func Reconcile(scorers ScorerSet, rosters Rosters) (Scoreline, Symbol) {
	scoreline := Scoreline{
		Home: scorers.CountIn(rosters.Home),
		Away: scorers.CountIn(rosters.Away),
	}
	return scoreline, Classify(scoreline.Home, scoreline.Away)
}

// PruneScorers removes the scorers of a side that is predicted to score no goals.
// Scorers that belong to neither roster are kept so Validate can report them
func PruneScorers(scoreline Scoreline, scorers ScorerSet, rosters Rosters) ScorerSet {
	pruned := make(ScorerSet, len(scorers))
	for id := range scorers {
		if scoreline.Home == 0 && rosters.Home.Contains(id) {
			continue
		}
		if scoreline.Away == 0 && rosters.Away.Contains(id) {
			continue
		}
		pruned[id] = struct{}{}
	}
	return pruned
}
