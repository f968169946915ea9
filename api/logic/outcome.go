/* outcome.go
 * Contains the outcome symbol (segno) of a match and the function deriving it from a scoreline
 * Authors: Zachary Bower
 */

package logic

import (
	"fmt"
	"strings"
)

// Symbol is the compact result of a match: home win, draw or away win
type Symbol string

const (
	HomeWin Symbol = "1"
	Draw    Symbol = "X"
	AwayWin Symbol = "2"
)

// Classify returns the symbol that corresponds to a scoreline
func Classify(homeGoals int, awayGoals int) Symbol {
	if homeGoals > awayGoals {
		return HomeWin
	} else if homeGoals < awayGoals {
		return AwayWin
	}
	return Draw
}

// ParseSymbol converts user input into a Symbol. Accepts 1, X (any case) and 2
func ParseSymbol(text string) (Symbol, error) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "1":
		return HomeWin, nil
	case "X":
		return Draw, nil
	case "2":
		return AwayWin, nil
	}
	return "", fmt.Errorf("invalid symbol '%s', expected 1, X or 2", text)
}

// IsSymbol reports whether text is a valid symbol
func IsSymbol(text string) bool {
	_, err := ParseSymbol(text)
	return err == nil
}

func (s Symbol) String() string {
	return string(s)
}

// Label returns the symbol with its meaning, e.g. "1 (home win)"
func (s Symbol) Label() string {
	switch s {
	case HomeWin:
		return "1 (home win)"
	case Draw:
		return "X (draw)"
	case AwayWin:
		return "2 (away win)"
	}
	return string(s)
}
