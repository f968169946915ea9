/* deadline.go
 * Contains the checks deciding whether a round or a match still accepts predictions, and the
 * helpers used to display dates and remaining time
 * Authors: Zachary Bower
 */

package logic

import (
	"fmt"
	"log"
	"time"
	_ "time/tzdata"

	"previsioni-bot/api/shared"
)

// Dates are shown in Italian local time regardless of where the bot runs
var displayLocation = loadDisplayLocation()

func loadDisplayLocation() *time.Location {
	loc, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		log.Println("failed to load Europe/Rome location, using UTC:", err)
		return time.UTC
	}
	return loc
}

// IsOpen reports whether the prediction window closing at deadline is still open at now
func IsOpen(deadline time.Time, now time.Time) bool {
	return now.Before(deadline)
}

// MatchOpen reports whether a single match can still receive predictions: it must not have started
// and the kickoff time must be in the future
func MatchOpen(status shared.MatchStatus, kickoff time.Time, now time.Time) bool {
	if status != shared.MatchNotPlayed {
		return false
	}
	return IsOpen(kickoff, now)
}

// TimeLeft formats the time remaining before deadline as "45m", "2h" or "1h 30m".
// Returns "closed" once the deadline has passed
func TimeLeft(deadline time.Time, now time.Time) string {
	if !IsOpen(deadline, now) {
		return "closed"
	}
	minutes := int(deadline.Sub(now) / time.Minute)
	return formatMinutes(minutes)
}

func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	rest := minutes % 60
	if rest > 0 {
		return fmt.Sprintf("%dh %dm", hours, rest)
	}
	return fmt.Sprintf("%dh", hours)
}

// FormatDate renders t as dd/mm/yyyy, optionally followed by hh:mm, in Italian local time
func FormatDate(t time.Time, withTime bool) string {
	t = t.In(displayLocation)
	if withTime {
		return t.Format("02/01/2006 15:04")
	}
	return t.Format("02/01/2006")
}
