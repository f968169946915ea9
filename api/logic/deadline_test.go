/* deadline_test.go
 * Contains unit tests for deadline.go
 * Authors: Zachary Bower
 */

package logic

import (
	"testing"
	"time"

	"previsioni-bot/api/shared"

	"github.com/stretchr/testify/assert"
)

var testDeadline = time.Date(2025, 3, 15, 14, 0, 0, 0, time.UTC)

// region IsOpen tests

func TestIsOpen_BeforeDeadline(t *testing.T) {
	assert.True(t, IsOpen(testDeadline, testDeadline.Add(-time.Second)))
}

func TestIsOpen_AtDeadline(t *testing.T) {
	assert.False(t, IsOpen(testDeadline, testDeadline))
}

func TestIsOpen_AfterDeadline(t *testing.T) {
	assert.False(t, IsOpen(testDeadline, testDeadline.Add(time.Minute)))
}

// TestIsOpen_StaysClosed checks that once closed the window never reopens as time moves forward
func TestIsOpen_StaysClosed(t *testing.T) {
	closedAt := testDeadline
	for i := 0; i < 100; i++ {
		now := closedAt.Add(time.Duration(i) * 37 * time.Minute)
		assert.False(t, IsOpen(testDeadline, now), now.String())
	}
}

// endregion

// region MatchOpen tests

func TestMatchOpen_NotPlayedFutureKickoff(t *testing.T) {
	assert.True(t, MatchOpen(shared.MatchNotPlayed, testDeadline, testDeadline.Add(-time.Hour)))
}

func TestMatchOpen_KickoffPassed(t *testing.T) {
	assert.False(t, MatchOpen(shared.MatchNotPlayed, testDeadline, testDeadline))
}

func TestMatchOpen_InProgress(t *testing.T) {
	assert.False(t, MatchOpen(shared.MatchInProgress, testDeadline, testDeadline.Add(-time.Hour)))
}

func TestMatchOpen_Finished(t *testing.T) {
	assert.False(t, MatchOpen(shared.MatchFinished, testDeadline, testDeadline.Add(-time.Hour)))
}

// endregion

// region TimeLeft / FormatDate tests

func TestTimeLeft(t *testing.T) {
	tests := []struct {
		name     string
		left     time.Duration
		expected string
	}{
		{"minutes only", 45 * time.Minute, "45m"},
		{"whole hours", 2 * time.Hour, "2h"},
		{"hours and minutes", 90 * time.Minute, "1h 30m"},
		{"seconds round down", 59 * time.Second, "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TimeLeft(testDeadline, testDeadline.Add(-tt.left)))
		})
	}
}

func TestTimeLeft_Closed(t *testing.T) {
	assert.Equal(t, "closed", TimeLeft(testDeadline, testDeadline.Add(time.Second)))
}

func TestFormatDate_ItalianLocalTime(t *testing.T) {
	// 14:00 UTC in March is 15:00 in Rome (CET)
	assert.Equal(t, "15/03/2025 15:00", FormatDate(testDeadline, true))
	assert.Equal(t, "15/03/2025", FormatDate(testDeadline, false))
}

func TestFormatDate_SummerTime(t *testing.T) {
	summer := time.Date(2025, 7, 1, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "01/07/2025 20:30", FormatDate(summer, true))
}

// endregion
