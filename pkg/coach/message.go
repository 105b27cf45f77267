package coach

import (
	"fmt"
	"time"
)

// TodayCounts tallies completed, incomplete, and total tasks among today's
// tasks. Carryovers from prior days are not counted.
func TodayCounts(tasks []*Task) (completed, incomplete, total int) {
	for _, t := range tasks {
		if t.OldDay {
			continue
		}
		total++
		if t.Completed {
			completed++
		} else {
			incomplete++
		}
	}
	return
}

// Message derives the coaching line from the task list and the current hour.
// First match wins: empty day greeting, all-done celebration, procrastination
// nudge, progress tally, then the time-of-day fallback.
func Message(tasks []*Task, hour int) string {
	completed, incomplete, total := TodayCounts(tasks)

	if total == 0 {
		switch {
		case hour < 12:
			return "Morning. What's one thing you can do today to get closer to landing a job?"
		case hour < 17:
			return "Still got time today. Pick something small and do it."
		default:
			return "Evening check-in. What can you knock out before bed?"
		}
	}

	if incomplete == 0 {
		return "Done for the day. You actually did the work. Go relax."
	}

	if completed == 0 && total >= 3 {
		return "You made the list but haven't started. That's the hardest part done, just pick one and go."
	}

	if completed > 0 && incomplete > 0 {
		return fmt.Sprintf("%d done, %d to go. Keep going.", completed, incomplete)
	}

	switch {
	case hour < 12:
		return "Start with the easiest thing. Build momentum."
	case hour < 17:
		return "Halfway through the day. What still needs your attention?"
	default:
		return "What can you realistically finish tonight?"
	}
}

// RealityCheck rates the trailing seven days by tasks created, not completed.
// Under 5 is a quiet week, under 10 is okay, 10 and up earns the count back.
func RealityCheck(tasks []*Task, now time.Time) string {
	weekAgo := now.AddDate(0, 0, -7)
	recent := 0
	for _, t := range tasks {
		if t.CreatedAt.After(weekAgo) {
			recent++
		}
	}

	if recent < 5 {
		return "Real talk: You've been quiet this week. The job won't find you."
	}
	if recent < 10 {
		return "You're doing okay, but you could be doing more. Senioritis isn't an excuse."
	}
	return fmt.Sprintf("%d tasks this week. This is how you land a job.", recent)
}
