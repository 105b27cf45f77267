package coach

import (
	"fmt"
	"time"
)

// BlockRange converts a drag gesture between two hour cells into a stored
// range. Both ends are clamped to the 0..23 grid, the lower cell becomes the
// start, and the end is one past the higher cell (end exclusive), so a drag
// from 14 to 16 yields [14, 17).
func BlockRange(a, b int) (startHour, endHour int) {
	a = clampHour(a)
	b = clampHour(b)
	if a > b {
		a, b = b, a
	}
	return a, b + 1
}

func clampHour(h int) int {
	if h < 0 {
		return 0
	}
	if h > 23 {
		return 23
	}
	return h
}

// BlocksForHour resolves which blocks occupy the given hour.
func BlocksForHour(blocks []*TimeBlock, hour int) []*TimeBlock {
	out := make([]*TimeBlock, 0, len(blocks))
	for _, b := range blocks {
		if hour >= b.StartHour && hour < b.EndHour {
			out = append(out, b)
		}
	}
	return out
}

// UnscheduledTasks lists today's incomplete tasks that no time block
// references yet.
func UnscheduledTasks(d *Document) []*Task {
	scheduled := make(map[string]bool, len(d.TimeBlocks))
	for _, b := range d.TimeBlocks {
		scheduled[b.TaskID] = true
	}
	out := make([]*Task, 0, len(d.Tasks))
	for _, t := range d.Tasks {
		if !t.Completed && !t.OldDay && !scheduled[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

// ClockPosition returns the position of now on the 0..24 hour axis as a
// fraction, for the current-time indicator.
func ClockPosition(now time.Time) float64 {
	return float64(now.Hour()) + float64(now.Minute())/60
}

// FormatHour renders an hour label in 12-hour clock form.
func FormatHour(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour == 12:
		return "12 PM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}
