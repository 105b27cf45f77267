package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/coach/pkg/coach"
)

const (
	hourLabelWidth = len("12 AM ")
	layoutUS       = "January 2, 2006"
	layoutClock    = "3:04 PM"
)

// Day renders the agenda for one day: a 24-row hour grid with every block
// shown in the hours it occupies, and a marker line at the current time.
func (pp *PrettyPrint) Day(now time.Time, blocks []*coach.TimeBlock) {
	pp.Title(now.Format(layoutUS))

	label := color.New(color.Faint)
	current := color.New(color.Bold)
	block := color.New(color.FgBlue)
	marker := color.New(color.FgRed, color.Bold)

	currentHour := int(coach.ClockPosition(now))

	for hour := 0; hour < 24; hour++ {
		printer := label
		if hour == currentHour {
			printer = current
		}
		_, _ = printer.Printf("%*s", hourLabelWidth, coach.FormatHour(hour)+" ")

		occupying := coach.BlocksForHour(blocks, hour)
		for i, b := range occupying {
			if i > 0 {
				fmt.Print(strings.Repeat(" ", hourLabelWidth))
			}
			if pp.ShowID {
				_, _ = label.Printf("%s  ", b.ID[:8])
			}
			_, _ = block.Printf("▐ %s", b.TaskText)
			fmt.Println("")
		}
		if len(occupying) == 0 {
			fmt.Println("")
		}

		if hour == currentHour {
			_, _ = marker.Printf("%*s%s\n",
				hourLabelWidth, now.Format(layoutClock)+" ",
				strings.Repeat("─", 24))
		}
	}
	fmt.Println("")
}
