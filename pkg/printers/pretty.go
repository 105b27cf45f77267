package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/coach/pkg/coach"
	"tableflip.dev/coach/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

const (
	openBullet = "●"
	doneBullet = "✘"
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// Tasks renders a task list, one bullet per line: completion glyph, category
// symbol, text, and a faint duration.
func (pp *PrettyPrint) Tasks(tasks ...*coach.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	carry := color.New(color.FgHiYellow)
	dim := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, task := range tasks {
		if pp.ShowID {
			_, _ = y.Print(task.ID[:8])
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-8))
		}

		bullet := openBullet
		line := t
		if task.Completed {
			bullet = doneBullet
			line = done
		} else if task.OldDay {
			line = carry
		}

		sym := " "
		if c, ok := coach.CategoryFor(task.Category); ok {
			sym = c.Symbol
		}

		_, _ = line.Printf("%s %s %s", sym, bullet, task.Text)
		if task.Minutes > 0 {
			_, _ = dim.Printf("  %s", timeutil.FormatMinutes(task.Minutes))
		}
		fmt.Println("")
	}
	_, _ = t.Println("")
}

// Suggestions renders one activity's suggestion list as a table.
func (pp *PrettyPrint) Suggestions(key string, a *coach.Activity) {
	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	sym := ""
	if c, ok := coach.CategoryFor(key); ok {
		sym = c.Symbol + " "
	}
	pp.Title(sym + a.Title)

	if len(a.Suggestions) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Suggestion"), bold.Sprint("Time"))
		for _, s := range a.Suggestions {
			tbl.AddRow(dim.Sprint(s.ID[:8]), s.Text, dim.Sprint(s.Time))
		}
	} else {
		for _, s := range a.Suggestions {
			tbl.AddRow(s.Text, dim.Sprint(s.Time))
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Coach renders the coaching message and reality check block.
func (pp *PrettyPrint) Coach(message, realityCheck string) {
	m := color.New(color.Bold)
	r := color.New(color.Faint, color.Italic)

	_, _ = m.Println(message)
	_, _ = r.Println(realityCheck)
	fmt.Println("")
}
