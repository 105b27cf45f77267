package store

import (
	"tableflip.dev/coach/pkg/coach"
)

// Migrate lifts a loaded document to the current schema, one version step at
// a time. A second pass over an already-current document changes nothing.
//
// Version history:
//
//	0 (legacy) - no schema field. Activities may be absent or carry legacy
//	    icon data, and documents predating the calendar feature have no
//	    timeBlocks at all.
//	1 - explicit schema and named icons, but suggestions identified only
//	    by their text.
//	2 - suggestions carry stable generated IDs.
func Migrate(d *coach.Document) {
	if d.Schema < coach.SchemaV1 {
		migrateLegacy(d)
		d.Schema = coach.SchemaV1
	}
	if d.Schema < coach.CurrentSchema {
		assignSuggestionIDs(d)
		d.Schema = coach.CurrentSchema
	}
	normalize(d)
}

// migrateLegacy replaces activities when they are missing or still in the
// legacy shape. Legacy documents stored presentation data in the icon field
// rather than a category key; any unknown icon marks the whole catalog as
// legacy and user customizations are dropped with it.
func migrateLegacy(d *coach.Document) {
	if activitiesLegacy(d.Activities) {
		d.Activities = coach.DefaultActivities()
	}
	if d.TimeBlocks == nil {
		d.TimeBlocks = []*coach.TimeBlock{}
	}
}

func activitiesLegacy(m map[string]*coach.Activity) bool {
	if len(m) == 0 {
		return true
	}
	for key, a := range m {
		if a == nil || !coach.ValidCategory(key) || !coach.ValidCategory(a.Icon) {
			return true
		}
	}
	return false
}

func assignSuggestionIDs(d *coach.Document) {
	for _, a := range d.Activities {
		if a == nil {
			continue
		}
		for _, s := range a.Suggestions {
			if s != nil && s.ID == "" {
				s.ID = coach.NewSuggestionID()
			}
		}
	}
}

// normalize backfills nil sequences so callers never see absent fields.
func normalize(d *coach.Document) {
	if d.Tasks == nil {
		d.Tasks = []*coach.Task{}
	}
	if d.TimeBlocks == nil {
		d.TimeBlocks = []*coach.TimeBlock{}
	}
	if d.Activities == nil {
		d.Activities = coach.DefaultActivities()
	}
}
