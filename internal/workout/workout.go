// Package workout holds liftlog's domain model: logged workout entries,
// the weekly plan, and the derived statistics the UI renders.
package workout

import (
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
)

// Entry is one logged workout: an exercise performed for a number of
// sets and reps at a given weight.
type Entry struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Exercise string    `json:"exercise"`
	Sets     int       `json:"sets"`
	Reps     int       `json:"reps"`
	Weight   float64   `json:"weight"` // kilograms; 0 for bodyweight work
	Notes    string    `json:"notes,omitempty"`
}

// NewID returns a fresh entry ID. ULIDs sort by creation time, which
// keeps export and storage order stable.
func NewID() string {
	return ulid.Make().String()
}

// Volume is the tonnage of the entry: sets * reps * weight.
func (e Entry) Volume() float64 {
	return float64(e.Sets) * float64(e.Reps) * e.Weight
}

// PlannedExercise is one slot in the weekly plan.
type PlannedExercise struct {
	Exercise     string  `json:"exercise"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	TargetWeight float64 `json:"targetWeight,omitempty"`
}

// Weekdays lists plan days in display order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Plan is the weekly training plan, keyed by weekday name.
type Plan struct {
	Week map[string][]PlannedExercise `json:"week"`
}

// NewPlan returns an empty plan.
func NewPlan() Plan {
	return Plan{Week: make(map[string][]PlannedExercise)}
}

// For returns the planned exercises for a weekday.
func (p Plan) For(day string) []PlannedExercise {
	return p.Week[day]
}

// Add appends a planned exercise to a weekday.
func (p Plan) Add(day string, pe PlannedExercise) Plan {
	if p.Week == nil {
		p.Week = make(map[string][]PlannedExercise)
	}
	p.Week[day] = append(p.Week[day], pe)
	return p
}

// Remove deletes the i-th planned exercise of a weekday.
func (p Plan) Remove(day string, i int) Plan {
	slots := p.Week[day]
	if i < 0 || i >= len(slots) {
		return p
	}
	p.Week[day] = append(slots[:i:i], slots[i+1:]...)
	return p
}

// SortEntries orders entries by date, then ID, newest first.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.After(entries[j].Date)
		}
		return entries[i].ID > entries[j].ID
	})
}

// Exercises returns the distinct exercise names in entries, sorted.
func Exercises(entries []Entry) []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if !seen[e.Exercise] {
			seen[e.Exercise] = true
			names = append(names, e.Exercise)
		}
	}
	sort.Strings(names)
	return names
}
