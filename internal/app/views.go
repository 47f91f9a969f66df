package app

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/liftlog-dev/liftlog/internal/workout"
	"github.com/liftlog-dev/liftlog/pkg/dom"
	"github.com/liftlog-dev/liftlog/pkg/ui"
	"github.com/liftlog-dev/liftlog/pkg/vdom"
)

const dateLayout = "2006-01-02"

// entryForm holds the raw field values of the new-entry form. Stored as
// one hook slot so the slot count stays fixed.
type entryForm struct {
	Date     string
	Exercise string
	Sets     string
	Reps     string
	Weight   string
	Notes    string
	Err      string
}

func newEntryForm(now time.Time) entryForm {
	return entryForm{Date: now.Format(dateLayout), Sets: "3", Reps: "8"}
}

func (f entryForm) parse() (workout.Entry, error) {
	date, err := time.Parse(dateLayout, f.Date)
	if err != nil {
		return workout.Entry{}, fmt.Errorf("date must be YYYY-MM-DD")
	}
	if f.Exercise == "" {
		return workout.Entry{}, errors.New("exercise is required")
	}
	sets, err := strconv.Atoi(f.Sets)
	if err != nil || sets <= 0 {
		return workout.Entry{}, errors.New("sets must be a positive number")
	}
	reps, err := strconv.Atoi(f.Reps)
	if err != nil || reps <= 0 {
		return workout.Entry{}, errors.New("reps must be a positive number")
	}
	weight := 0.0
	if f.Weight != "" {
		weight, err = strconv.ParseFloat(f.Weight, 64)
		if err != nil || weight < 0 {
			return workout.Entry{}, errors.New("weight must be a non-negative number")
		}
	}

	return workout.Entry{
		ID:       workout.NewID(),
		Date:     date,
		Exercise: f.Exercise,
		Sets:     sets,
		Reps:     reps,
		Weight:   weight,
		Notes:    f.Notes,
	}, nil
}

// field builds a labeled, controlled input bound to one entryForm field.
func field(label, typ, value string, extra vdom.Props, oninput dom.Handler) *vdom.VNode {
	props := vdom.Props{
		"type":    typ,
		"value":   value,
		"onInput": oninput,
	}
	for k, v := range extra {
		props[k] = v
	}
	return vdom.Label(vdom.Props{"className": "field"},
		vdom.Span(nil, label),
		vdom.Input(props),
	)
}

func (a *App) logView(entries ui.State[[]workout.Entry], form ui.State[entryForm]) *vdom.VNode {
	f := form.Get()

	bind := func(set func(entryForm, string) entryForm) dom.Handler {
		return func(ev dom.Event) {
			form.Update(func(f entryForm) entryForm { return set(f, ev.Value) })
		}
	}

	submit := func() {
		entry, err := f.parse()
		if err != nil {
			form.Update(func(f entryForm) entryForm {
				f.Err = err.Error()
				return f
			})
			return
		}
		updated := append(append([]workout.Entry(nil), entries.Get()...), entry)
		workout.SortEntries(updated)
		a.persistEntries(updated)
		entries.Set(updated)
		form.Set(newEntryForm(a.now()))
	}

	remove := func(id string) func() {
		return func() {
			current := entries.Get()
			updated := make([]workout.Entry, 0, len(current))
			for _, e := range current {
				if e.ID != id {
					updated = append(updated, e)
				}
			}
			a.persistEntries(updated)
			entries.Set(updated)
		}
	}

	return vdom.Section(vdom.Props{"className": "log"},
		vdom.Form(vdom.Props{"className": "entry-form"},
			field("Date", "date", f.Date,
				vdom.Props{"max": a.now().Format(dateLayout)},
				bind(func(f entryForm, v string) entryForm { f.Date = v; return f })),
			field("Exercise", "text", f.Exercise, nil,
				bind(func(f entryForm, v string) entryForm { f.Exercise = v; return f })),
			field("Sets", "number", f.Sets, vdom.Props{"min": "1"},
				bind(func(f entryForm, v string) entryForm { f.Sets = v; return f })),
			field("Reps", "number", f.Reps, vdom.Props{"min": "1"},
				bind(func(f entryForm, v string) entryForm { f.Reps = v; return f })),
			field("Weight (kg)", "number", f.Weight, vdom.Props{"min": "0", "step": "0.5"},
				bind(func(f entryForm, v string) entryForm { f.Weight = v; return f })),
			field("Notes", "text", f.Notes, nil,
				bind(func(f entryForm, v string) entryForm { f.Notes = v; return f })),
			vdom.If(f.Err != "", vdom.P(vdom.Props{"className": "form-error"}, f.Err)),
			vdom.Button(vdom.Props{
				"type":      "button",
				"className": "add-entry",
				"onClick":   submit,
			}, "Add entry"),
		),
		historyTable(entries.Get(), remove),
	)
}

func historyTable(entries []workout.Entry, remove func(id string) func()) *vdom.VNode {
	if len(entries) == 0 {
		return vdom.P(vdom.Props{"className": "empty"}, "No workouts logged yet.")
	}

	return vdom.Table(vdom.Props{"className": "history"},
		vdom.Thead(nil,
			vdom.Tr(nil,
				vdom.Th(nil, "Date"),
				vdom.Th(nil, "Exercise"),
				vdom.Th(nil, "Sets"),
				vdom.Th(nil, "Reps"),
				vdom.Th(nil, "Weight"),
				vdom.Th(nil, ""),
			),
		),
		vdom.Tbody(nil,
			vdom.Map(entries, func(e workout.Entry, _ int) *vdom.VNode {
				return vdom.Tr(nil,
					vdom.Td(nil, e.Date.Format(dateLayout)),
					vdom.Td(nil, e.Exercise),
					vdom.Td(nil, e.Sets),
					vdom.Td(nil, e.Reps),
					vdom.Td(nil, vdom.Textf("%g", e.Weight)),
					vdom.Td(nil,
						vdom.Button(vdom.Props{
							"className": "delete",
							"onClick":   remove(e.ID),
						}, "×"),
					),
				)
			}),
		),
	)
}

// planForm holds the raw field values of the plan editor, one hook slot.
type planForm struct {
	Day      string
	Exercise string
	Sets     string
	Reps     string
	Target   string
	Err      string
}

func newPlanForm() planForm {
	return planForm{Day: workout.Weekdays[0], Sets: "3", Reps: "8"}
}

func (f planForm) parse() (workout.PlannedExercise, error) {
	if f.Exercise == "" {
		return workout.PlannedExercise{}, errors.New("exercise is required")
	}
	sets, err := strconv.Atoi(f.Sets)
	if err != nil || sets <= 0 {
		return workout.PlannedExercise{}, errors.New("sets must be a positive number")
	}
	reps, err := strconv.Atoi(f.Reps)
	if err != nil || reps <= 0 {
		return workout.PlannedExercise{}, errors.New("reps must be a positive number")
	}
	target := 0.0
	if f.Target != "" {
		target, err = strconv.ParseFloat(f.Target, 64)
		if err != nil || target < 0 {
			return workout.PlannedExercise{}, errors.New("target weight must be a non-negative number")
		}
	}

	return workout.PlannedExercise{
		Exercise:     f.Exercise,
		Sets:         sets,
		Reps:         reps,
		TargetWeight: target,
	}, nil
}

func (a *App) planView(plan ui.State[workout.Plan], form ui.State[planForm]) *vdom.VNode {
	f := form.Get()

	bind := func(set func(planForm, string) planForm) dom.Handler {
		return func(ev dom.Event) {
			form.Update(func(f planForm) planForm { return set(f, ev.Value) })
		}
	}

	add := func() {
		pe, err := f.parse()
		if err != nil {
			form.Update(func(f planForm) planForm {
				f.Err = err.Error()
				return f
			})
			return
		}
		updated := plan.Get().Add(f.Day, pe)
		a.persistPlan(updated)
		plan.Set(updated)
		form.Update(func(f planForm) planForm {
			return planForm{Day: f.Day, Sets: f.Sets, Reps: f.Reps}
		})
	}

	removeSlot := func(day string, i int) func() {
		return func() {
			updated := plan.Get().Remove(day, i)
			a.persistPlan(updated)
			plan.Set(updated)
		}
	}

	return vdom.Section(vdom.Props{"className": "plan"},
		vdom.Form(vdom.Props{"className": "plan-form"},
			vdom.Label(vdom.Props{"className": "field"},
				vdom.Span(nil, "Day"),
				vdom.Select(vdom.Props{
					"value": f.Day,
					"onChange": bind(func(f planForm, v string) planForm {
						f.Day = v
						return f
					}),
				},
					vdom.Map(workout.Weekdays, func(day string, _ int) *vdom.VNode {
						return vdom.Option(vdom.Props{"value": day}, day)
					}),
				),
			),
			field("Exercise", "text", f.Exercise, nil,
				bind(func(f planForm, v string) planForm { f.Exercise = v; return f })),
			field("Sets", "number", f.Sets, vdom.Props{"min": "1"},
				bind(func(f planForm, v string) planForm { f.Sets = v; return f })),
			field("Reps", "number", f.Reps, vdom.Props{"min": "1"},
				bind(func(f planForm, v string) planForm { f.Reps = v; return f })),
			field("Target (kg)", "number", f.Target, vdom.Props{"min": "0", "step": "0.5"},
				bind(func(f planForm, v string) planForm { f.Target = v; return f })),
			vdom.If(f.Err != "", vdom.P(vdom.Props{"className": "form-error"}, f.Err)),
			vdom.Button(vdom.Props{
				"type":      "button",
				"className": "add-slot",
				"onClick":   add,
			}, "Add to plan"),
		),
		vdom.Div(vdom.Props{"className": "week"},
			vdom.Map(workout.Weekdays, func(day string, _ int) *vdom.VNode {
				return planDay(day, plan.Get().For(day), removeSlot)
			}),
		),
	)
}

func planDay(day string, slots []workout.PlannedExercise, removeSlot func(string, int) func()) *vdom.VNode {
	return vdom.Div(vdom.Props{"className": "plan-day"},
		vdom.H3(nil, day),
		vdom.IfElse(len(slots) == 0,
			vdom.P(vdom.Props{"className": "empty"}, "Rest day"),
			vdom.Ul(nil,
				vdom.Map(slots, func(pe workout.PlannedExercise, i int) *vdom.VNode {
					label := fmt.Sprintf("%s %d×%d", pe.Exercise, pe.Sets, pe.Reps)
					if pe.TargetWeight > 0 {
						label = fmt.Sprintf("%s @ %gkg", label, pe.TargetWeight)
					}
					return vdom.Li(nil,
						vdom.Span(nil, label),
						vdom.Button(vdom.Props{
							"className": "delete",
							"onClick":   removeSlot(day, i),
						}, "×"),
					)
				}),
			),
		),
	)
}

func (a *App) progressView(entries []workout.Entry) *vdom.VNode {
	return vdom.Section(vdom.Props{"className": "progress"},
		vdom.Div(vdom.Props{"className": "stats"},
			statBox("Workouts", fmt.Sprintf("%d", len(entries))),
			statBox("Exercises", fmt.Sprintf("%d", len(workout.Exercises(entries)))),
			statBox("Total volume", fmt.Sprintf("%.0f kg", workout.TotalVolume(entries))),
		),
		vdom.Canvas(vdom.Props{
			"id":     ChartElementID,
			"width":  "640",
			"height": "240",
		}),
		vdom.P(vdom.Props{"className": "chart-caption"},
			vdom.Textf("Daily volume, last %d days", chartDays)),
	)
}

func statBox(label, value string) *vdom.VNode {
	return vdom.Div(vdom.Props{"className": "stat"},
		vdom.Strong(nil, value),
		vdom.Span(nil, label),
	)
}
