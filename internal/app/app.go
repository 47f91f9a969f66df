// Package app builds liftlog's UI out of components for the runtime in
// pkg/ui: the workout log, the weekly plan editor, and the progress
// chart. One App instance backs one mounted root.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/liftlog-dev/liftlog/internal/workout"
	"github.com/liftlog-dev/liftlog/pkg/dom"
	"github.com/liftlog-dev/liftlog/pkg/store"
	"github.com/liftlog-dev/liftlog/pkg/ui"
	"github.com/liftlog-dev/liftlog/pkg/vdom"
)

// ChartElementID is the canvas element the progress chart draws into.
const ChartElementID = "volume-chart"

// chartDays is the window of the progress chart.
const chartDays = 14

// App wires the UI components to their collaborators: the record store
// for persistence and the drawing surface for the chart.
type App struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time

	// Seeds for the first render's hook slots, loaded once.
	initialEntries []workout.Entry
	initialPlan    workout.Plan

	// Snapshot of the entry collection as of the latest render pass,
	// for collaborators that run after materialization (chart drawing).
	entries []workout.Entry
}

// New loads both records and returns an App ready to mount.
func New(ctx context.Context, st store.Store, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		store:          st,
		logger:         logger,
		now:            time.Now,
		initialEntries: store.LoadEntries(ctx, st, logger),
		initialPlan:    store.LoadPlan(ctx, st, logger),
	}
}

// Root is the root component. Every hook the application uses is called
// here, unconditionally and in a fixed order: hook slots are addressed
// by call order across the whole pass, so no UseState may ever move
// behind a condition.
func (a *App) Root(_ vdom.Props) *vdom.VNode {
	tab := ui.UseStateOf("log")
	entries := ui.UseStateOf(a.initialEntries)
	plan := ui.UseStateOf(a.initialPlan)
	form := ui.UseStateOf(newEntryForm(a.now()))
	planForm := ui.UseStateOf(newPlanForm())

	a.entries = entries.Get()

	var view *vdom.VNode
	switch tab.Get() {
	case "plan":
		view = a.planView(plan, planForm)
	case "progress":
		view = a.progressView(entries.Get())
	default:
		view = a.logView(entries, form)
	}

	return vdom.Div(vdom.Props{"className": "app"},
		vdom.Header(vdom.Props{"className": "app-header"},
			vdom.H1(nil, "liftlog"),
			navBar(tab),
		),
		vdom.Main(nil, view),
	)
}

// navBar renders the view switcher.
func navBar(tab ui.State[string]) *vdom.VNode {
	item := func(id, label string) *vdom.VNode {
		cls := "nav-item"
		if tab.Get() == id {
			cls = "nav-item active"
		}
		return vdom.Button(vdom.Props{
			"className": cls,
			"onClick":   func() { tab.Set(id) },
		}, label)
	}

	return vdom.Nav(vdom.Props{"className": "tabs"},
		item("log", "Log"),
		item("plan", "Plan"),
		item("progress", "Progress"),
	)
}

// DrawChart redraws the progress chart if its canvas is mounted. Called
// after a render pass completes, never during one.
func (a *App) DrawChart(doc *dom.Document) {
	ctx2d, err := doc.Context2D(ChartElementID)
	if err != nil {
		// Canvas only exists while the progress view is mounted.
		return
	}
	canvas := doc.GetElementByID(ChartElementID)
	w, h := canvas.Size()

	ctx2d.Reset()
	drawVolumeChart(ctx2d, w, h, workout.DailyVolumes(a.entries, chartDays, a.now()))
}

// Entries returns the entry collection as of the latest render pass.
func (a *App) Entries() []workout.Entry { return a.entries }

func (a *App) persistEntries(entries []workout.Entry) {
	if err := store.SaveEntries(context.Background(), a.store, entries); err != nil {
		a.logger.Warn("persist entries failed", "error", err)
	}
}

func (a *App) persistPlan(plan workout.Plan) {
	if err := store.SavePlan(context.Background(), a.store, plan); err != nil {
		a.logger.Warn("persist plan failed", "error", err)
	}
}
