package app

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/liftlog-dev/liftlog/internal/workout"
	"github.com/liftlog-dev/liftlog/pkg/dom"
	"github.com/liftlog-dev/liftlog/pkg/store"
	"github.com/liftlog-dev/liftlog/pkg/ui"
	"github.com/liftlog-dev/liftlog/pkg/vdom"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fixture struct {
	app   *App
	store *store.MemoryStore
	doc   *dom.Document
	rt    *ui.Runtime
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := store.NewMemoryStore()
	t.Cleanup(func() { st.Close() })

	a := New(context.Background(), st, discard)
	a.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}

	doc := dom.NewDocument()
	rt := ui.New()
	rt.Render(vdom.H(a.Root, nil), doc.Body())

	return &fixture{app: a, store: st, doc: doc, rt: rt}
}

// elements returns all mounted elements with the given tag, in document
// order. Called fresh after every event because each event rebuilds the
// tree.
func elements(doc *dom.Document, tag string) []*dom.Element {
	var out []*dom.Element
	var walk func(e *dom.Element)
	walk = func(e *dom.Element) {
		if e.Tag == tag {
			out = append(out, e)
		}
		for _, c := range e.Children() {
			if child, ok := c.(*dom.Element); ok {
				walk(child)
			}
		}
	}
	walk(doc.Body())
	return out
}

func clickButton(t *testing.T, doc *dom.Document, label string) {
	t.Helper()
	for _, b := range elements(doc, "button") {
		if b.TextContent() == label {
			b.Dispatch(dom.Event{Type: "click"})
			return
		}
	}
	t.Fatalf("no button labeled %q", label)
}

// setInput types into the i-th input of the mounted tree.
func setInput(t *testing.T, doc *dom.Document, i int, value string) {
	t.Helper()
	inputs := elements(doc, "input")
	if i >= len(inputs) {
		t.Fatalf("input %d out of range (%d inputs)", i, len(inputs))
	}
	inputs[i].Dispatch(dom.Event{Type: "input", Value: value})
}

// The log form's input order: date, exercise, sets, reps, weight, notes.
const (
	fieldDate = iota
	fieldExercise
	fieldSets
	fieldReps
	fieldWeight
	fieldNotes
)

func TestInitialRenderShowsEmptyLog(t *testing.T) {
	fx := newFixture(t)

	html := fx.doc.HTML()
	if !strings.Contains(html, "No workouts logged yet.") {
		t.Errorf("missing empty state: %s", html)
	}
	if !strings.Contains(html, `value="2026-08-30"`) {
		t.Errorf("date field should default to today: %s", html)
	}
}

func TestAddEntryFlow(t *testing.T) {
	fx := newFixture(t)

	setInput(t, fx.doc, fieldExercise, "Squat")
	setInput(t, fx.doc, fieldWeight, "120")
	clickButton(t, fx.doc, "Add entry")

	entries := fx.app.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Exercise != "Squat" || e.Sets != 3 || e.Reps != 8 || e.Weight != 120 {
		t.Errorf("entry = %+v", e)
	}
	if e.ID == "" {
		t.Error("entry must get an id")
	}

	html := fx.doc.HTML()
	if !strings.Contains(html, "<td>Squat</td>") {
		t.Errorf("history table missing the entry: %s", html)
	}

	// Persisted through the record store.
	stored := store.LoadEntries(context.Background(), fx.store, discard)
	if len(stored) != 1 || stored[0].Exercise != "Squat" {
		t.Errorf("stored = %+v, want the new entry", stored)
	}

	// Form reset after submit.
	if strings.Contains(fx.doc.HTML(), `value="Squat"`) {
		t.Error("exercise field should reset after submit")
	}
}

func TestAddEntryValidation(t *testing.T) {
	fx := newFixture(t)

	// Exercise left empty.
	clickButton(t, fx.doc, "Add entry")

	if len(fx.app.Entries()) != 0 {
		t.Fatal("invalid entry must not be added")
	}
	if !strings.Contains(fx.doc.HTML(), "exercise is required") {
		t.Errorf("missing validation message: %s", fx.doc.HTML())
	}

	// Bad sets value.
	setInput(t, fx.doc, fieldExercise, "Bench")
	setInput(t, fx.doc, fieldSets, "zero")
	clickButton(t, fx.doc, "Add entry")
	if !strings.Contains(fx.doc.HTML(), "sets must be a positive number") {
		t.Errorf("missing sets message: %s", fx.doc.HTML())
	}
}

func TestRemoveEntry(t *testing.T) {
	fx := newFixture(t)

	setInput(t, fx.doc, fieldExercise, "Squat")
	clickButton(t, fx.doc, "Add entry")
	setInput(t, fx.doc, fieldExercise, "Bench")
	clickButton(t, fx.doc, "Add entry")

	if len(fx.app.Entries()) != 2 {
		t.Fatalf("entries = %d, want 2", len(fx.app.Entries()))
	}

	// Entries sort newest-first with ULID tiebreak, so the first delete
	// button belongs to the most recent entry.
	clickButton(t, fx.doc, "×")

	entries := fx.app.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries after delete = %d, want 1", len(entries))
	}
	if entries[0].Exercise != "Squat" {
		t.Errorf("remaining = %q, want Squat", entries[0].Exercise)
	}

	stored := store.LoadEntries(context.Background(), fx.store, discard)
	if len(stored) != 1 {
		t.Errorf("stored = %d, want 1", len(stored))
	}
}

func TestSeedsFromStore(t *testing.T) {
	st := store.NewMemoryStore()
	defer st.Close()

	seed := []workout.Entry{{
		ID:       workout.NewID(),
		Date:     time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		Exercise: "Deadlift",
		Sets:     1,
		Reps:     5,
		Weight:   180,
	}}
	if err := store.SaveEntries(context.Background(), st, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	a := New(context.Background(), st, discard)
	doc := dom.NewDocument()
	ui.New().Render(vdom.H(a.Root, nil), doc.Body())

	if !strings.Contains(doc.HTML(), "<td>Deadlift</td>") {
		t.Errorf("seeded entry missing: %s", doc.HTML())
	}
}

func TestTabSwitching(t *testing.T) {
	fx := newFixture(t)

	clickButton(t, fx.doc, "Plan")
	if !strings.Contains(fx.doc.HTML(), "Add to plan") {
		t.Errorf("plan view missing: %s", fx.doc.HTML())
	}

	clickButton(t, fx.doc, "Progress")
	if !strings.Contains(fx.doc.HTML(), `id="`+ChartElementID+`"`) {
		t.Errorf("progress view missing the chart canvas: %s", fx.doc.HTML())
	}

	clickButton(t, fx.doc, "Log")
	if !strings.Contains(fx.doc.HTML(), "Add entry") {
		t.Errorf("log view missing: %s", fx.doc.HTML())
	}
}

func TestPlanFlow(t *testing.T) {
	fx := newFixture(t)
	clickButton(t, fx.doc, "Plan")

	// Select Wednesday, then fill the slot form. Plan inputs: exercise,
	// sets, reps, target.
	sel := elements(fx.doc, "select")
	if len(sel) != 1 {
		t.Fatalf("selects = %d, want 1", len(sel))
	}
	sel[0].Dispatch(dom.Event{Type: "change", Value: "Wednesday"})

	setInput(t, fx.doc, 0, "Row")
	setInput(t, fx.doc, 3, "60")
	clickButton(t, fx.doc, "Add to plan")

	html := fx.doc.HTML()
	if !strings.Contains(html, "Row 3×8 @ 60kg") {
		t.Errorf("plan slot missing: %s", html)
	}

	stored := store.LoadPlan(context.Background(), fx.store, discard)
	slots := stored.For("Wednesday")
	if len(slots) != 1 || slots[0].Exercise != "Row" || slots[0].TargetWeight != 60 {
		t.Errorf("stored plan = %+v", slots)
	}

	// Remove the slot again.
	clickButton(t, fx.doc, "×")
	if !strings.Contains(fx.doc.HTML(), "Rest day") {
		t.Errorf("slot not removed: %s", fx.doc.HTML())
	}
}

func TestFormStateSurvivesTabSwitch(t *testing.T) {
	fx := newFixture(t)

	setInput(t, fx.doc, fieldExercise, "Press")
	clickButton(t, fx.doc, "Progress")
	clickButton(t, fx.doc, "Log")

	if !strings.Contains(fx.doc.HTML(), `value="Press"`) {
		t.Errorf("form draft lost across tab switch: %s", fx.doc.HTML())
	}
}

func TestDrawChart(t *testing.T) {
	fx := newFixture(t)

	setInput(t, fx.doc, fieldExercise, "Squat")
	setInput(t, fx.doc, fieldWeight, "100")
	clickButton(t, fx.doc, "Add entry")
	clickButton(t, fx.doc, "Progress")

	fx.app.DrawChart(fx.doc)

	ctx, err := fx.doc.Context2D(ChartElementID)
	if err != nil {
		t.Fatalf("context: %v", err)
	}
	ops := ctx.Ops()
	if len(ops) == 0 {
		t.Fatal("chart recorded no ops")
	}
	if ops[0].Name != "clearRect" {
		t.Errorf("first op = %q, want clearRect", ops[0].Name)
	}

	var bars int
	for _, op := range ops {
		if op.Name == "fillRect" && op.Fill == "#4f46e5" {
			bars++
		}
	}
	if bars == 0 {
		t.Error("chart drew no volume bars")
	}
}

func TestDrawChartWithoutCanvasIsNoop(t *testing.T) {
	fx := newFixture(t)
	// Log tab is active; no canvas mounted. Must not panic.
	fx.app.DrawChart(fx.doc)
}
