package workout

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func day(d int) time.Time {
	return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
}

func TestVolume(t *testing.T) {
	e := Entry{Sets: 5, Reps: 5, Weight: 100}
	if got := e.Volume(); got != 2500 {
		t.Errorf("volume = %v, want 2500", got)
	}

	// Bodyweight work carries no tonnage.
	bw := Entry{Sets: 3, Reps: 10}
	if got := bw.Volume(); got != 0 {
		t.Errorf("bodyweight volume = %v, want 0", got)
	}
}

func TestNewIDIsSortable(t *testing.T) {
	a := NewID()
	b := NewID()
	if a == b {
		t.Fatal("ids must be unique")
	}
	if len(a) != 26 {
		t.Errorf("id length = %d, want 26", len(a))
	}
}

func TestSortEntriesNewestFirst(t *testing.T) {
	entries := []Entry{
		{ID: "a", Date: day(10)},
		{ID: "c", Date: day(12)},
		{ID: "b", Date: day(12)},
		{ID: "d", Date: day(11)},
	}

	SortEntries(entries)

	want := []string{"c", "b", "d", "a"}
	for i, id := range want {
		if entries[i].ID != id {
			t.Errorf("entry %d = %q, want %q", i, entries[i].ID, id)
		}
	}
}

func TestExercisesDistinctSorted(t *testing.T) {
	entries := []Entry{
		{Exercise: "Squat"},
		{Exercise: "Bench"},
		{Exercise: "Squat"},
	}

	got := Exercises(entries)
	want := []string{"Bench", "Squat"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("exercises mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanAddRemove(t *testing.T) {
	p := NewPlan().
		Add("Monday", PlannedExercise{Exercise: "Squat", Sets: 5, Reps: 5}).
		Add("Monday", PlannedExercise{Exercise: "Bench", Sets: 3, Reps: 8})

	if got := len(p.For("Monday")); got != 2 {
		t.Fatalf("monday slots = %d, want 2", got)
	}

	p = p.Remove("Monday", 0)
	slots := p.For("Monday")
	if len(slots) != 1 || slots[0].Exercise != "Bench" {
		t.Errorf("after remove = %+v, want [Bench]", slots)
	}

	// Out-of-range removals are no-ops.
	p = p.Remove("Monday", 5)
	p = p.Remove("Tuesday", 0)
	if len(p.For("Monday")) != 1 {
		t.Error("out-of-range remove must not change the plan")
	}
}

func TestPlanAddOnZeroValue(t *testing.T) {
	var p Plan
	p = p.Add("Friday", PlannedExercise{Exercise: "Row", Sets: 3, Reps: 12})
	if len(p.For("Friday")) != 1 {
		t.Error("Add must work on a zero-value plan")
	}
}

func TestDailyVolumesBucketsAndZeroFills(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 30, 0, 0, time.UTC)
	entries := []Entry{
		{Date: day(30), Sets: 1, Reps: 1, Weight: 100},
		{Date: time.Date(2026, 8, 30, 7, 0, 0, 0, time.UTC), Sets: 1, Reps: 1, Weight: 50},
		{Date: day(28), Sets: 2, Reps: 1, Weight: 10},
		{Date: day(1), Sets: 1, Reps: 1, Weight: 999}, // outside the window
	}

	points := DailyVolumes(entries, 3, now)
	if len(points) != 3 {
		t.Fatalf("len = %d, want 3", len(points))
	}
	if !points[0].Day.Equal(day(28)) || !points[2].Day.Equal(day(30)) {
		t.Errorf("window = %v..%v, want Aug 28..30", points[0].Day, points[2].Day)
	}

	if points[0].Volume != 20 {
		t.Errorf("day 28 volume = %v, want 20", points[0].Volume)
	}
	if points[1].Volume != 0 {
		t.Errorf("empty day volume = %v, want 0", points[1].Volume)
	}
	if points[2].Volume != 150 {
		t.Errorf("day 30 volume = %v, want 150 (same-day entries summed)", points[2].Volume)
	}
}

func TestDailyVolumesEmptyWindow(t *testing.T) {
	if got := DailyVolumes(nil, 0, time.Now()); got != nil {
		t.Errorf("got %v, want nil for zero-day window", got)
	}
}

func TestTotalVolume(t *testing.T) {
	entries := []Entry{
		{Sets: 1, Reps: 1, Weight: 100},
		{Sets: 2, Reps: 5, Weight: 10},
	}
	if got := TotalVolume(entries); got != 200 {
		t.Errorf("total = %v, want 200", got)
	}
}
