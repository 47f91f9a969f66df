package app

import (
	"testing"
	"time"

	"github.com/liftlog-dev/liftlog/internal/workout"
	"github.com/liftlog-dev/liftlog/pkg/dom"
)

func TestDrawVolumeChartScalesBars(t *testing.T) {
	ctx := &dom.Context2D{}
	points := []workout.VolumePoint{
		{Day: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), Volume: 100},
		{Day: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)},
		{Day: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), Volume: 200},
	}

	drawVolumeChart(ctx, 640, 240, points)

	var bars []dom.Op
	for _, op := range ctx.Ops() {
		if op.Name == "fillRect" {
			bars = append(bars, op)
		}
	}
	if len(bars) != 2 {
		t.Fatalf("bars = %d, want 2 (zero days draw nothing)", len(bars))
	}

	// Bar height is Args[3]; the max-volume day fills the plot height.
	if bars[1].Args[3] != 240-2*chartPadding {
		t.Errorf("max bar height = %v, want %v", bars[1].Args[3], 240-2*chartPadding)
	}
	if bars[0].Args[3] != bars[1].Args[3]/2 {
		t.Errorf("half-volume bar = %v, want half of %v", bars[0].Args[3], bars[1].Args[3])
	}
}

func TestDrawVolumeChartEmptyWindow(t *testing.T) {
	ctx := &dom.Context2D{}
	drawVolumeChart(ctx, 640, 240, nil)

	for _, op := range ctx.Ops() {
		if op.Name == "fillRect" {
			t.Fatal("empty window must not draw bars")
		}
	}
	if len(ctx.Ops()) == 0 {
		t.Error("axis should still be drawn")
	}
}
