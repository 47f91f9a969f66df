package app

import (
	"fmt"

	"github.com/liftlog-dev/liftlog/internal/workout"
	"github.com/liftlog-dev/liftlog/pkg/dom"
)

// Chart geometry and palette.
const (
	chartPadding  = 24.0
	chartBarGap   = 4.0
	chartBarColor = "#4f46e5"
	chartAxis     = "#9ca3af"
	chartLabel    = "#6b7280"
)

// drawVolumeChart renders one bar per volume point onto the recording
// context. Bars scale against the window maximum; an all-zero window
// draws only the axis and caption.
func drawVolumeChart(ctx *dom.Context2D, width, height float64, points []workout.VolumePoint) {
	ctx.ClearRect(0, 0, width, height)

	// Baseline.
	ctx.StrokeStyle = chartAxis
	ctx.BeginPath()
	ctx.MoveTo(chartPadding, height-chartPadding)
	ctx.LineTo(width-chartPadding, height-chartPadding)
	ctx.Stroke()

	if len(points) == 0 {
		return
	}

	var max float64
	for _, p := range points {
		if p.Volume > max {
			max = p.Volume
		}
	}

	plotW := width - 2*chartPadding
	plotH := height - 2*chartPadding
	barW := plotW/float64(len(points)) - chartBarGap

	ctx.FillStyle = chartBarColor
	for i, p := range points {
		if p.Volume <= 0 || max <= 0 {
			continue
		}
		barH := p.Volume / max * plotH
		x := chartPadding + float64(i)*(barW+chartBarGap)
		y := height - chartPadding - barH
		ctx.FillRect(x, y, barW, barH)
	}

	// Scale caption at the top of the axis.
	ctx.FillStyle = chartLabel
	ctx.Font = "10px sans-serif"
	ctx.FillText(fmt.Sprintf("%.0f kg", max), chartPadding, chartPadding-8)

	// First and last day labels.
	first := points[0].Day.Format("Jan 2")
	last := points[len(points)-1].Day.Format("Jan 2")
	ctx.FillText(first, chartPadding, height-chartPadding+14)
	ctx.FillText(last, width-chartPadding-40, height-chartPadding+14)
}
