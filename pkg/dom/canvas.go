package dom

import (
	"fmt"
	"strconv"
)

// Context2D is a recording 2D drawing surface for a canvas element.
// Draw calls are captured as Ops; the browser client replays them, and
// tests assert against them directly.
type Context2D struct {
	FillStyle   string
	StrokeStyle string
	Font        string

	ops []Op
}

// Op is one recorded draw call.
type Op struct {
	Name string    `json:"name"`
	Args []float64 `json:"args,omitempty"`
	Text string    `json:"text,omitempty"` // for FillText
	Fill string    `json:"fill,omitempty"` // FillStyle/StrokeStyle at call time
}

// Context2D returns the drawing context for the canvas element with the
// given id attribute. The context lives on the element, so a full
// re-render that rebuilds the canvas yields a fresh, empty context.
func (d *Document) Context2D(id string) (*Context2D, error) {
	e := d.GetElementByID(id)
	if e == nil {
		return nil, fmt.Errorf("dom: no element with id %q", id)
	}
	if e.Tag != "canvas" {
		return nil, fmt.Errorf("dom: element %q is a %s, not a canvas", id, e.Tag)
	}
	if e.ctx2d == nil {
		e.ctx2d = &Context2D{}
	}
	return e.ctx2d, nil
}

// Size returns the canvas dimensions from the element's width and height
// attributes, with a 300x150 default matching the display engine.
func (e *Element) Size() (w, h float64) {
	w, h = 300, 150
	if v, ok := e.Attr("width"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			w = f
		}
	}
	if v, ok := e.Attr("height"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			h = f
		}
	}
	return w, h
}

func (c *Context2D) record(name string, fill string, text string, args ...float64) {
	c.ops = append(c.ops, Op{Name: name, Args: args, Text: text, Fill: fill})
}

// ClearRect clears a rectangle.
func (c *Context2D) ClearRect(x, y, w, h float64) {
	c.record("clearRect", "", "", x, y, w, h)
}

// FillRect fills a rectangle with the current FillStyle.
func (c *Context2D) FillRect(x, y, w, h float64) {
	c.record("fillRect", c.FillStyle, "", x, y, w, h)
}

// FillText draws text at the given position with the current FillStyle.
func (c *Context2D) FillText(text string, x, y float64) {
	c.record("fillText", c.FillStyle, text, x, y)
}

// BeginPath starts a new path.
func (c *Context2D) BeginPath() { c.record("beginPath", "", "") }

// MoveTo moves the path cursor.
func (c *Context2D) MoveTo(x, y float64) { c.record("moveTo", "", "", x, y) }

// LineTo adds a line segment.
func (c *Context2D) LineTo(x, y float64) { c.record("lineTo", "", "", x, y) }

// Stroke strokes the current path with the current StrokeStyle.
func (c *Context2D) Stroke() { c.record("stroke", c.StrokeStyle, "") }

// Ops returns the recorded draw calls in order.
func (c *Context2D) Ops() []Op { return c.ops }

// Reset discards recorded draw calls.
func (c *Context2D) Reset() { c.ops = nil }
