package ui

import (
	"strings"
	"testing"

	"github.com/liftlog-dev/liftlog/pkg/dom"
	"github.com/liftlog-dev/liftlog/pkg/vdom"
)

func TestApplyPropsClassName(t *testing.T) {
	doc, body := newDoc()
	New().Render(vdom.Div(vdom.Props{"className": "card wide"}), body)

	if doc.HTML() != `<div class="card wide"></div>` {
		t.Errorf("html = %q", doc.HTML())
	}
}

func TestApplyPropsStyleMap(t *testing.T) {
	doc, body := newDoc()
	New().Render(vdom.Div(vdom.Props{
		"style": map[string]string{"color": "red", "width": "10px"},
	}), body)

	want := `<div style="color:red;width:10px"></div>`
	if doc.HTML() != want {
		t.Errorf("html = %q, want %q", doc.HTML(), want)
	}
}

func TestApplyPropsStyleString(t *testing.T) {
	doc, body := newDoc()
	New().Render(vdom.Div(vdom.Props{"style": "color:red"}), body)

	if doc.HTML() != `<div style="color:red"></div>` {
		t.Errorf("html = %q", doc.HTML())
	}
}

func TestApplyPropsNilSkipped(t *testing.T) {
	doc, body := newDoc()
	New().Render(vdom.Button(vdom.Props{"disabled": nil}, "go"), body)

	if strings.Contains(doc.HTML(), "disabled") {
		t.Errorf("nil prop must not serialize: %q", doc.HTML())
	}
}

func TestApplyPropsEventHandlerShapes(t *testing.T) {
	doc, body := newDoc()

	var clicks, inputs int
	New().Render(vdom.Div(nil,
		vdom.Button(vdom.Props{"onClick": func() { clicks++ }}, "a"),
		vdom.Input(vdom.Props{"onInput": func(dom.Event) { inputs++ }}),
	), body)

	for _, c := range doc.Body().Children()[0].(*dom.Element).Children() {
		el := c.(*dom.Element)
		el.Dispatch(dom.Event{Type: "click"})
		el.Dispatch(dom.Event{Type: "input"})
	}

	if clicks != 1 || inputs != 1 {
		t.Errorf("clicks=%d inputs=%d, want 1,1", clicks, inputs)
	}
}

func TestApplyPropsControlledValue(t *testing.T) {
	doc, body := newDoc()
	New().Render(vdom.Input(vdom.Props{"type": "number", "value": "95"}), body)

	el := doc.Body().Children()[0].(*dom.Element)
	if el.Value != "95" {
		t.Errorf("Value = %q, want 95", el.Value)
	}
	if _, ok := el.Attr("value"); ok {
		t.Error("value must live on the field, not in attrs")
	}
}

func TestApplyPropsNumericAttr(t *testing.T) {
	doc, body := newDoc()
	New().Render(vdom.Canvas(vdom.Props{"width": 640, "height": 240}), body)

	el := doc.Body().Children()[0].(*dom.Element)
	if v, _ := el.Attr("width"); v != "640" {
		t.Errorf("width = %q, want 640", v)
	}
}

func TestMountCoercesUnknownToText(t *testing.T) {
	doc, body := newDoc()
	rt := New()
	rt.Mount(3.5, body)
	rt.Mount(nil, body)

	if doc.HTML() != "3.5" {
		t.Errorf("html = %q, want 3.5", doc.HTML())
	}
}
