package dom

import (
	"strings"
	"testing"
)

func TestHTMLSortsAttributes(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.SetAttribute("id", "x")
	el.SetAttribute("class", "box")

	got := el.HTML()
	want := `<div class="box" id="x"></div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHTMLStyleSerialization(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.SetStyle("width", "10px")
	el.SetStyle("color", "red")

	got := el.HTML()
	want := `<div style="color:red;width:10px"></div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHTMLEscaping(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("p")
	el.SetAttribute("title", `a"b<c`)
	el.AppendChild(doc.CreateText("<script>&"))

	got := el.HTML()
	if strings.Contains(got, "<script>") {
		t.Errorf("text not escaped: %q", got)
	}
	if !strings.Contains(got, `title="a&quot;b&lt;c"`) {
		t.Errorf("attribute not escaped: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;&amp;") {
		t.Errorf("missing escaped text: %q", got)
	}
}

func TestHTMLVoidElement(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("input")
	el.SetAttribute("type", "number")
	el.Value = "95.5"

	got := el.HTML()
	want := `<input type="number" value="95.5">`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHTMLCheckedFlag(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("input")
	el.Checked = true

	if got := el.HTML(); got != `<input checked>` {
		t.Errorf("got %q, want %q", got, `<input checked>`)
	}
}

func TestHTMLDataEIDOnlyWithListeners(t *testing.T) {
	doc := NewDocument()

	plain := doc.CreateElement("div")
	if strings.Contains(plain.HTML(), "data-eid") {
		t.Errorf("element without listeners should not carry data-eid: %q", plain.HTML())
	}

	wired := doc.CreateElement("button")
	wired.AddEventListener("click", func(Event) {})
	got := wired.HTML()
	if !strings.Contains(got, `data-eid="`+wired.EID()+`"`) {
		t.Errorf("element with listener should carry data-eid: %q", got)
	}
}

func TestDocumentHTMLSkipsBodyWrapper(t *testing.T) {
	doc := NewDocument()
	doc.Body().AppendChild(doc.CreateElement("main"))
	doc.Body().AppendChild(doc.CreateText("x"))

	if got := doc.HTML(); got != "<main></main>x" {
		t.Errorf("got %q, want %q", got, "<main></main>x")
	}
}

func TestWriteHTML(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("span")
	el.AppendChild(doc.CreateText("hi"))

	var b strings.Builder
	if err := WriteHTML(&b, el); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.String() != "<span>hi</span>" {
		t.Errorf("got %q", b.String())
	}
}
