package dom

import (
	"io"
	"sort"
	"strings"
)

// voidElements cannot have children and serialize without a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// HTML serializes the document body's children.
func (d *Document) HTML() string {
	var b strings.Builder
	for _, c := range d.body.children {
		writeNode(&b, c)
	}
	return b.String()
}

// HTML serializes the element's subtree, including the element itself.
func (e *Element) HTML() string {
	var b strings.Builder
	writeNode(&b, e)
	return b.String()
}

// WriteHTML serializes a node to w.
func WriteHTML(w io.Writer, n Node) error {
	var b strings.Builder
	writeNode(&b, n)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeNode(b *strings.Builder, n Node) {
	switch node := n.(type) {
	case *TextNode:
		b.WriteString(escapeHTML(node.Data))
	case *Element:
		writeElement(b, node)
	}
}

func writeElement(b *strings.Builder, e *Element) {
	b.WriteByte('<')
	b.WriteString(e.Tag)

	// Sorted attribute order keeps output deterministic for tests and
	// for the idempotent-render guarantee.
	keys := make([]string, 0, len(e.attrs))
	for k := range e.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(e.attrs[k]))
		b.WriteByte('"')
	}

	if len(e.style) > 0 {
		props := make([]string, 0, len(e.style))
		for k := range e.style {
			props = append(props, k)
		}
		sort.Strings(props)
		b.WriteString(` style="`)
		for i, p := range props {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(p)
			b.WriteByte(':')
			b.WriteString(escapeAttr(e.style[p]))
		}
		b.WriteString(`"`)
	}

	// Live controlled-input fields.
	if e.Value != "" {
		b.WriteString(` value="`)
		b.WriteString(escapeAttr(e.Value))
		b.WriteByte('"')
	}
	if e.Checked {
		b.WriteString(" checked")
	}

	// Event targeting hook for the browser client.
	if e.HasListeners() {
		b.WriteString(` data-eid="`)
		b.WriteString(e.eid)
		b.WriteByte('"')
	}

	if voidElements[e.Tag] {
		b.WriteByte('>')
		return
	}
	b.WriteByte('>')

	for _, c := range e.children {
		writeNode(b, c)
	}

	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteByte('>')
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeHTML(s string) string { return htmlEscaper.Replace(s) }
func escapeAttr(s string) string { return attrEscaper.Replace(s) }
