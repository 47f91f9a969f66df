package vdom

import (
	"testing"
)

func TestHHostNode(t *testing.T) {
	node := H("div", Props{"className": "box"}, "hello")

	if node.Kind != KindHost {
		t.Fatalf("kind = %v, want Host", node.Kind)
	}
	if node.Tag != "div" {
		t.Errorf("tag = %q, want %q", node.Tag, "div")
	}
	if len(node.Children) != 1 || node.Children[0].Text != "hello" {
		t.Errorf("children = %+v, want one text child", node.Children)
	}
}

func TestHComponentNode(t *testing.T) {
	comp := func(Props) *VNode { return Text("x") }

	node := H(comp, Props{"label": "y"})
	if node.Kind != KindComponent {
		t.Fatalf("kind = %v, want Component", node.Kind)
	}
	if node.Fn == nil {
		t.Fatal("Fn is nil")
	}
}

func TestHComponentFuncType(t *testing.T) {
	var comp ComponentFunc = func(Props) *VNode { return Text("x") }

	node := H(comp, nil)
	if node.Kind != KindComponent {
		t.Fatalf("kind = %v, want Component", node.Kind)
	}
}

func TestFlattenDropsNilAndFalse(t *testing.T) {
	got := Flatten([]any{nil, false, "keep", nil, false})

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Text != "keep" {
		t.Errorf("text = %q, want %q", got[0].Text, "keep")
	}
}

func TestFlattenPreservesOrder(t *testing.T) {
	got := Flatten([]any{
		"a",
		[]any{"b", []any{"c"}},
		[]*VNode{Text("d"), nil, Text("e")},
		42,
	})

	want := []string{"a", "b", "c", "d", "e", "42"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Text != w {
			t.Errorf("child %d = %q, want %q", i, got[i].Text, w)
		}
	}
}

func TestFlattenPrimitives(t *testing.T) {
	tests := []struct {
		name  string
		child any
		want  string
	}{
		{"string", "s", "s"},
		{"int", 7, "7"},
		{"int64", int64(9), "9"},
		{"float", 2.5, "2.5"},
		{"true", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flatten([]any{tt.child})
			if len(got) != 1 {
				t.Fatalf("len = %d, want 1", len(got))
			}
			if got[0].Kind != KindText || got[0].Text != tt.want {
				t.Errorf("got %v %q, want text %q", got[0].Kind, got[0].Text, tt.want)
			}
		})
	}
}

func TestFragmentGroupsChildren(t *testing.T) {
	frag := Fragment("a", nil, "b")

	if frag.Kind != KindFragment {
		t.Fatalf("kind = %v, want Fragment", frag.Kind)
	}
	if len(frag.Children) != 2 {
		t.Errorf("len = %d, want 2", len(frag.Children))
	}
}

func TestIfHelpers(t *testing.T) {
	yes := Text("yes")
	no := Text("no")

	if If(false, yes) != nil {
		t.Error("If(false) should be nil")
	}
	if If(true, yes) != yes {
		t.Error("If(true) should return the node")
	}
	if IfElse(false, yes, no) != no {
		t.Error("IfElse(false) should return the second node")
	}

	called := false
	When(false, func() *VNode { called = true; return yes })
	if called {
		t.Error("When(false) must not evaluate the function")
	}
}

func TestMapSkipsNil(t *testing.T) {
	items := []int{1, 2, 3}

	got := Map(items, func(n, _ int) *VNode {
		if n == 2 {
			return nil
		}
		return Textf("%d", n)
	})

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Text != "1" || got[1].Text != "3" {
		t.Errorf("got %q,%q want 1,3", got[0].Text, got[1].Text)
	}
}

func TestKindString(t *testing.T) {
	if KindHost.String() != "Host" || KindComponent.String() != "Component" {
		t.Error("Kind.String mismatch")
	}
	if Kind(99).String() != "Unknown" {
		t.Error("unknown kind should stringify to Unknown")
	}
}

func TestElementHelpers(t *testing.T) {
	node := Div(Props{"id": "root"},
		H1(nil, "Title"),
		Ul(nil, Li(nil, "one"), Li(nil, "two")),
	)

	if node.Tag != "div" {
		t.Fatalf("tag = %q, want div", node.Tag)
	}
	if len(node.Children) != 2 {
		t.Fatalf("len = %d, want 2", len(node.Children))
	}
	if node.Children[1].Tag != "ul" || len(node.Children[1].Children) != 2 {
		t.Errorf("list structure wrong: %+v", node.Children[1])
	}
}
