package main

import (
	"testing"

	"github.com/milk9111/skystrike/common"
	"github.com/milk9111/skystrike/component"
)

type stubNode struct{ id component.ID }

func (n stubNode) ID() component.ID { return n.id }
func (n stubNode) Bounds() common.Rect { return common.Rect{} }
func (n stubNode) HitBounds() common.Rect { return common.Rect{} }
func (n stubNode) Image() string { return "stub.png" }

func TestSceneGraphOrder(t *testing.T) {
	s := newSceneGraph()
	for i := 1; i <= 4; i++ {
		s.Attach(stubNode{id: component.ID(i)})
	}
	s.Attach(stubNode{id: 2})
	s.Attach(stubNode{})
	s.Detach(stubNode{id: 3})

	var got []component.ID
	s.Each(func(n component.Node) { got = append(got, n.ID()) })

	want := []component.ID{1, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if s.Len() != 3 || len(s.order) != 3 {
		t.Fatalf("len = %d order = %d", s.Len(), len(s.order))
	}
}
