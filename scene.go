package main

import "github.com/milk9111/skystrike/component"

// sceneGraph records which nodes are visible, in attach order.
type sceneGraph struct {
	nodes map[component.ID]component.Node
	order []component.ID
}

func newSceneGraph() *sceneGraph {
	return &sceneGraph{nodes: map[component.ID]component.Node{}}
}

func (s *sceneGraph) Attach(n component.Node) {
	if !n.ID().Valid() {
		return
	}
	if _, ok := s.nodes[n.ID()]; ok {
		return
	}
	s.nodes[n.ID()] = n
	s.order = append(s.order, n.ID())
}

func (s *sceneGraph) Detach(n component.Node) {
	delete(s.nodes, n.ID())
}

// Each visits attached nodes in attach order, dropping stale ids as it goes.
func (s *sceneGraph) Each(fn func(component.Node)) {
	writeIdx := 0
	for _, id := range s.order {
		n, ok := s.nodes[id]
		if !ok {
			continue
		}
		s.order[writeIdx] = id
		writeIdx++
		fn(n)
	}
	s.order = s.order[:writeIdx]
}

func (s *sceneGraph) Len() int {
	return len(s.nodes)
}
