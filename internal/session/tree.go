package session

import (
	"nyxventure/internal/node"
	"nyxventure/internal/story"
	"nyxventure/pkg/types"
)

// Tree snapshots the game and everything held in its slots.
func (s *Session) Tree() types.TreeNode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(s.game, nil)
}

// Subtree snapshots the node named by ref.
func (s *Session) Subtree(ref string) (types.TreeNode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.resolve(ref)
	if err != nil {
		return types.TreeNode{}, err
	}
	return s.snapshot(e, e.Parent()), nil
}

func (s *Session) snapshot(e story.Entity, owner node.Node) types.TreeNode {
	tn := types.TreeNode{
		ID:            e.ID().String(),
		Alias:         s.aliasOf[e.ID()],
		Kind:          string(e.Kind()),
		Label:         e.Label(),
		ObjectChanged: e.ObjectChanged(),
		ModelChanged:  e.ModelChanged(),
		Owned:         owner != nil && e.Parent() == owner,
	}
	for _, f := range e.Fields() {
		tn.Fields = append(tn.Fields, types.Field{Name: f.Name, Value: f.Value})
	}
	for _, name := range node.Slots(e) {
		members, _ := node.SlotNodes(e, name)
		slot := types.Slot{Name: name, Nodes: []types.TreeNode{}}
		for _, m := range members {
			if child, ok := m.(story.Entity); ok {
				slot.Nodes = append(slot.Nodes, s.snapshot(child, e))
			}
		}
		tn.Slots = append(tn.Slots, slot)
	}
	if r, ok := e.(story.Referrer); ok {
		for _, ref := range r.References() {
			tn.References = append(tn.References, types.Reference{
				Name:   ref.Name,
				Target: ref.Target.ID().String(),
				Alias:  s.aliasOf[ref.Target.ID()],
				Value:  ref.Value,
			})
		}
	}
	return tn
}
