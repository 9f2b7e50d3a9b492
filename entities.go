package sprint

import "time"

// Kitty is the pursuing sprite. Exactly one exists per stage.
type Kitty struct {
	X, Y   float64
	VX, VY float64
}

// Berry is a collectible. Eaten only ever moves from false to true.
type Berry struct {
	ID    uint32
	X, Y  float64
	R     float64
	Eaten bool

	node *Node
	bob  *bobTween
}

// Node returns the berry's scene node.
func (b *Berry) Node() *Node {
	return b.node
}

// PointerState is the latest logical pointer reading.
type PointerState struct {
	X, Y   float64
	Inside bool
}

// SceneState is the whole mutable simulation state of one stage. It is owned
// by a Controller and passed by reference to each component function.
type SceneState struct {
	Paused    bool
	Score     int
	Now       time.Duration // stage clock, advanced every frame
	LastSpawn time.Duration
	Berries   []*Berry
	Kitty     Kitty
	Pointer   PointerState

	nextBerryID uint32
}

// LiveBerries returns the number of berries that have not been eaten.
func (s *SceneState) LiveBerries() int {
	n := 0
	for _, b := range s.Berries {
		if !b.Eaten {
			n++
		}
	}
	return n
}

// Berry returns the berry with the given ID, or nil.
func (s *SceneState) Berry(id uint32) *Berry {
	for _, b := range s.Berries {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// addBerry registers a berry and assigns its ID.
func (s *SceneState) addBerry(b *Berry) {
	s.nextBerryID++
	b.ID = s.nextBerryID
	s.Berries = append(s.Berries, b)
}

// markEaten flips a live berry to eaten and counts it. Returns false if the
// berry was already eaten, in which case nothing changes.
func (s *SceneState) markEaten(b *Berry) bool {
	if b.Eaten {
		return false
	}
	b.Eaten = true
	s.Score++
	return true
}

// Compact drops eaten berries once the collection grows past threshold.
// Their nodes are already scheduled for detachment by the pop animation.
// Returns the number of entries removed.
func (s *SceneState) Compact(threshold int) int {
	if len(s.Berries) <= threshold {
		return 0
	}
	kept := s.Berries[:0]
	for _, b := range s.Berries {
		if !b.Eaten {
			kept = append(kept, b)
		}
	}
	removed := len(s.Berries) - len(kept)
	for i := len(kept); i < len(s.Berries); i++ {
		s.Berries[i] = nil
	}
	s.Berries = kept
	return removed
}

// takeBerries empties the collection and returns what it held.
func (s *SceneState) takeBerries() []*Berry {
	out := s.Berries
	s.Berries = nil
	return out
}
