package ecs

import (
	sprint "github.com/phanxgames/strawberrysprint"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// BerryData is the ECS view of one berry.
type BerryData struct {
	ID    uint32
	X, Y  float64
	Eaten bool
}

// ScoreData is the ECS view of the scene's score and pause flag.
type ScoreData struct {
	Score  int
	Paused bool
}

var (
	// Berry is attached to one entity per berry still on the stage.
	Berry = donburi.NewComponentType[BerryData]()
	// Scoreboard is attached to a single entity.
	Scoreboard = donburi.NewComponentType[ScoreData]()
)

var berryQuery = query.NewQuery(filter.Contains(Berry))

// Mirror keeps Donburi entities in step with scene events. Berries are
// created on spawn, flagged on eat, and removed once their node is detached
// or the scene is reset.
type Mirror struct {
	world      donburi.World
	scoreboard donburi.Entity
	berries    map[uint32]donburi.Entity
}

// NewMirror creates the scoreboard entity and subscribes to SceneEventType.
func NewMirror(world donburi.World) *Mirror {
	m := &Mirror{
		world:      world,
		scoreboard: world.Create(Scoreboard),
		berries:    make(map[uint32]donburi.Entity),
	}
	SceneEventType.Subscribe(world, m.handle)
	return m
}

func (m *Mirror) handle(w donburi.World, e sprint.SceneEvent) {
	switch e.Type {
	case sprint.EventBerrySpawned:
		ent := w.Create(Berry)
		Berry.SetValue(w.Entry(ent), BerryData{ID: e.BerryID, X: e.X, Y: e.Y})
		m.berries[e.BerryID] = ent
	case sprint.EventBerryEaten:
		if ent, ok := m.berries[e.BerryID]; ok && w.Valid(ent) {
			Berry.Get(w.Entry(ent)).Eaten = true
		}
		m.score(w).Score = e.Score
	case sprint.EventBerryRemoved:
		m.remove(w, e.BerryID)
	case sprint.EventReset:
		for id := range m.berries {
			m.remove(w, id)
		}
		sb := m.score(w)
		sb.Score = 0
		sb.Paused = e.Paused
	case sprint.EventPauseToggled:
		m.score(w).Paused = e.Paused
	}
}

func (m *Mirror) remove(w donburi.World, id uint32) {
	ent, ok := m.berries[id]
	if !ok {
		return
	}
	delete(m.berries, id)
	if w.Valid(ent) {
		w.Remove(ent)
	}
}

func (m *Mirror) score(w donburi.World) *ScoreData {
	return Scoreboard.Get(w.Entry(m.scoreboard))
}

// Score returns the mirrored score and pause flag.
func (m *Mirror) Score() ScoreData {
	return *m.score(m.world)
}

// Berries returns the number of berry entities, eaten ones included.
func (m *Mirror) Berries() int {
	return berryQuery.Count(m.world)
}

// LiveBerries returns the number of berry entities not yet eaten.
func (m *Mirror) LiveBerries() int {
	n := 0
	berryQuery.Each(m.world, func(entry *donburi.Entry) {
		if !Berry.Get(entry).Eaten {
			n++
		}
	})
	return n
}
