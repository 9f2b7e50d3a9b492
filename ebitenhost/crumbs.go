package ebitenhost

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	sprint "github.com/phanxgames/strawberrysprint"
)

// crumb holds per-particle state in stage coordinates.
type crumb struct {
	x, y    float64
	vx, vy  float64
	life    float64 // remaining lifetime in seconds
	maxLife float64
	size    float64
	alpha   float64
}

// crumbConfig controls a burst.
type crumbConfig struct {
	PerBurst int
	Lifetime [2]float64 // seconds
	Speed    [2]float64 // stage units per second
	Size     [2]float64
	Gravity  float64
	Color    sprint.Color
}

var defaultCrumbs = crumbConfig{
	PerBurst: 14,
	Lifetime: [2]float64{0.35, 0.6},
	Speed:    [2]float64{120, 260},
	Size:     [2]float64{3, 6},
	Gravity:  520,
	Color:    sprint.Color{R: 0.93, G: 0.24, B: 0.33, A: 1},
}

// crumbPool is a fixed pool of short-lived particles thrown out when a berry
// is eaten. New crumbs are dropped when the pool is full.
type crumbPool struct {
	cfg    crumbConfig
	crumbs []crumb
	alive  int
	rng    func() float64
}

func newCrumbPool(cfg crumbConfig, max int) *crumbPool {
	if max <= 0 {
		max = 128
	}
	return &crumbPool{cfg: cfg, crumbs: make([]crumb, max), rng: rand.Float64}
}

// EmitEvent bursts crumbs at the position of each eaten berry.
func (p *crumbPool) EmitEvent(e sprint.SceneEvent) {
	if e.Type == sprint.EventBerryEaten {
		p.burst(e.X, e.Y)
	}
}

func (p *crumbPool) burst(x, y float64) {
	for i := 0; i < p.cfg.PerBurst && p.alive < len(p.crumbs); i++ {
		c := &p.crumbs[p.alive]
		angle := p.rng() * 2 * math.Pi
		speed := p.between(p.cfg.Speed)
		*c = crumb{
			x: x, y: y,
			vx:    math.Cos(angle) * speed,
			vy:    math.Sin(angle) * speed,
			life:  p.between(p.cfg.Lifetime),
			size:  p.between(p.cfg.Size),
			alpha: 1,
		}
		c.maxLife = c.life
		p.alive++
	}
}

func (p *crumbPool) between(r [2]float64) float64 {
	return r[0] + p.rng()*(r[1]-r[0])
}

// update advances every crumb by dt seconds, swap-removing dead ones.
func (p *crumbPool) update(dt float64) {
	i := 0
	for i < p.alive {
		c := &p.crumbs[i]
		c.life -= dt
		if c.life <= 0 {
			p.alive--
			p.crumbs[i] = p.crumbs[p.alive]
			continue
		}
		c.vy += p.cfg.Gravity * dt
		c.x += c.vx * dt
		c.y += c.vy * dt
		c.alpha = c.life / c.maxLife
		i++
	}
}

// Alive returns the number of live crumbs.
func (p *crumbPool) Alive() int {
	return p.alive
}

func (p *crumbPool) draw(dst *ebiten.Image, view [6]float64) {
	for i := 0; i < p.alive; i++ {
		c := &p.crumbs[i]
		fillPolygon(dst, circlePoints(c.x, c.y, c.size, 8), view, tinted(p.cfg.Color, c.alpha))
	}
}
