package sprint

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// HUD layout in stage units.
const (
	hudX, hudY          = 18, 18
	hudWidth, hudHeight = 260, 76
	kittyWidth          = 150
	kittyHeight         = 140
	berrySize           = 190
)

// globalRandom draws from the math/rand/v2 top-level source.
type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }

// Screenshotter captures the host's next rendered frame.
type Screenshotter interface {
	Screenshot(label string)
}

// Controller owns one stage and its SceneState and exposes the command
// surface hosts call: Mount, SpawnBerry, TogglePause, ResetArt, IsPaused.
// Before Mount every command is a no-op.
//
// A Controller is not safe for concurrent use; hosts call it from the same
// goroutine that drives Frame.
type Controller struct {
	cfg   Config
	state SceneState
	stage *Stage
	input *InputTracker
	rng   RandomSource
	log   *zap.Logger
	sinks []EventSink

	runner     *TestRunner
	shooter    Screenshotter
	afterFrame []func()

	kittyNode *Node
	scoreNode *Node
	pops      map[uint32]*TweenGroup
}

// NewController creates an unmounted controller. Panics if cfg is invalid.
func NewController(cfg Config) *Controller {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("sprint: invalid config: %v", err))
	}
	c := &Controller{
		cfg:  cfg,
		rng:  globalRandom{},
		log:  zap.NewNop(),
		pops: make(map[uint32]*TweenGroup),
	}
	c.state.Kitty = Kitty{X: cfg.StartX, Y: cfg.StartY}
	c.state.Pointer = PointerState{X: cfg.StartX, Y: cfg.StartY}
	return c
}

// SetLogger replaces the logger. A nil logger disables logging.
func (c *Controller) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	c.log = log
}

// SetRandomSource replaces the source used for spawn positions and bob periods.
func (c *Controller) SetRandomSource(rng RandomSource) {
	c.rng = rng
}

// AddEventSink registers a receiver for scene events.
func (c *Controller) AddEventSink(sink EventSink) {
	c.sinks = append(c.sinks, sink)
}

// OnFrame registers fn to run at the end of every Frame, after the stage
// update. Hooks run in registration order.
func (c *Controller) OnFrame(fn func()) {
	c.afterFrame = append(c.afterFrame, fn)
}

// SetScreenshotter sets the host hook used by screenshot script steps.
func (c *Controller) SetScreenshotter(s Screenshotter) {
	c.shooter = s
}

// Config returns the controller's tuning.
func (c *Controller) Config() Config {
	return c.cfg
}

// State returns the live scene state. Callers MUST NOT mutate it.
func (c *Controller) State() *SceneState {
	return &c.state
}

// Stage returns the mounted stage, or nil before Mount.
func (c *Controller) Stage() *Stage {
	return c.stage
}

// Input returns the input tracker, or nil before Mount.
func (c *Controller) Input() *InputTracker {
	return c.input
}

// Score returns the number of berries eaten since the last reset.
func (c *Controller) Score() int {
	return c.state.Score
}

// --- Lifecycle ---

// Mount builds the stage inside surface, seeds the starting berries, and
// readies the loop. Panics if the controller is already mounted.
func (c *Controller) Mount(surface Surface) {
	if c.stage != nil {
		panic("sprint: controller already mounted")
	}
	st := NewStage(c.cfg.Width, c.cfg.Height)
	st.Attach(surface)
	c.stage = st

	bg := NewNode(NodeImage, NodeAttrs{
		Name:   "background",
		Image:  ImageBackground,
		Width:  c.cfg.Width,
		Height: c.cfg.Height,
	})
	st.Mount(bg, LayerBackground)

	c.mountHUD()

	c.kittyNode = NewNode(NodeImage, NodeAttrs{
		Name:    "kitty",
		Image:   ImageKitty,
		Width:   kittyWidth,
		Height:  kittyHeight,
		AnchorX: 0.5,
		AnchorY: 0.5,
	})
	c.kittyNode.SetPosition(c.state.Kitty.X, c.state.Kitty.Y)
	st.Mount(c.kittyNode, LayerEntities)

	c.input = newInputTracker(st, &c.state.Pointer)
	c.input.onEnter = func() { c.emit(SceneEvent{Type: EventPointerEnter}) }
	c.input.onLeave = func() { c.emit(SceneEvent{Type: EventPointerLeave}) }
	c.input.onClick = func(float64, float64) { c.SpawnBerry() }

	c.state.LastSpawn = c.state.Now
	c.seed()

	st.Update(0)
	c.log.Info("stage mounted",
		zap.Float64("width", c.cfg.Width),
		zap.Float64("height", c.cfg.Height),
		zap.Int("berries", len(c.state.Berries)))
}

// Unmount detaches the stage. The loop stops; commands that touch the stage
// afterwards panic.
func (c *Controller) Unmount() {
	if c.stage == nil {
		return
	}
	c.stage.Detach()
	c.log.Info("stage unmounted")
}

// Resize refits the stage into new host bounds.
func (c *Controller) Resize(bounds Rect) {
	if c.stage == nil {
		return
	}
	c.stage.SetViewport(bounds)
	c.input.resetPolling()
}

func (c *Controller) mountHUD() {
	hud := NewGroup("hud")
	hud.SetPosition(hudX, hudY)
	hud.AddChild(NewNode(NodeRect, NodeAttrs{
		Name:         "hud_box",
		Width:        hudWidth,
		Height:       hudHeight,
		CornerRadius: 16,
		Fill:         Color{1, 1, 1, 0.95},
		Stroke:       Color{0.07, 0.07, 0.07, 0.12},
	}))
	title := NewNode(NodeText, NodeAttrs{Name: "hud_title", Text: c.cfg.Title, FontSize: 14, Bold: true})
	title.SetPosition(14, 14)
	hud.AddChild(title)

	c.scoreNode = NewNode(NodeText, NodeAttrs{
		Name:     "hud_score",
		Text:     scoreText(0),
		FontSize: 13,
		Fill:     Color{0.07, 0.07, 0.07, 0.75},
	})
	c.scoreNode.SetPosition(14, 42)
	hud.AddChild(c.scoreNode)

	c.stage.Mount(hud, LayerHUD)
}

func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// --- Control API ---

// SpawnBerry creates one berry at a random position, ignoring the auto-spawn
// cooldown and cap.
func (c *Controller) SpawnBerry() {
	if c.stage == nil {
		return
	}
	x, y := spawnPosition(c.rng, &c.cfg)
	c.spawnAt(x, y)
}

// SpawnBerryAt creates one berry at an exact stage position.
func (c *Controller) SpawnBerryAt(x, y float64) {
	if c.stage == nil {
		return
	}
	c.spawnAt(x, y)
}

// TogglePause flips the pause flag and returns the new value.
func (c *Controller) TogglePause() bool {
	if c.stage == nil {
		return false
	}
	c.state.Paused = !c.state.Paused
	c.log.Debug("pause toggled", zap.Bool("paused", c.state.Paused))
	c.emit(SceneEvent{Type: EventPauseToggled, Paused: c.state.Paused, Score: c.state.Score})
	return c.state.Paused
}

// IsPaused reports the pause flag.
func (c *Controller) IsPaused() bool {
	if c.stage == nil {
		return false
	}
	return c.state.Paused
}

// ResetArt clears every berry without animation, zeroes the score, parks the
// kitty at the rest point, and seeds fresh berries. Paused is left alone.
func (c *Controller) ResetArt() {
	if c.stage == nil {
		return
	}
	for _, b := range c.state.takeBerries() {
		if b.bob != nil {
			b.bob.stop()
		}
		c.stage.Unmount(b.node)
		b.node.Dispose()
	}

	c.state.Score = 0
	c.scoreNode.SetText(scoreText(0))

	rx, ry := c.cfg.restPoint()
	c.state.Kitty = Kitty{X: rx, Y: ry}
	c.kittyNode.SetPosition(rx, ry)

	c.log.Debug("scene reset", zap.Bool("paused", c.state.Paused))
	c.emit(SceneEvent{Type: EventReset, Paused: c.state.Paused})

	c.seed()
}

// --- Pointer input ---

// PointerEnter forwards a pointer-enter event from the host.
func (c *Controller) PointerEnter() {
	if c.input != nil {
		c.input.PointerEnter()
	}
}

// PointerLeave forwards a pointer-leave event from the host.
func (c *Controller) PointerLeave() {
	if c.input != nil {
		c.input.PointerLeave()
	}
}

// PointerMove forwards a pointer position in device coordinates.
func (c *Controller) PointerMove(dx, dy float64) {
	if c.input != nil {
		c.input.PointerMove(dx, dy)
	}
}

// PointerClick forwards a click in device coordinates. A click spawns a berry.
func (c *Controller) PointerClick(dx, dy float64) {
	if c.input != nil {
		c.input.PointerClick(dx, dy)
	}
}

// SamplePointer feeds one polled cursor reading in device coordinates.
func (c *Controller) SamplePointer(dx, dy float64, pressed bool) {
	if c.input != nil {
		c.input.Sample(dx, dy, pressed)
	}
}

// --- Internals ---

func (c *Controller) seed() {
	for i := 0; i < c.cfg.InitialBerries; i++ {
		c.SpawnBerry()
	}
}

func (c *Controller) spawnAt(x, y float64) *Berry {
	node := NewGroup("berry")
	node.AddChild(NewNode(NodeImage, NodeAttrs{
		Name:    "berry_sprite",
		Image:   ImageBerry,
		Width:   berrySize,
		Height:  berrySize,
		AnchorX: 0.5,
		AnchorY: 0.5,
	}))
	node.SetTransform(x, y, c.cfg.BerryScale)
	c.stage.Mount(node, LayerEntities)

	b := &Berry{X: x, Y: y, R: c.cfg.BerryRadius, node: node}
	c.state.addBerry(b)
	node.UserData = b.ID

	period := bobPeriod(c.rng, &c.cfg)
	b.bob = newBobTween(node, c.cfg.BerryBobAmp, float32(period.Seconds()))
	c.stage.addAnimator(b.bob)

	c.log.Debug("berry spawned",
		zap.Uint32("berry", b.ID),
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Int("live", c.state.LiveBerries()))
	c.emit(SceneEvent{Type: EventBerrySpawned, BerryID: b.ID, X: x, Y: y, Score: c.state.Score})
	return b
}

// eat starts the pop animation for a berry that collision just marked eaten.
// The pop detaches the node when it finishes; a reset that already detached
// it turns the completion into a no-op.
func (c *Controller) eat(b *Berry) {
	if b.bob != nil {
		b.bob.stop()
	}
	c.scoreNode.SetText(scoreText(c.state.Score))

	pop := TweenPop(b.node, c.cfg.PopAlpha, c.cfg.PopGrow, float32(c.cfg.PopDuration.Seconds()), ease.Linear)
	id := b.ID
	pop.OnDone = func() {
		delete(c.pops, id)
		c.detachBerry(b)
	}
	c.pops[id] = pop
	c.stage.addAnimator(pop)

	c.log.Debug("berry eaten", zap.Uint32("berry", id), zap.Int("score", c.state.Score))
	c.emit(SceneEvent{Type: EventBerryEaten, BerryID: id, X: b.X, Y: b.Y, Score: c.state.Score})
}

// detachBerry removes a berry's node if it is still on the stage.
func (c *Controller) detachBerry(b *Berry) {
	if !c.stage.Mounted() || !c.stage.IsMounted(b.node) {
		return
	}
	c.stage.Unmount(b.node)
	b.node.Dispose()
	c.emit(SceneEvent{Type: EventBerryRemoved, BerryID: b.ID, X: b.X, Y: b.Y, Score: c.state.Score})
}

// PendingPops returns the number of pop animations still running.
func (c *Controller) PendingPops() int {
	return len(c.pops)
}

func (c *Controller) emit(e SceneEvent) {
	for _, s := range c.sinks {
		s.EmitEvent(e)
	}
}

// frameSeconds converts a frame delta to the float32 seconds tweens use.
func frameSeconds(dt time.Duration) float32 {
	return float32(dt.Seconds())
}
