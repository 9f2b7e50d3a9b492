// Package ebitenhost runs a sprint scene in an Ebitengine window.
//
// The window is the surface: its size in pixels is the viewport the stage is
// fitted into. Images are loaded from an assets directory when present and
// drawn as flat shapes otherwise.
package ebitenhost

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	sprint "github.com/phanxgames/strawberrysprint"
)

// KeyHandler gets first refusal on key presses.
type KeyHandler interface {
	HandleKey(key string) bool
}

// RunConfig configures the window and the frame hooks.
type RunConfig struct {
	Title       string
	Width       int // initial window size in pixels
	Height      int
	TPS         int
	Assets      string // directory holding background.png, kitty.png, berry.png
	Screenshots string
	Keys        KeyHandler
	AfterFrame  func()
	Log         *zap.Logger
}

// Game implements ebiten.Game and sprint.Surface for one controller.
type Game struct {
	ctrl   *sprint.Controller
	cfg    RunConfig
	log    *zap.Logger
	render renderer
	shots  *Screenshotter
	crumbs *crumbPool
	fps    fpsOverlay

	width, height int
	paused        bool
	keys          []ebiten.Key
}

// NewGame mounts ctrl into a window-sized surface.
func NewGame(ctrl *sprint.Controller, cfg RunConfig) (*Game, error) {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		w, h := ctrl.Config().Width, ctrl.Config().Height
		cfg.Width, cfg.Height = int(w), int(h)
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}

	images, err := LoadImages(cfg.Assets)
	if err != nil {
		return nil, err
	}
	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}

	g := &Game{
		ctrl:   ctrl,
		cfg:    cfg,
		log:    cfg.Log,
		render: renderer{images: images, fonts: fonts},
		shots:  NewScreenshotter(cfg.Screenshots, cfg.Log),
		crumbs: newCrumbPool(defaultCrumbs, 256),
		width:  cfg.Width,
		height: cfg.Height,
	}
	ctrl.SetScreenshotter(g.shots)
	ctrl.AddEventSink(g.crumbs)
	ctrl.Mount(g)
	g.paused = ctrl.IsPaused()
	g.log.Info("window host ready",
		zap.Int("images", len(images)),
		zap.Int("tps", cfg.TPS))
	return g, nil
}

// Bounds reports the window size in pixels.
func (g *Game) Bounds() sprint.Rect {
	return sprint.Rect{Width: float64(g.width), Height: float64(g.height)}
}

// Screenshotter returns the capture queue used for F12 and script steps.
func (g *Game) Screenshotter() *Screenshotter { return g.shots }

// Update samples input and advances one frame.
func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	g.ctrl.SamplePointer(float64(x), float64(y), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if k == ebiten.KeyEscape {
			return ebiten.Termination
		}
		g.handleKey(k)
	}

	dt := time.Second / time.Duration(g.cfg.TPS)
	g.ctrl.Frame(dt)
	if g.cfg.AfterFrame != nil {
		g.cfg.AfterFrame()
	}
	g.crumbs.update(dt.Seconds())
	if st := g.ctrl.Stage(); st != nil {
		g.fps.update(dt.Seconds(), len(g.ctrl.State().Berries), st.Animations())
	}
	return nil
}

func (g *Game) handleKey(k ebiten.Key) {
	if g.cfg.Keys != nil && g.cfg.Keys.HandleKey(keyName(k)) {
		g.paused = g.ctrl.IsPaused()
		return
	}
	switch k {
	case ebiten.KeyS:
		g.ctrl.SpawnBerry()
	case ebiten.KeyP:
		g.paused = g.ctrl.TogglePause()
	case ebiten.KeyR:
		g.ctrl.ResetArt()
		g.paused = g.ctrl.IsPaused()
	case ebiten.KeyF3:
		g.fps.toggle()
	case ebiten.KeyF12:
		g.shots.Screenshot("f12")
	}
}

// keyName is the lowercase name scripts bind keys by.
func keyName(k ebiten.Key) string {
	return strings.ToLower(k.String())
}

// PausedLabel is the pause button text mirroring the pause flag.
func (g *Game) PausedLabel() string {
	if g.paused {
		return "Resume (P)"
	}
	return "Pause (P)"
}

// Draw renders the stage, the pause label, and any queued screenshots.
func (g *Game) Draw(screen *ebiten.Image) {
	st := g.ctrl.Stage()
	if st == nil {
		return
	}
	g.render.draw(screen, st)
	g.crumbs.draw(screen, st.View())
	g.render.drawPauseLabel(screen, g.PausedLabel())
	g.fps.draw(screen)
	g.shots.flush(screen)
}

// Layout uses the window size as the surface and refits the stage when it
// changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if g.ctrl.Stage() != nil {
			g.ctrl.Resize(g.Bounds())
		}
	}
	return g.width, g.height
}

// Run opens the window and blocks until it is closed or Esc is pressed.
func Run(ctrl *sprint.Controller, cfg RunConfig) error {
	g, err := NewGame(ctrl, cfg)
	if err != nil {
		return err
	}
	defer ctrl.Unmount()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.cfg.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	g.log.Info("window closed", zap.Int("score", ctrl.Score()))
	return nil
}
