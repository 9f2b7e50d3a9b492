// Package termhost runs a sprint scene in a terminal with tcell.
//
// The stage is fitted into the terminal with cells counted as one device
// unit wide and two tall, so the art keeps roughly its proportions. Mouse
// motion steers the kitty, a left click spawns a berry, and S, P and R map
// to the control API.
//
// Terminals report no pointer-leave event. The pointer counts as having left
// the stage when the mouse moves onto the letterbox or the status row, or
// when the terminal loses focus.
package termhost

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	sprint "github.com/phanxgames/strawberrysprint"
)

// cellAspect is the height of one cell in device units.
const cellAspect = 2

// KeyHandler gets first refusal on key presses.
type KeyHandler interface {
	HandleKey(key string) bool
}

// Options configure a Host.
type Options struct {
	Tick       time.Duration // frame interval; 16ms when zero
	Keys       KeyHandler    // optional, e.g. a Lua engine
	AfterFrame func()        // optional, runs after each Frame
	Log        *zap.Logger
}

// Host drives one controller on one tcell screen.
type Host struct {
	screen tcell.Screen
	ctrl   *sprint.Controller
	opts   Options
	log    *zap.Logger

	cols, rows int
	paused     bool // mirrors the last TogglePause result
	pressed    bool
}

// New creates a host for screen and mounts ctrl into it. The screen must
// already be initialized; the caller keeps ownership and calls Fini.
func New(screen tcell.Screen, ctrl *sprint.Controller, opts Options) *Host {
	if opts.Tick <= 0 {
		opts.Tick = 16 * time.Millisecond
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	h := &Host{screen: screen, ctrl: ctrl, opts: opts, log: opts.Log}
	h.cols, h.rows = screen.Size()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	ctrl.Mount(h)
	h.paused = ctrl.IsPaused()
	return h
}

// Bounds reports the drawable area in device units. The last row is kept
// for the status line.
func (h *Host) Bounds() sprint.Rect {
	rows := h.rows - 1
	if rows < 1 {
		rows = 1
	}
	return sprint.Rect{Width: float64(h.cols), Height: float64(rows * cellAspect)}
}

// Run processes input and frames until ctx is done or the user quits with
// Esc or Ctrl-C. Returns ctx.Err() on cancellation and nil on quit.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.opts.Tick)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-eventChan:
			if !h.HandleEvent(ev) {
				h.log.Info("terminal host quit")
				return nil
			}
		case <-ticker.C:
			h.Tick()
		}
	}
}

// Tick advances one frame and redraws.
func (h *Host) Tick() {
	h.ctrl.Frame(h.opts.Tick)
	if h.opts.AfterFrame != nil {
		h.opts.AfterFrame()
	}
	h.Draw()
}

// HandleEvent applies one tcell event. Returns false when the user asked
// to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			h.handleRune(ev.Rune())
		}

	case *tcell.EventMouse:
		cx, cy := ev.Position()
		h.pressed = ev.Buttons()&tcell.Button1 != 0
		dx, dy := cellToDevice(cx, cy)
		h.ctrl.SamplePointer(dx, dy, h.pressed)

	case *tcell.EventFocus:
		if !ev.Focused {
			h.pressed = false
			h.ctrl.PointerLeave()
		}

	case *tcell.EventResize:
		h.screen.Sync()
		h.cols, h.rows = h.screen.Size()
		h.ctrl.Resize(h.Bounds())
		h.log.Debug("terminal resized", zap.Int("cols", h.cols), zap.Int("rows", h.rows))
	}
	return true
}

func (h *Host) handleRune(r rune) {
	key := string(r)
	if h.opts.Keys != nil && h.opts.Keys.HandleKey(key) {
		h.paused = h.ctrl.IsPaused()
		return
	}
	switch r {
	case 's', 'S':
		h.ctrl.SpawnBerry()
	case 'p', 'P':
		h.paused = h.ctrl.TogglePause()
	case 'r', 'R':
		h.ctrl.ResetArt()
		h.paused = h.ctrl.IsPaused()
	}
}

// cellToDevice returns the device point at the center of a cell.
func cellToDevice(cx, cy int) (float64, float64) {
	return float64(cx) + 0.5, float64(cy*cellAspect) + cellAspect/2.0
}

// deviceToCell returns the cell containing a device point.
func deviceToCell(dx, dy float64) (int, int) {
	return int(dx), int(dy / cellAspect)
}

// PausedLabel is the status text mirroring the pause flag.
func (h *Host) PausedLabel() string {
	if h.paused {
		return "Resume (P)"
	}
	return "Pause (P)"
}

var (
	styleKitty  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBerry  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePopped = tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleFrame  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus = tcell.StyleDefault.Reverse(true)
)

// Draw renders the stage and the status line.
func (h *Host) Draw() {
	h.screen.Clear()
	st := h.ctrl.Stage()
	if st == nil {
		h.screen.Show()
		return
	}
	h.drawFrame(st)
	st.Walk(func(n *sprint.Node) {
		h.drawNode(st, n)
	})
	h.drawStatus()
	h.screen.Show()
}

func (h *Host) drawFrame(st *sprint.Stage) {
	w, ht := st.Size()
	x0, y0 := deviceToCell(st.LogicalToDevice(0, 0))
	x1, y1 := deviceToCell(st.LogicalToDevice(w, ht))
	x1, y1 = x1-1, y1-1
	for x := x0; x <= x1; x++ {
		h.screen.SetContent(x, y0, '─', nil, styleFrame)
		h.screen.SetContent(x, y1, '─', nil, styleFrame)
	}
	for y := y0; y <= y1; y++ {
		h.screen.SetContent(x0, y, '│', nil, styleFrame)
		h.screen.SetContent(x1, y, '│', nil, styleFrame)
	}
}

func (h *Host) drawNode(st *sprint.Stage, n *sprint.Node) {
	wx, wy := n.LocalToWorld(0, 0)
	cx, cy := deviceToCell(st.LogicalToDevice(wx, wy))

	switch n.Kind {
	case sprint.NodeImage:
		switch n.Image {
		case sprint.ImageKitty:
			h.screen.SetContent(cx, cy, '@', nil, styleKitty)
		case sprint.ImageBerry:
			if n.WorldAlpha() < 0.5 {
				h.screen.SetContent(cx, cy, '·', nil, stylePopped)
			} else {
				h.screen.SetContent(cx, cy, '●', nil, styleBerry)
			}
		}
	case sprint.NodeText:
		h.drawText(cx, cy+1, n.Text, styleHUD)
	}
}

func (h *Host) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		h.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (h *Host) drawStatus() {
	line := fmt.Sprintf(" Score: %d  |  S spawn  %s  R reset  Esc quit ", h.ctrl.Score(), h.PausedLabel())
	h.drawText(0, h.rows-1, line, styleStatus)
}
