package hostscript

import (
	"os"
	"path/filepath"
	"testing"

	sprint "github.com/phanxgames/strawberrysprint"
)

type fakeController struct {
	spawns   int
	spawnsAt [][2]float64
	resets   int
	paused   bool
	score    int
}

func (f *fakeController) SpawnBerry()               { f.spawns++ }
func (f *fakeController) SpawnBerryAt(x, y float64) { f.spawnsAt = append(f.spawnsAt, [2]float64{x, y}) }
func (f *fakeController) TogglePause() bool         { f.paused = !f.paused; return f.paused }
func (f *fakeController) ResetArt()                 { f.resets++ }
func (f *fakeController) IsPaused() bool            { return f.paused }
func (f *fakeController) Score() int                { return f.score }

func newTestEngine(t *testing.T) (*Engine, *fakeController) {
	t.Helper()
	ctrl := &fakeController{score: 7}
	e := NewEngine(ctrl, nil)
	t.Cleanup(e.Close)
	return e, ctrl
}

func TestVisTable(t *testing.T) {
	e, ctrl := newTestEngine(t)
	err := e.LoadString(`
vis.spawnBerry()
vis.spawnBerryAt(500, 353)
first = vis.togglePause()
now = vis.isPaused()
s = vis.score()
vis.resetArt()
`)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if ctrl.spawns != 1 || len(ctrl.spawnsAt) != 1 || ctrl.spawnsAt[0] != [2]float64{500, 353} {
		t.Errorf("spawns = %d at %v", ctrl.spawns, ctrl.spawnsAt)
	}
	if ctrl.resets != 1 || !ctrl.paused {
		t.Errorf("resets = %d paused = %v", ctrl.resets, ctrl.paused)
	}
	if e.vm.GetGlobal("first").String() != "true" || e.vm.GetGlobal("now").String() != "true" {
		t.Error("togglePause/isPaused should return the new flag")
	}
	if e.vm.GetGlobal("s").String() != "7" {
		t.Errorf("score = %s, want 7", e.vm.GetGlobal("s").String())
	}
}

func TestBindKey(t *testing.T) {
	e, ctrl := newTestEngine(t)
	if err := e.LoadString(`bindKey("B", function() vis.spawnBerry() end)`); err != nil {
		t.Fatal(err)
	}

	if !e.HandleKey("b") {
		t.Fatal("b should be bound")
	}
	if e.HandleKey("x") {
		t.Error("x should not be bound")
	}
	if ctrl.spawns != 1 {
		t.Errorf("spawns = %d, want 1", ctrl.spawns)
	}
}

func TestHandleKeyScriptErrorIsContained(t *testing.T) {
	e, _ := newTestEngine(t)
	if err := e.LoadString(`bindKey("e", function() error("boom") end)`); err != nil {
		t.Fatal(err)
	}
	if !e.HandleKey("e") {
		t.Error("bound key should report handled even when the script fails")
	}
}

func TestLoadStringSyntaxError(t *testing.T) {
	e, _ := newTestEngine(t)
	if err := e.LoadString("vis.spawnBerry("); err == nil {
		t.Error("expected syntax error")
	}
}

func TestOnEventFlush(t *testing.T) {
	e, _ := newTestEngine(t)
	if err := e.LoadString(`
eaten = 0
last_score = 0
function on_event(name, ev)
  if name == "berry_eaten" then
    eaten = eaten + 1
    last_score = ev.score
  end
end
`); err != nil {
		t.Fatal(err)
	}

	e.EmitEvent(sprint.SceneEvent{Type: sprint.EventBerryEaten, Score: 3})
	e.EmitEvent(sprint.SceneEvent{Type: sprint.EventBerrySpawned})
	if e.vm.GetGlobal("eaten").String() != "0" {
		t.Fatal("events should wait for Flush")
	}
	e.Flush()

	if e.vm.GetGlobal("eaten").String() != "1" || e.vm.GetGlobal("last_score").String() != "3" {
		t.Errorf("eaten = %s last_score = %s", e.vm.GetGlobal("eaten"), e.vm.GetGlobal("last_score"))
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "keys.lua"), []byte(`bindKey("k", function() vis.resetArt() end)`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not lua"), 0o644); err != nil {
		t.Fatal(err)
	}

	e, ctrl := newTestEngine(t)
	if err := e.Load(dir); err != nil {
		t.Fatalf("Load: %v", err)
	}
	e.HandleKey("k")
	if ctrl.resets != 1 {
		t.Errorf("resets = %d, want 1", ctrl.resets)
	}
	if err := e.LoadDir(filepath.Join(dir, "missing")); err != nil {
		t.Errorf("missing dir should be skipped: %v", err)
	}
}

func TestEngineDrivesRealController(t *testing.T) {
	c := sprint.NewController(sprint.DefaultConfig())
	c.Mount(sprint.SurfaceRect{Width: 1000, Height: 562})
	e := NewEngine(c, nil)
	defer e.Close()

	if err := e.LoadString(`vis.spawnBerry(); vis.spawnBerry()`); err != nil {
		t.Fatal(err)
	}
	if n := len(c.State().Berries); n != 6 {
		t.Errorf("berries = %d, want 6", n)
	}
}
