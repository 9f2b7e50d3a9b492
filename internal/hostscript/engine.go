package hostscript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	sprint "github.com/phanxgames/strawberrysprint"
)

// Controller is the command surface exposed to scripts.
type Controller interface {
	SpawnBerry()
	SpawnBerryAt(x, y float64)
	TogglePause() bool
	ResetArt()
	IsPaused() bool
	Score() int
}

// Engine wraps a single gopher-lua VM bound to one controller.
// Single-goroutine access only (the host's frame loop).
//
// Scripts see a global table `vis` with spawnBerry, spawnBerryAt,
// togglePause, resetArt, isPaused, score and log, plus a global
// bindKey(name, fn). An optional global on_event(name, ev) receives scene
// events after each frame.
type Engine struct {
	vm   *lua.LState
	log  *zap.Logger
	ctrl Controller
	keys map[string]*lua.LFunction

	pending []sprint.SceneEvent
}

// NewEngine creates a Lua engine bound to ctrl.
func NewEngine(ctrl Controller, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState(lua.Options{SkipOpenLibs: false})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log, ctrl: ctrl, keys: make(map[string]*lua.LFunction)}
	e.register()
	return e
}

func (e *Engine) register() {
	vis := e.vm.NewTable()
	e.vm.SetFuncs(vis, map[string]lua.LGFunction{
		"spawnBerry": func(L *lua.LState) int {
			e.ctrl.SpawnBerry()
			return 0
		},
		"spawnBerryAt": func(L *lua.LState) int {
			e.ctrl.SpawnBerryAt(float64(L.CheckNumber(1)), float64(L.CheckNumber(2)))
			return 0
		},
		"togglePause": func(L *lua.LState) int {
			L.Push(lua.LBool(e.ctrl.TogglePause()))
			return 1
		},
		"resetArt": func(L *lua.LState) int {
			e.ctrl.ResetArt()
			return 0
		},
		"isPaused": func(L *lua.LState) int {
			L.Push(lua.LBool(e.ctrl.IsPaused()))
			return 1
		},
		"score": func(L *lua.LState) int {
			L.Push(lua.LNumber(e.ctrl.Score()))
			return 1
		},
		"log": func(L *lua.LState) int {
			e.log.Info("lua", zap.String("msg", L.CheckString(1)))
			return 0
		},
	})
	e.vm.SetGlobal("vis", vis)

	e.vm.SetGlobal("bindKey", e.vm.NewFunction(func(L *lua.LState) int {
		key := strings.ToLower(L.CheckString(1))
		fn := L.CheckFunction(2)
		e.keys[key] = fn
		e.log.Debug("lua key bound", zap.String("key", key))
		return 0
	}))
}

// LoadString runs a chunk of Lua source.
func (e *Engine) LoadString(src string) error {
	if err := e.vm.DoString(src); err != nil {
		return fmt.Errorf("run lua: %w", err)
	}
	return nil
}

// LoadFile runs one Lua file.
func (e *Engine) LoadFile(path string) error {
	if err := e.vm.DoFile(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	e.log.Debug("loaded lua script", zap.String("file", path))
	return nil
}

// LoadDir loads every .lua file in dir in name order. A missing directory
// is skipped.
func (e *Engine) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		if err := e.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Load runs path as a file, or every script in it when it is a directory.
func (e *Engine) Load(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if info.IsDir() {
		return e.LoadDir(path)
	}
	return e.LoadFile(path)
}

// HandleKey runs the function bound to key, if any, and reports whether a
// binding existed. Script errors are logged, not returned.
func (e *Engine) HandleKey(key string) bool {
	fn, ok := e.keys[strings.ToLower(key)]
	if !ok {
		return false
	}
	if err := e.vm.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}); err != nil {
		e.log.Error("lua key handler error", zap.String("key", key), zap.Error(err))
	}
	return true
}

// EmitEvent queues a scene event for Flush. Events are not delivered
// synchronously so handlers may call back into the controller.
func (e *Engine) EmitEvent(ev sprint.SceneEvent) {
	e.pending = append(e.pending, ev)
}

// Flush delivers queued events to the global on_event function. Hosts call
// it once per frame, after Controller.Frame.
func (e *Engine) Flush() {
	if len(e.pending) == 0 {
		return
	}
	events := e.pending
	e.pending = nil

	fn, ok := e.vm.GetGlobal("on_event").(*lua.LFunction)
	if !ok {
		return
	}
	for _, ev := range events {
		t := e.vm.NewTable()
		t.RawSetString("berry", lua.LNumber(ev.BerryID))
		t.RawSetString("x", lua.LNumber(ev.X))
		t.RawSetString("y", lua.LNumber(ev.Y))
		t.RawSetString("score", lua.LNumber(ev.Score))
		t.RawSetString("paused", lua.LBool(ev.Paused))
		if err := e.vm.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, lua.LString(ev.Type.String()), t); err != nil {
			e.log.Error("lua on_event error", zap.String("event", ev.Type.String()), zap.Error(err))
		}
	}
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
