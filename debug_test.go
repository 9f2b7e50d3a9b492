package sprint

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReleaseModeDisposedNodeNoPanic(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	child.Dispose()

	parent.AddChild(child)
	if parent.NumChildren() != 1 {
		t.Errorf("children = %d, want 1", parent.NumChildren())
	}
}

func TestLogStateLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := newMounted(t, cornerRandom())
	c.SetLogger(zap.New(core))

	c.LogState()
	entries := logs.FilterMessage("scene state").All()
	if len(entries) != 1 || entries[0].Level != zapcore.DebugLevel {
		t.Fatalf("entries = %+v, want one debug entry", entries)
	}
	fields := entries[0].ContextMap()
	if fields["berries"] != int64(4) || fields["paused"] != false {
		t.Errorf("fields = %v", fields)
	}
	if _, ok := fields["animations"]; !ok {
		t.Error("mounted state should report animations")
	}

	SetDebugMode(true)
	defer SetDebugMode(false)
	c.LogState()
	entries = logs.FilterMessage("scene state").All()
	if len(entries) != 2 || entries[1].Level != zapcore.InfoLevel {
		t.Errorf("debug mode should log at info, got %+v", entries)
	}
}

func TestLogStateBeforeMount(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := NewController(DefaultConfig())
	c.SetLogger(zap.New(core))
	c.LogState()

	entries := logs.FilterMessage("scene state").All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if _, ok := entries[0].ContextMap()["animations"]; ok {
		t.Error("unmounted state has no animations field")
	}
}

func TestDebugModeIsProcessWide(t *testing.T) {
	a := NewController(DefaultConfig())
	b := NewController(DefaultConfig())
	core, logs := observer.New(zapcore.DebugLevel)
	b.SetLogger(zap.New(core))

	SetDebugMode(true)
	defer SetDebugMode(false)
	if !DebugMode() {
		t.Fatal("DebugMode should report true")
	}

	a.LogState()
	b.LogState()
	entries := logs.FilterMessage("scene state").All()
	if len(entries) != 1 || entries[0].Level != zapcore.InfoLevel {
		t.Errorf("every controller should log at info in debug mode, got %+v", entries)
	}
}
