package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"go.uber.org/zap"

	sprint "github.com/phanxgames/strawberrysprint"
	"github.com/phanxgames/strawberrysprint/ebitenhost"
	"github.com/phanxgames/strawberrysprint/ecs"
	"github.com/phanxgames/strawberrysprint/internal/chime"
	"github.com/phanxgames/strawberrysprint/internal/config"
	"github.com/phanxgames/strawberrysprint/internal/hostscript"
	"github.com/phanxgames/strawberrysprint/termhost"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	config   string
	term     bool
	headless bool
	ticks    uint64
	script   string
	replay   string
	mute     bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.config, "config", "", "config file (default $"+config.EnvPath+" or "+config.DefaultPath+")")
	flag.BoolVar(&o.term, "term", false, "run in the terminal instead of a window")
	flag.BoolVar(&o.headless, "headless", false, "run without any display")
	flag.Uint64Var(&o.ticks, "ticks", 0, "stop after this many frames in headless mode (0 = until interrupted)")
	flag.StringVar(&o.script, "script", "", "Lua file or directory of key bindings and event handlers")
	flag.StringVar(&o.replay, "replay", "", "YAML input script to replay")
	flag.BoolVar(&o.mute, "mute", false, "disable the eat sound")
	flag.Parse()
	return o
}

func run() error {
	opts := parseFlags()

	cfgPath := config.ResolvePath(opts.config)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()
	log.Info("config loaded", zap.String("path", cfgPath))

	ctrl := sprint.NewController(cfg.Scene)
	ctrl.SetLogger(log)

	// ECS mirror of the scene, fed through the Donburi event bus.
	world := donburi.NewWorld()
	ctrl.AddEventSink(ecs.NewDonburiSink(world))
	mirror := ecs.NewMirror(world)
	ctrl.OnFrame(func() { events.ProcessAllEvents(world) })

	if cfg.Audio.Enabled && !opts.mute && !opts.headless {
		ch := chime.New(chime.Options{
			SampleRate: cfg.Audio.SampleRate,
			Tone:       cfg.Audio.Tone,
			Length:     cfg.Audio.Length,
		}, log)
		if err := ch.Initialize(); err != nil {
			log.Warn("audio unavailable", zap.Error(err))
		} else {
			defer ch.Close()
			ctrl.AddEventSink(ch)
		}
	}

	var keys *hostscript.Engine
	if opts.script != "" {
		keys = hostscript.NewEngine(ctrl, log)
		defer keys.Close()
		if err := keys.Load(opts.script); err != nil {
			return err
		}
		ctrl.AddEventSink(keys)
		ctrl.OnFrame(keys.Flush)
	}

	if opts.replay != "" {
		data, err := os.ReadFile(opts.replay)
		if err != nil {
			return fmt.Errorf("read replay: %w", err)
		}
		runner, err := sprint.LoadTestScript(data)
		if err != nil {
			return err
		}
		ctrl.SetTestRunner(runner)
		log.Info("replay attached", zap.String("path", opts.replay))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case opts.headless:
		err = runHeadless(ctx, ctrl, cfg, opts.ticks)
	case opts.term:
		err = runTerminal(ctx, ctrl, cfg, keys, log)
	default:
		err = runWindow(ctrl, cfg, keys, log)
	}

	score := mirror.Score()
	log.Info("session over",
		zap.Int("score", score.Score),
		zap.Int("berries", mirror.Berries()),
		zap.Int("live", mirror.LiveBerries()))
	return err
}

func runHeadless(ctx context.Context, ctrl *sprint.Controller, cfg *config.Config, ticks uint64) error {
	ctrl.Mount(sprint.SurfaceRect{Width: cfg.Scene.Width, Height: cfg.Scene.Height})
	defer ctrl.Unmount()

	err := sprint.RunLoop(ctx, ctrl, cfg.Term.Tick, ticks)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runTerminal(ctx context.Context, ctrl *sprint.Controller, cfg *config.Config, keys *hostscript.Engine, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	hopts := termhost.Options{Tick: cfg.Term.Tick, Log: log}
	if keys != nil {
		hopts.Keys = keys
	}
	h := termhost.New(screen, ctrl, hopts)
	defer ctrl.Unmount()

	err = h.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runWindow(ctrl *sprint.Controller, cfg *config.Config, keys *hostscript.Engine, log *zap.Logger) error {
	scale := cfg.Window.Scale
	if scale <= 0 {
		scale = 1
	}
	rc := ebitenhost.RunConfig{
		Title:       cfg.Window.Title,
		Width:       int(cfg.Scene.Width * scale),
		Height:      int(cfg.Scene.Height * scale),
		TPS:         cfg.Window.TPS,
		Assets:      cfg.Window.Assets,
		Screenshots: cfg.Window.Shots,
		Log:         log,
	}
	if keys != nil {
		rc.Keys = keys
	}
	return ebitenhost.Run(ctrl, rc)
}
