// cmd/terminal/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go-endless-runner/internal/app"
	"go-endless-runner/internal/audio"
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/logger"
	"go-endless-runner/internal/tui"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	logFile := flag.String("log-file", "runner.log", "log destination while the terminal is in use")
	flag.Parse()

	if err := run(flags, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "runner: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *config.Flags, logFile string) error {
	cfg, err := flags.Load()
	if err != nil {
		return err
	}
	// экран занят tcell, лог в stderr его испортит
	if cfg.Logger.OutputPath == "" || cfg.Logger.OutputPath == "stderr" || cfg.Logger.OutputPath == "stdout" {
		cfg.Logger.OutputPath = logFile
	}
	zl, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer zl.Sync()

	keys := tui.NewKeyInput(tui.DefaultHold, nil)
	game, err := app.NewGame(app.Options{Tuning: cfg.Tuning, Logger: zl, Input: keys})
	if err != nil {
		return err
	}

	if cfg.Audio.Enabled {
		sound := audio.NewSoundManager(cfg.Audio, cfg.Tuning.Reward, zl)
		if err := sound.Initialize(); err != nil {
			zl.Warn("audio disabled", zap.Error(err))
		} else {
			sound.Subscribe(game.EventDispatcher)
			defer sound.Cleanup()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	loop(screen, game, keys, tui.NewRenderer(screen, cfg.Tuning.StartHealth))
	return nil
}

func loop(screen tcell.Screen, game *app.Game, keys *tui.KeyInput, renderer *tui.Renderer) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			if keys.HandleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			last = now
			game.Tick(dt)
			renderer.Draw(game.Snapshot())
		}
	}
}
