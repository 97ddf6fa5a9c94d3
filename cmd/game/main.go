// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"go-endless-runner/internal/app"
	"go-endless-runner/internal/audio"
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/input/keyboard"
	"go-endless-runner/internal/logger"
	"go-endless-runner/internal/scene"
	"go-endless-runner/internal/state"
	"go-endless-runner/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		log.Fatal(err)
	}
	zl, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	game, err := app.NewGame(app.Options{
		Tuning: cfg.Tuning,
		Logger: zl,
		Input:  keyboard.New(),
	})
	if err != nil {
		zl.Fatal("failed to create game", zap.Error(err))
	}

	if cfg.Audio.Enabled {
		sound := audio.NewSoundManager(cfg.Audio, cfg.Tuning.Reward, zl)
		if err := sound.Initialize(); err != nil {
			// без звука играть можно
			zl.Warn("audio disabled", zap.Error(err))
		} else {
			sound.Subscribe(game.EventDispatcher)
			defer sound.Cleanup()
		}
	}

	pulse := ui.NewHitPulse(func() float64 { return game.World.GameTime })
	game.EventDispatcher.Subscribe(pulse, ui.PulseEvents...)
	hud, err := ui.NewHUD(cfg.Tuning.StartHealth, pulse)
	if err != nil {
		zl.Fatal("failed to load HUD fonts", zap.Error(err))
	}

	sm := state.NewStateMachine()
	session := &state.Session{
		Game:  game,
		Scene: scene.NewSceneRenderer(config.ScreenWidth, config.ScreenHeight),
		HUD:   hud,
	}
	sm.SetState(state.NewMenuState(sm, session))

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Endless Runner")
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		zl.Fatal("game loop failed", zap.Error(err))
	}
}
