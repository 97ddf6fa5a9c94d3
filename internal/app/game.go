// internal/app/game.go
package app

import (
	"fmt"

	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/entity"
	"go-endless-runner/internal/event"
	"go-endless-runner/internal/input"
	"go-endless-runner/internal/system"
	"go-endless-runner/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options - зависимости, с которыми собирается Game.
type Options struct {
	Tuning     config.Tuning
	Logger     *zap.Logger       // nil означает zap.NewNop()
	Input      input.Port        // nil означает ввод только через SetControlAxis и Start
	Dispatcher *event.Dispatcher // nil означает собственный диспетчер
}

// Game holds the simulation state and runs one tick per host frame.
type Game struct {
	World           *entity.World
	Tuning          config.Tuning
	SteeringSystem  *system.SteeringSystem
	SpawnSystem     *system.SpawnSystem
	CollisionSystem *system.CollisionSystem
	ScoreSystem     *system.ScoreSystem
	StateSystem     *system.StateSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Input           input.Port
	SessionID       uuid.UUID

	logger *zap.Logger
}

// NewGame initializes a new game instance and spawns the entity pool.
func NewGame(opts Options) (*Game, error) {
	if err := opts.Tuning.Validate(); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	dispatcher := opts.Dispatcher
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}

	t := opts.Tuning
	world := entity.NewWorld(t.ObstacleCount, t.BonusCount, t.StartHealth)
	rng := utils.NewPRNGService(t.Seed)
	sessionID := uuid.New()

	g := &Game{
		World:           world,
		Tuning:          t,
		EventDispatcher: dispatcher,
		Rng:             rng,
		Input:           opts.Input,
		SessionID:       sessionID,
		logger:          log.With(zap.String("session", sessionID.String())),
	}
	steering, err := system.NewSteeringSystem(world, t, dispatcher)
	if err != nil {
		return nil, fmt.Errorf("failed to create steering: %w", err)
	}
	g.SteeringSystem = steering
	g.StateSystem = system.NewStateSystem(world, dispatcher)
	g.ScoreSystem = system.NewScoreSystem(world, g.StateSystem)
	g.SpawnSystem = system.NewSpawnSystem(world, rng, t, dispatcher)
	g.CollisionSystem = system.NewCollisionSystem(world, g.SpawnSystem, g.ScoreSystem, t, dispatcher)

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(listener,
		event.GameStarted,
		event.GameOver,
		event.ObstacleHit,
		event.BonusCollected,
		event.SteeringChanged,
	)

	g.SpawnSystem.SpawnAll()
	g.logger.Debug("pool spawned",
		zap.Int("obstacles", t.ObstacleCount),
		zap.Int("bonuses", t.BonusCount),
		zap.Int64("seed", rng.Seed()),
	)
	return g, nil
}

// Start - одноразовый сигнал старта Idle -> Running.
func (g *Game) Start() bool {
	return g.StateSystem.Start()
}

// SetControlAxis передаёт ось управления. Вне Running ввод игнорируется.
func (g *Game) SetControlAxis(axis int) {
	if !g.World.Running() {
		return
	}
	g.SteeringSystem.SetAxis(axis)
}

// Tick продвигает симуляцию на deltaTime секунд. Все изменения происходят
// синхронно внутри вызова. Вне Running тик ничего не меняет.
func (g *Game) Tick(deltaTime float64) {
	g.pollInput()
	w := g.World
	if !w.Running() {
		return
	}
	if deltaTime < 0 {
		deltaTime = 0
	}

	w.GameTime += deltaTime
	g.SteeringSystem.Update(deltaTime)
	w.Scroll = g.Tuning.ForwardSpeed * w.GameTime
	g.ScoreSystem.Settle(w.Scroll)

	g.SpawnSystem.ScanAndRecycle(w.Scroll)
	g.CollisionSystem.Update(w.Scroll, w.Player.LateralOffset)
}

func (g *Game) pollInput() {
	if g.Input == nil {
		return
	}
	frame := g.Input.Poll()
	if frame.Start {
		g.Start()
	}
	g.SetControlAxis(frame.Axis)
}

// Phase возвращает текущую фазу симуляции.
func (g *Game) Phase() component.Phase {
	return g.World.Phase
}

// GameEventListener пишет в лог значимые игровые события.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	log := l.game.logger
	switch e.Type {
	case event.GameStarted:
		log.Info("game started")
	case event.GameOver:
		data, _ := e.Data.(event.GameOverData)
		log.Info("game over",
			zap.Int("score", data.Score),
			zap.Int("distance", data.Distance),
			zap.Float64("time", data.Time),
		)
	case event.ObstacleHit:
		data, _ := e.Data.(event.HitData)
		log.Debug("obstacle hit", zap.Int("entity", data.Index), zap.Int("health", data.Health))
	case event.BonusCollected:
		data, _ := e.Data.(event.HitData)
		log.Debug("bonus collected",
			zap.Int("entity", data.Index),
			zap.Int("reward", data.Reward),
			zap.Int("score", data.Score),
		)
	case event.SteeringChanged:
		data, _ := e.Data.(event.SteeringData)
		log.Debug("steering changed", zap.Int("axis", data.Axis), zap.Float64("target", data.Target))
	}
}
