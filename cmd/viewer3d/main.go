// cmd/viewer3d/main.go
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"go-endless-runner/internal/app"
	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/input"
	"go-endless-runner/internal/logger"
	"go-endless-runner/internal/ui"
	"go-endless-runner/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const (
	viewDepth    = 200.0
	gridHalfSpan = 60.0
	healthCells  = 10
)

// keyboardPort читает управление через raylib.
type keyboardPort struct{}

func (keyboardPort) Poll() input.Frame {
	left := rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA)
	right := rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD)
	return input.Frame{
		Axis:  input.AxisFromKeys(left, right),
		Start: rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter),
	}
}

// colorToRL переводит color.RGBA в rl.Color
func colorToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func vec(v component.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
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

	game, err := app.NewGame(app.Options{Tuning: cfg.Tuning, Logger: zl, Input: keyboardPort{}})
	if err != nil {
		zl.Fatal("failed to create game", zap.Error(err))
	}
	pulse := ui.NewHitPulse(func() float64 { return game.World.GameTime })
	game.EventDispatcher.Subscribe(pulse, ui.PulseEvents...)

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Endless Runner 3D | arrows - steer, space - start")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	// --- Настройка 3D камеры ---
	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective
	camera.Fovy = config.CameraFovY
	camera.Position = rl.NewVector3(0, config.CameraHeight, config.CameraBack)
	sin, cos := math.Sincos(config.CameraPitch)
	camera.Target = rl.NewVector3(0, float32(config.CameraHeight+sin*10), float32(config.CameraBack-cos*10))

	for !rl.WindowShouldClose() {
		deltaTime := float64(rl.GetFrameTime())
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		game.Tick(deltaTime)
		s := game.Snapshot()

		rl.BeginDrawing()
		rl.ClearBackground(colorToRL(config.BackgroundColor))

		rl.BeginMode3D(camera)
		drawGrid(s)
		drawEntities(s)
		drawShip(s.RollAngle)
		rl.EndMode3D()

		drawHUD(s, cfg.Tuning.StartHealth, pulse.Scale(s.Time))
		rl.EndDrawing()
	}
}

// drawGrid рисует сетку в системе игрока: продольные линии сдвигаются
// с боковым смещением, поперечные бегут навстречу с фазой сетки.
func drawGrid(s app.Snapshot) {
	clr := colorToRL(config.GridColor)
	shift := math.Mod(s.LateralOffset, config.GridSpacing)
	for x := -gridHalfSpan; x <= gridHalfSpan; x += config.GridSpacing {
		rl.DrawLine3D(
			rl.NewVector3(float32(x+shift), 0, 0),
			rl.NewVector3(float32(x+shift), 0, -viewDepth),
			clr)
	}
	for z := config.GridSpacing - s.GridPhase; z <= viewDepth; z += config.GridSpacing {
		rl.DrawLine3D(
			rl.NewVector3(-gridHalfSpan, 0, float32(-z)),
			rl.NewVector3(gridHalfSpan, 0, float32(-z)),
			clr)
	}
}

func drawEntities(s app.Snapshot) {
	for _, e := range s.Entities {
		rel := render.RelativeToPlayer(e.Position, s.Scroll, s.LateralOffset)
		if rel.Z < -viewDepth {
			continue
		}
		switch e.Kind {
		case component.Obstacle:
			fill := colorToRL(config.ObstacleColor)
			rl.DrawCube(vec(rel), float32(e.Scale.X), float32(e.Scale.Y), float32(e.Scale.Z), fill)
			rl.DrawCubeWires(vec(rel), float32(e.Scale.X), float32(e.Scale.Y), float32(e.Scale.Z), colorToRL(render.DarkenColor(config.ObstacleColor)))
		case component.Bonus:
			rl.DrawSphere(vec(rel), float32(e.Scale.X), colorToRL(render.BonusColor(e.Hue)))
		}
	}
}

func drawShip(roll float64) {
	outline := render.ShipOutline(roll)
	a, b, c := vec(outline[0]), vec(outline[1]), vec(outline[2])
	clr := colorToRL(config.ShipColor)
	// обе стороны, чтобы крыло было видно при любом крене
	rl.DrawTriangle3D(a, c, b, clr)
	rl.DrawTriangle3D(a, b, c, clr)
	rl.DrawSphere(rl.NewVector3(0, render.ShipHeight, 0), 0.08, colorToRL(config.ReactorColor))
}

// drawHUD рисует здоровье сеткой кружков, как индикатор здоровья игрока.
func drawHUD(s app.Snapshot, maxHealth int, scale float64) {
	const radius = 8.0
	const spacing = 4.0
	x0 := float32(config.HUDMargin)
	y0 := float32(config.HUDMargin + 25)

	frac := ui.HealthFraction(s.Health, maxHealth)
	fill := colorToRL(ui.HealthColor(frac))
	r := float32(radius * scale)
	for i, on := range ui.HealthCells(s.Health, maxHealth, healthCells) {
		cx := int32(x0 + float32(i)*(radius*2+spacing) + radius)
		cy := int32(y0 + radius)
		clr := rl.Black
		if on {
			clr = fill
		}
		rl.DrawCircle(cx, cy, r, clr)
		rl.DrawCircleLines(cx, cy, r, rl.White)
	}

	text := colorToRL(config.TextLightColor)
	rl.DrawText(fmt.Sprintf("%d/%d", s.Health, maxHealth), int32(x0), int32(config.HUDMargin), 20, text)
	rl.DrawText(fmt.Sprintf("SCORE %d   DISTANCE %d", s.Score, s.Distance), int32(x0), int32(y0+radius*2+12), 20, text)

	title, subtitle := ui.Banner(s)
	if title == "" {
		return
	}
	if s.Phase == component.GameOver {
		rl.DrawRectangle(0, 0, config.ScreenWidth, config.ScreenHeight, colorToRL(config.OverlayColor))
	}
	centered(title, config.ScreenHeight/2-config.BannerFontSize, config.BannerFontSize, text)
	centered(subtitle, config.ScreenHeight/2+10, config.HUDFontSize, text)
}

func centered(label string, y, size int32, clr rl.Color) {
	w := rl.MeasureText(label, size)
	rl.DrawText(label, (config.ScreenWidth-w)/2, y, size, clr)
}
