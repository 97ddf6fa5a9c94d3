// Package scene рисует трассу в перспективе средствами ebiten.
package scene

import (
	"image/color"
	"math"

	"go-endless-runner/internal/app"
	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"
	"go-endless-runner/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	viewDepth    = 160.0 // дальше этой глубины ничего не рисуется
	gridHalfSpan = 60.0  // сколько сетки видно по бокам
)

// SceneRenderer рисует трассу, препятствия, бонусы и корабль по снимку игры.
type SceneRenderer struct {
	camera  render.Camera
	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
	order   []int
}

func NewSceneRenderer(screenWidth, screenHeight int) *SceneRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &SceneRenderer{
		camera:  render.NewCamera(screenWidth, screenHeight),
		fillImg: fillImg,
		fillVs:  make([]ebiten.Vertex, 0, 16),
		fillIs:  make([]uint16, 0, 16),
	}
}

// Draw рисует кадр целиком.
func (r *SceneRenderer) Draw(screen *ebiten.Image, s app.Snapshot) {
	screen.Fill(config.BackgroundColor)
	r.drawGrid(screen, s)

	r.order = render.DepthOrder(s.Entities, r.order)
	for _, i := range r.order {
		r.drawEntity(screen, s.Entities[i], s)
	}

	r.drawShip(screen, s.RollAngle)
}

func (r *SceneRenderer) drawGrid(screen *ebiten.Image, s app.Snapshot) {
	// Продольные линии неподвижны в мире, поэтому сдвигаются вместе с кораблём.
	shift := math.Mod(s.LateralOffset, config.GridSpacing)
	for x := -gridHalfSpan; x <= gridHalfSpan; x += config.GridSpacing {
		r.line(screen,
			component.Vec3{X: x + shift, Z: 0},
			component.Vec3{X: x + shift, Z: -viewDepth},
			config.GridColor)
	}
	// Поперечные линии неподвижны в мире и бегут навстречу кораблю.
	for z := config.GridSpacing - s.GridPhase; z <= viewDepth; z += config.GridSpacing {
		fog := 1 - z/viewDepth
		r.line(screen,
			component.Vec3{X: -gridHalfSpan, Z: -z},
			component.Vec3{X: gridHalfSpan, Z: -z},
			render.Fade(config.GridColor, fog))
	}
}

func (r *SceneRenderer) line(screen *ebiten.Image, a, b component.Vec3, clr color.RGBA) {
	x0, y0, _, ok0 := r.camera.Project(a)
	x1, y1, _, ok1 := r.camera.Project(b)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
}

func (r *SceneRenderer) drawEntity(screen *ebiten.Image, e component.Renderable, s app.Snapshot) {
	rel := render.RelativeToPlayer(e.Position, s.Scroll, s.LateralOffset)
	if rel.Z < -viewDepth {
		return
	}
	x, y, depth, ok := r.camera.Project(rel)
	if !ok {
		return
	}
	fog := 1 - depth/viewDepth

	switch e.Kind {
	case component.Obstacle:
		w := r.camera.Scale(e.Scale.X, depth)
		h := r.camera.Scale(e.Scale.Y, depth)
		fill := render.Fade(config.ObstacleColor, fog)
		vector.DrawFilledRect(screen, float32(x-w/2), float32(y-h/2), float32(w), float32(h), fill, true)
		vector.StrokeRect(screen, float32(x-w/2), float32(y-h/2), float32(w), float32(h), 1, render.DarkenColor(fill), true)
	case component.Bonus:
		radius := r.camera.Scale(e.Scale.X, depth)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), render.Fade(render.BonusColor(e.Hue), fog), true)
	}
}

func (r *SceneRenderer) drawShip(screen *ebiten.Image, roll float64) {
	outline := render.ShipOutline(roll)
	path := vector.Path{}
	for i, p := range outline {
		x, y, _, ok := r.camera.Project(p)
		if !ok {
			return
		}
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()
	r.fillPath(screen, &path, config.ShipColor)

	// реактор в хвосте
	x, y, depth, ok := r.camera.Project(component.Vec3{Y: render.ShipHeight})
	if ok {
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r.camera.Scale(0.08, depth)), config.ReactorColor, true)
	}
}

func (r *SceneRenderer) fillPath(target *ebiten.Image, path *vector.Path, clr color.RGBA) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(clr.R) / 255
		r.fillVs[i].ColorG = float32(clr.G) / 255
		r.fillVs[i].ColorB = float32(clr.B) / 255
		r.fillVs[i].ColorA = float32(clr.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

