// Package tui рисует забег в терминале видом сверху.
package tui

import (
	"fmt"
	"math"

	"go-endless-runner/internal/app"
	"go-endless-runner/internal/component"
	"go-endless-runner/pkg/render"

	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth  = 0.5   // мировых единиц на колонку
	viewDepth  = 200.0 // глубина, которая помещается на экран
	hudRows    = 1
	rollMargin = 0.05
)

var (
	obstacleStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(242, 82, 173))
	shipStyle     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(207, 14, 62)).Bold(true)
	gridStyle     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(40, 60, 160))
	textStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	lowStyle      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer рисует снимок игры на tcell-экран.
type Renderer struct {
	screen    tcell.Screen
	maxHealth int
}

func NewRenderer(screen tcell.Screen, maxHealth int) *Renderer {
	return &Renderer{screen: screen, maxHealth: maxHealth}
}

// Draw рисует кадр и показывает его.
func (r *Renderer) Draw(s app.Snapshot) {
	r.screen.Clear()
	w, h := r.screen.Size()
	if w <= 0 || h <= hudRows+1 {
		r.screen.Show()
		return
	}

	r.drawGrid(s, w, h)
	// ближние рисуются последними и перекрывают дальние
	order := render.DepthOrder(s.Entities, nil)
	for _, i := range order {
		e := s.Entities[i]
		rel := render.RelativeToPlayer(e.Position, s.Scroll, s.LateralOffset)
		col, row, ok := Cell(rel, w, h)
		if !ok {
			continue
		}
		r.screen.SetContent(col, row, EntityGlyph(e), nil, entityStyle(e))
	}

	col, row, _ := Cell(component.Vec3{}, w, h)
	r.screen.SetContent(col, row, ShipGlyph(s.RollAngle), nil, shipStyle)

	r.drawHUD(s)
	r.drawBanner(s, w, h)
	r.screen.Show()
}

func (r *Renderer) drawGrid(s app.Snapshot, w, h int) {
	step := viewDepth / float64(h-hudRows-1) * 4
	for z := step - math.Mod(s.Scroll, step); z < viewDepth; z += step {
		_, row, ok := Cell(component.Vec3{Z: -z}, w, h)
		if !ok {
			continue
		}
		for x := 0; x < w; x += 2 {
			r.screen.SetContent(x, row, '·', nil, gridStyle)
		}
	}
}

func (r *Renderer) drawHUD(s app.Snapshot) {
	style := textStyle
	if r.maxHealth > 0 && s.Health*3 <= r.maxHealth {
		style = lowStyle
	}
	r.text(0, 0, fmt.Sprintf("HP %d/%d", s.Health, r.maxHealth), style)
	r.text(14, 0, fmt.Sprintf("SCORE %d  DIST %d", s.Score, s.Distance), textStyle)
}

func (r *Renderer) drawBanner(s app.Snapshot, w, h int) {
	var title, sub string
	switch s.Phase {
	case component.Idle:
		title, sub = "ENDLESS RUNNER", "space to start, arrows to steer, q to quit"
	case component.GameOver:
		title, sub = "GAME OVER", fmt.Sprintf("final score %d, distance %d, q to quit", s.Score, s.Distance)
	default:
		return
	}
	r.text((w-len(title))/2, h/2-1, title, textStyle.Bold(true))
	r.text((w-len(sub))/2, h/2+1, sub, textStyle)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// Cell переводит точку в системе игрока в клетку экрана w×h.
// Игрок стоит в нижней строке по центру, верхняя строка занята HUD.
func Cell(rel component.Vec3, w, h int) (col, row int, ok bool) {
	if rel.Z > 0 || rel.Z < -viewDepth {
		return 0, 0, false
	}
	bottom := h - 1
	rows := bottom - hudRows
	col = w/2 + int(math.Round(rel.X/cellWidth))
	row = bottom - int(math.Round(-rel.Z/viewDepth*float64(rows)))
	if col < 0 || col >= w || row < hudRows || row > bottom {
		return 0, 0, false
	}
	return col, row, true
}

// ShipGlyph выбирает символ корабля по крену, как в ShipOutline.
func ShipGlyph(roll float64) rune {
	switch {
	case roll > rollMargin:
		return '/'
	case roll < -rollMargin:
		return '\\'
	}
	return '^'
}

// EntityGlyph - крупные препятствия рисуются плотнее.
func EntityGlyph(e component.Renderable) rune {
	if e.Kind == component.Bonus {
		return '●'
	}
	if e.Scale.X >= 1.25 {
		return '█'
	}
	return '▒'
}

func entityStyle(e component.Renderable) tcell.Style {
	if e.Kind == component.Bonus {
		c := render.BonusColor(e.Hue)
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	return obstacleStyle
}
