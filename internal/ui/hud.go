package ui

import (
	"fmt"
	"image/color"

	"go-endless-runner/internal/app"
	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HUD рисует поверх сцены здоровье, счёт, дистанцию и баннеры состояний.
type HUD struct {
	face       font.Face
	bannerFace font.Face
	maxHealth  int
	pulse      *HitPulse
}

// NewHUD загружает шрифты. pulse может быть nil.
func NewHUD(maxHealth int, pulse *HitPulse) (*HUD, error) {
	face, err := LoadFace(config.HUDFontSize)
	if err != nil {
		return nil, err
	}
	bannerFace, err := LoadFace(config.BannerFontSize)
	if err != nil {
		return nil, err
	}
	return &HUD{face: face, bannerFace: bannerFace, maxHealth: maxHealth, pulse: pulse}, nil
}

func (h *HUD) Draw(screen *ebiten.Image, s app.Snapshot) {
	h.drawHealth(screen, s)

	x := config.HUDMargin
	y := config.HUDMargin*2 + config.HealthBarHeight + config.HUDFontSize
	text.Draw(screen, ScoreLine(s), h.face, x, y, config.TextLightColor)

	title, subtitle := Banner(s)
	if title == "" {
		return
	}
	if s.Phase == component.GameOver {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	}
	h.centered(screen, title, h.bannerFace, config.ScreenHeight/2, config.TextLightColor)
	h.centered(screen, subtitle, h.face, config.ScreenHeight/2+config.BannerFontSize, config.TextLightColor)
}

func (h *HUD) drawHealth(screen *ebiten.Image, s app.Snapshot) {
	frac := HealthFraction(s.Health, h.maxHealth)
	scale := float32(1)
	if h.pulse != nil {
		scale = float32(h.pulse.Scale(s.Time))
	}
	x := float32(config.HUDMargin)
	y := float32(config.HUDMargin)
	w := float32(config.HealthBarWidth) * scale
	hgt := float32(config.HealthBarHeight) * scale

	vector.DrawFilledRect(screen, x, y, w, hgt, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, x, y, w*float32(frac), hgt, HealthColor(frac), false)
	vector.StrokeRect(screen, x, y, w, hgt, 1, config.TextLightColor, false)
}

func (h *HUD) centered(screen *ebiten.Image, label string, face font.Face, y int, clr color.Color) {
	if label == "" {
		return
	}
	bounds := text.BoundString(face, label)
	width := bounds.Max.X - bounds.Min.X
	text.Draw(screen, label, face, (config.ScreenWidth-width)/2, y, clr)
}

// ScoreLine - строка счёта для HUD.
func ScoreLine(s app.Snapshot) string {
	return fmt.Sprintf("SCORE %d   DISTANCE %d", s.Score, s.Distance)
}

// Banner возвращает заголовок и подпись для текущей фазы.
// В фазе Running баннера нет.
func Banner(s app.Snapshot) (title, subtitle string) {
	switch s.Phase {
	case component.Idle:
		return "ENDLESS RUNNER", "press SPACE to start, arrows to steer"
	case component.GameOver:
		return "GAME OVER", fmt.Sprintf("final score %d, distance %d", s.Score, s.Distance)
	}
	return "", ""
}
