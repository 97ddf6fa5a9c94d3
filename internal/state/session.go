package state

import (
	"go-endless-runner/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Drawer рисует снимок игры. Сцену и HUD рисуют разные реализации.
type Drawer interface {
	Draw(screen *ebiten.Image, s app.Snapshot)
}

// Session - общее для всех состояний: игра, отрисовка и опрос клавиш.
type Session struct {
	Game  *app.Game
	Scene Drawer
	HUD   Drawer

	// JustPressed по умолчанию inpututil.IsKeyJustPressed.
	JustPressed func(key ebiten.Key) bool
}

func (s *Session) pressed(keys ...ebiten.Key) bool {
	just := s.JustPressed
	if just == nil {
		just = inpututil.IsKeyJustPressed
	}
	for _, k := range keys {
		if just(k) {
			return true
		}
	}
	return false
}

func (s *Session) draw(screen *ebiten.Image) {
	snap := s.Game.Snapshot()
	if s.Scene != nil {
		s.Scene.Draw(screen, snap)
	}
	if s.HUD != nil {
		s.HUD.Draw(screen, snap)
	}
}
