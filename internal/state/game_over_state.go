package state

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverState - конечное состояние: рестарта нет, только выход.
type GameOverState struct {
	sm      *StateMachine
	session *Session
}

func NewGameOverState(sm *StateMachine, session *Session) *GameOverState {
	return &GameOverState{sm: sm, session: session}
}

func (g *GameOverState) Enter() {}

func (g *GameOverState) Update(deltaTime float64) {
	if g.session.pressed(ebiten.KeyEscape, ebiten.KeyQ) {
		g.sm.Quit()
	}
}

// Draw показывает замёрзшую сцену, итог рисует HUD.
func (g *GameOverState) Draw(screen *ebiten.Image) {
	g.session.draw(screen)
}

func (g *GameOverState) Exit() {}
