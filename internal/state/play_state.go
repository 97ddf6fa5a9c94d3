package state

import (
	"go-endless-runner/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
)

// PlayState - идёт забег.
type PlayState struct {
	sm      *StateMachine
	session *Session
}

func NewPlayState(sm *StateMachine, session *Session) *PlayState {
	return &PlayState{sm: sm, session: session}
}

func (p *PlayState) Enter() {}

func (p *PlayState) Update(deltaTime float64) {
	if p.session.pressed(ebiten.KeyP, ebiten.KeyF9) {
		p.sm.SetState(NewPauseState(p.sm, p))
		return
	}
	p.session.Game.Tick(deltaTime)
	if p.session.Game.Phase() == component.GameOver {
		p.sm.SetState(NewGameOverState(p.sm, p.session))
	}
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	p.session.draw(screen)
}

func (p *PlayState) Exit() {}
