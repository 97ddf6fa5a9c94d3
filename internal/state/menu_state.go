// internal/state/menu_state.go
package state

import (
	"go-endless-runner/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
)

// MenuState - игра ждёт сигнала старта. Сцена видна, но стоит.
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

// Update тикает игру: порт ввода сам подаёт сигнал старта.
func (m *MenuState) Update(deltaTime float64) {
	if m.session.pressed(ebiten.KeyEscape) {
		m.sm.Quit()
		return
	}
	m.session.Game.Tick(deltaTime)
	if m.session.Game.Phase() == component.Running {
		m.sm.SetState(NewPlayState(m.sm, m.session))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.session.draw(screen)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
