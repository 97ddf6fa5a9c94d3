package tui

import (
	"time"

	"go-endless-runner/internal/input"

	"github.com/gdamore/tcell/v2"
)

// DefaultHold - сколько держится ось после последнего нажатия стрелки.
// Терминал присылает автоповтор, но не отпускание.
const DefaultHold = 150 * time.Millisecond

// KeyInput переводит события tcell в кадры ввода симуляции.
type KeyInput struct {
	axis  *input.RepeatAxis
	start bool
	clock func() time.Time
}

// NewKeyInput создаёт адаптер. clock == nil означает time.Now.
func NewKeyInput(hold time.Duration, clock func() time.Time) *KeyInput {
	if clock == nil {
		clock = time.Now
	}
	return &KeyInput{axis: input.NewRepeatAxis(hold), clock: clock}
}

// HandleEvent учитывает событие и сообщает, просит ли игрок выйти.
func (k *KeyInput) HandleEvent(ev tcell.Event) (quit bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	now := k.clock()
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		k.axis.Press(-1, now)
	case tcell.KeyRight:
		k.axis.Press(1, now)
	case tcell.KeyDown:
		k.axis.Release()
	case tcell.KeyEnter:
		k.start = true
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q', 'Q':
			return true
		case ' ':
			k.start = true
		case 'a', 'A':
			k.axis.Press(-1, now)
		case 'd', 'D':
			k.axis.Press(1, now)
		case 's', 'S':
			k.axis.Release()
		}
	}
	return false
}

// Poll реализует input.Port. Сигнал старта отдаётся один раз.
func (k *KeyInput) Poll() input.Frame {
	f := input.Frame{Axis: k.axis.Axis(k.clock()), Start: k.start}
	k.start = false
	return f
}
