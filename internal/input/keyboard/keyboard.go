// Package keyboard читает управление с клавиатуры через ebiten.
package keyboard

import (
	"go-endless-runner/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard реализует input.Port. Стрелки или A/D управляют, Space или Enter стартуют.
type Keyboard struct{}

func New() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Poll() input.Frame {
	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	return input.Frame{
		Axis:  input.AxisFromKeys(left, right),
		Start: inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
}
