// Package input описывает порт ввода, который симуляция опрашивает раз в тик.
package input

import "time"

// Frame - состояние ввода на текущий кадр
type Frame struct {
	Axis  int  // -1 влево, 0 прямо, 1 вправо
	Start bool // одноразовый сигнал старта
}

// Port - источник ввода. Реализации есть для ebiten, tcell и raylib.
type Port interface {
	Poll() Frame
}

// PortFunc позволяет использовать функцию как Port.
type PortFunc func() Frame

func (f PortFunc) Poll() Frame {
	return f()
}

// AxisFromKeys сводит две зажатые клавиши к оси. Обе сразу гасят друг друга.
func AxisFromKeys(left, right bool) int {
	axis := 0
	if left {
		axis--
	}
	if right {
		axis++
	}
	return axis
}

// RepeatAxis эмулирует удержание клавиши там, где нет событий отпускания
// (терминал). Ось держится, пока нажатия повторяются чаще, чем Hold.
type RepeatAxis struct {
	Hold time.Duration

	axis    int
	pressed time.Time
}

func NewRepeatAxis(hold time.Duration) *RepeatAxis {
	return &RepeatAxis{Hold: hold}
}

// Press регистрирует нажатие направления в момент now.
func (r *RepeatAxis) Press(axis int, now time.Time) {
	r.axis = axis
	r.pressed = now
}

// Release немедленно сбрасывает ось.
func (r *RepeatAxis) Release() {
	r.axis = 0
}

// Axis возвращает ось на момент now.
func (r *RepeatAxis) Axis(now time.Time) int {
	if r.axis != 0 && now.Sub(r.pressed) > r.Hold {
		r.axis = 0
	}
	return r.axis
}
