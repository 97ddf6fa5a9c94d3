// Package easing содержит скалярную интерполяцию по времени.
package easing

import (
	"errors"
	"fmt"

	"go-endless-runner/internal/utils"
)

// ErrInvalidDuration возвращается при попытке создать задачу с duration <= 0.
var ErrInvalidDuration = errors.New("easing: duration must be positive")

// Task - линейная интерполяция от From к To за Duration секунд.
// Вместо колбэков задача опрашивается раз в тик через Value и Finished.
type Task struct {
	From, To float64
	Duration float64

	elapsed  float64 // нормализованное время, 1.0 означает завершение
	value    float64
	finished bool
}

// New создаёт задачу. Нулевая или отрицательная длительность отклоняется сразу.
func New(from, to, duration float64) (*Task, error) {
	if !(duration > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidDuration, duration)
	}
	return &Task{From: from, To: to, Duration: duration, value: from}, nil
}

// MustNew как New, но паникует на неверной длительности.
// Используется там, где длительность уже проверена конфигом.
func MustNew(from, to, duration float64) *Task {
	t, err := New(from, to, duration)
	if err != nil {
		panic(err)
	}
	return t
}

// Advance сдвигает время на deltaTime секунд и пересчитывает значение.
// Возвращает true ровно один раз: на вызове, где задача завершилась.
// После завершения вызовы ничего не меняют.
func (t *Task) Advance(deltaTime float64) bool {
	if t.finished {
		return false
	}
	t.elapsed += deltaTime / t.Duration
	progress := utils.Clamp(t.elapsed, 0, 1)
	t.value = utils.Lerp(t.From, t.To, progress)
	if t.elapsed >= 1 {
		t.finished = true
		return true
	}
	return false
}

// Value - текущее значение интерполяции
func (t *Task) Value() float64 {
	return t.value
}

// Progress - нормализованный прогресс в [0, 1]
func (t *Task) Progress() float64 {
	return utils.Clamp(t.elapsed, 0, 1)
}

// Finished сообщает, завершилась ли задача.
func (t *Task) Finished() bool {
	return t.finished
}
