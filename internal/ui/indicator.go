// internal/ui/indicator.go
package ui

import (
	"math"

	"go-endless-runner/internal/event"
)

// PulseEvents - события, на которые подписывается HitPulse.
var PulseEvents = []event.EventType{event.ObstacleHit}

// HitPulse - затухающая вспышка индикатора здоровья после удара.
// Время игровое, а не настенное, поэтому вспышка замирает вместе с игрой.
type HitPulse struct {
	lastHit float64
	active  bool
	clock   func() float64
}

// NewHitPulse создаёт вспышку, clock отдаёт текущее игровое время.
func NewHitPulse(clock func() float64) *HitPulse {
	return &HitPulse{clock: clock}
}

// OnEvent запускает вспышку на каждый удар о препятствие.
func (p *HitPulse) OnEvent(e event.Event) {
	if e.Type == event.ObstacleHit {
		p.Trigger(p.clock())
	}
}

func (p *HitPulse) Trigger(at float64) {
	p.lastHit = at
	p.active = true
}

// Scale возвращает множитель размера: 1.3 сразу после удара, дальше экспонента к 1.
func (p *HitPulse) Scale(now float64) float64 {
	if !p.active {
		return 1
	}
	elapsed := math.Max(0, now-p.lastHit)
	return 1.0 + 0.3*math.Exp(-elapsed*8)
}
