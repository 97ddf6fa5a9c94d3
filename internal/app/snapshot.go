package app

import (
	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"
	"go-endless-runner/pkg/utils"
)

// Snapshot - то, что рендер и UI видят после тика. Это копия:
// изменение снимка не влияет на симуляцию.
type Snapshot struct {
	Phase         component.Phase
	Time          float64
	Scroll        float64
	LateralOffset float64
	RollAngle     float64
	ControlAxis   int
	GridPhase     float64 // смещение линий сетки в [0, GridSpacing)

	Health   int
	Score    int
	Distance int

	Entities []component.Renderable
}

// Snapshot снимает состояние для рендера и UI.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	p := w.Player
	s := Snapshot{
		Phase:         w.Phase,
		Time:          w.GameTime,
		Scroll:        w.Scroll,
		LateralOffset: p.LateralOffset,
		RollAngle:     p.RollAngle,
		ControlAxis:   p.ControlAxis,
		GridPhase:     utils.Mod(w.Scroll, config.GridSpacing),
		Health:        p.Health,
		Score:         p.Score,
		Distance:      utils.Round(p.Distance),
		Entities:      make([]component.Renderable, len(w.Entities)),
	}
	for i, e := range w.Entities {
		s.Entities[i] = e.View()
	}
	return s
}
