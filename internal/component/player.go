// internal/component/player.go
package component

// Player хранит состояние игрока: управление, крен, здоровье и очки.
type Player struct {
	LateralOffset float64 // накопленное смещение по X от управления
	ControlAxis   int     // -1, 0 или 1
	RollAngle     float64 // текущий крен корабля в радианах
	Health        int
	Score         int
	Distance      float64 // пройденный путь, равен смещению прокрутки
}

// LaneX возвращает позицию игрока в системе координат пула.
func (p *Player) LaneX() float64 {
	return -p.LateralOffset
}
