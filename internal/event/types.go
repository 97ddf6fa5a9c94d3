// internal/event/types.go
package event

const (
	GameStarted     EventType = "GameStarted"     // Idle -> Running
	GameOver        EventType = "GameOver"        // здоровье исчерпано
	ObstacleHit     EventType = "ObstacleHit"     // столкновение с препятствием
	BonusCollected  EventType = "BonusCollected"  // бонус подобран
	EntityRecycled  EventType = "EntityRecycled"  // сущность переставлена вперёд
	SteeringChanged EventType = "SteeringChanged" // сменилась ось управления
)

// HitData - данные ObstacleHit и BonusCollected
type HitData struct {
	Index  int // индекс сущности в пуле
	Reward int // награда бонуса, 0 для препятствия
	Health int // здоровье после применения
	Score  int // очки после применения
}

// RecycleData - данные EntityRecycled
type RecycleData struct {
	Index int
	Z     float64 // новая позиция по Z
}

// SteeringData - данные SteeringChanged
type SteeringData struct {
	Axis   int
	Target float64 // целевой крен
}

// GameOverData - данные GameOver
type GameOverData struct {
	Score    int
	Distance int
	Time     float64
}
