package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchReachesOnlySubscribedListeners(t *testing.T) {
	d := NewDispatcher()
	hits := &recorder{}
	all := &recorder{}
	d.Subscribe(hits, ObstacleHit)
	d.Subscribe(all, ObstacleHit, BonusCollected, GameOver)

	d.Dispatch(Event{Type: ObstacleHit, Data: HitData{Index: 3, Health: 90}})
	d.Dispatch(Event{Type: BonusCollected, Data: HitData{Reward: 15, Score: 15}})
	d.Dispatch(Event{Type: EntityRecycled})

	assert.Len(t, hits.got, 1)
	assert.Equal(t, HitData{Index: 3, Health: 90}, hits.got[0].Data)
	assert.Len(t, all.got, 2)
	assert.Equal(t, BonusCollected, all.got[1].Type)
}

func TestListenerFuncAndOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(ListenerFunc(func(Event) { order = append(order, "first") }), GameStarted)
	d.Subscribe(ListenerFunc(func(Event) { order = append(order, "second") }), GameStarted)

	assert.True(t, d.HasListeners(GameStarted))
	assert.False(t, d.HasListeners(GameOver))

	d.Dispatch(Event{Type: GameStarted})
	assert.Equal(t, []string{"first", "second"}, order)
}
