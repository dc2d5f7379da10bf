package ecs

import (
	"github.com/phanxgames/zoomer"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// FrameEventType is the Donburi event type for finished frames.
var FrameEventType = events.NewEventType[zoomer.FrameStats]()

// StatsComponent holds the stats of the latest frame on an entity created
// by NewDonburiObserver.
var StatsComponent = donburi.NewComponentType[zoomer.FrameStats]()

type donburiObserver struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiObserver creates a FrameObserver backed by a Donburi world.
// Every frame is published to FrameEventType, consumed with
// events.Subscribe and ProcessEvents, and stored in StatsComponent on a
// dedicated entity.
func NewDonburiObserver(world donburi.World) zoomer.FrameObserver {
	return &donburiObserver{world: world, entity: world.Create(StatsComponent)}
}

func (o *donburiObserver) FrameDone(stats zoomer.FrameStats) {
	if e := o.world.Entry(o.entity); e.Valid() {
		StatsComponent.SetValue(e, stats)
	}
	FrameEventType.Publish(o.world, stats)
}

// LatestStats returns the stats stored by the observer in world, and false
// when no observer entity exists.
func LatestStats(world donburi.World) (zoomer.FrameStats, bool) {
	e, ok := StatsComponent.First(world)
	if !ok {
		return zoomer.FrameStats{}, false
	}
	return *StatsComponent.Get(e), true
}
