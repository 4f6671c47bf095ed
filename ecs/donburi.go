// Package ecs provides ECS adapters for meshwarp.
package ecs

import (
	"github.com/phanxgames/meshwarp"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// WarpEventType is the Donburi event type for meshwarp events.
// Subscribe to this in your ECS systems to receive rebuild, rescale, restore,
// reset and drag events.
var WarpEventType = events.NewEventType[meshwarp.WarpEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Warp events are published to WarpEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) meshwarp.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event meshwarp.WarpEvent) {
	WarpEventType.Publish(s.world, event)
}
