// Package ecs provides ECS adapters for meshwarp's event sink.
//
// The adapter is [NewDonburiSink], which bridges warp events (rebuild,
// rescale, restore, detach, reset and drag steps) into a [Donburi] world as
// typed events. Subscribe to [WarpEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	engine.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
