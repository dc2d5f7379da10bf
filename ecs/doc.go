// Package ecs provides ECS adapters for zoomer.
//
// [NewDonburiObserver] publishes the stats of every finished frame into a
// [Donburi] world as typed events. Subscribe to [FrameEventType] in your ECS
// systems to react to frames, for example to drive a HUD or a profiler.
//
// Usage:
//
//	z.SetFrameObserver(ecs.NewDonburiObserver(world))
//	ecs.FrameEventType.Subscribe(world, onFrame)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
