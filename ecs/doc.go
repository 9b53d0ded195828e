// Package ecs provides ECS adapters for bloom's lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges engine events
// (spawn, vine grown, retire, clear) into a [Donburi] world as typed events
// and keeps a [Census] entity with live entity counts per kind.
// Subscribe to [EffectEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	engine.SetEventSink(sink)
//	...
//	census, _ := ecs.CensusOf(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
