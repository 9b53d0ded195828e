// Package ecs provides ECS adapters for bloom.
package ecs

import (
	"github.com/phanxgames/bloom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EffectEventType is the Donburi event type for bloom lifecycle events.
// Subscribe to this in your ECS systems to react to spawns and retirements.
var EffectEventType = events.NewEventType[bloom.Event]()

// CensusData tracks the engine population as seen through its events.
type CensusData struct {
	// Live counts, indexed by bloom.Kind.
	Live [3]int
	// Cumulative counts since the sink was created, indexed by bloom.Kind.
	Spawned [3]int
	Retired [3]int
	// Frame of the most recent event.
	Frame uint64
}

// Census is the component holding CensusData. NewDonburiSink creates one
// entity carrying it.
var Census = donburi.NewComponentType[CensusData]()

type donburiSink struct {
	world  donburi.World
	census donburi.Entity
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are published to EffectEventType and can be consumed with
// events.Subscribe and ProcessEvents. The census is updated immediately.
func NewDonburiSink(world donburi.World) bloom.EventSink {
	return &donburiSink{
		world:  world,
		census: world.Create(Census),
	}
}

func (s *donburiSink) EmitEvent(event bloom.Event) {
	if s.world.Valid(s.census) {
		c := Census.Get(s.world.Entry(s.census))
		c.apply(event)
	}
	EffectEventType.Publish(s.world, event)
}

func (c *CensusData) apply(ev bloom.Event) {
	c.Frame = ev.Frame
	k := ev.Kind
	switch ev.Type {
	case bloom.EventSpawn:
		c.Live[k] += ev.Count
		c.Spawned[k] += ev.Count
	case bloom.EventRetire:
		c.Live[k] = max(c.Live[k]-ev.Count, 0)
		c.Retired[k] += ev.Count
	case bloom.EventClear:
		for i, n := range c.Live {
			c.Retired[i] += n
		}
		c.Live = [3]int{}
	}
}

// CensusOf returns the census kept by the world's sink, if one exists.
func CensusOf(world donburi.World) (CensusData, bool) {
	entry, ok := Census.First(world)
	if !ok {
		return CensusData{}, false
	}
	return *Census.Get(entry), true
}
