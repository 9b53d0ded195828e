// Package bloom is a real-time 2D particle-effects engine.
//
// An [Engine] simulates three kinds of transient visuals: free particles,
// growing vines and branching lightning. The host drives it: it calls
// [Engine.Spawn] when the user touches the canvas and [Engine.Step] once per
// rendered frame, then copies the current state out with the extraction
// methods and draws it however it likes. The engine never draws, never reads
// input and never keeps a reference to a caller's buffer.
//
// # Quick start
//
//	e := bloom.New(bloom.DefaultConfig())
//	_ = e.Spawn(bloom.ModeBurst, 120, 80, 12, 4)
//
//	var f bloom.Frame
//	for {
//		_ = e.Step(640, 480)
//		e.Snapshot(&f)
//		for _, p := range f.Particles {
//			// draw a circle of radius p.Size at (p.X, p.Y)
//		}
//		for _, v := range f.Vines {
//			path := f.VinePoints[v.Offset : v.Offset+v.Count]
//			_ = path // stroke the polyline
//		}
//	}
//
// # Modes
//
// [Mode] is a closed enumeration. Vine and Lightning each create one vine or
// bolt per spawn; the other five create particles that differ only in how
// they move:
//
//   - Gravity: launched upward, pulled down, culled once off-canvas.
//   - Bounce: reflects off the canvas edges, always stays inside.
//   - Burst: a radial flash that fades three times faster than Gravity.
//   - Constellation: slow drift, long life. Drawing lines between close
//     stars is left to the renderer.
//   - Vortex: orbits its spawn point on a shrinking radius.
//
// # Extraction
//
// [Engine.ExtractParticles], [Engine.ExtractVines] and
// [Engine.ExtractLightning] copy into caller-owned slices and truncate to
// their length. Vines and bolts share one flat point or segment buffer per
// call; each descriptor carries the Offset and Count of its own range.
// [Frame] wraps all three with grow-only buffers.
//
// # Input helpers
//
// A [Brush] turns pointer strokes into spawns the way the touch front ends
// do, and [Zen] draws on its own at random points. A [Runner] replays a JSON
// script of spawns, clicks, drags and waits against an engine; tests and the
// headless renderer use it to produce repeatable sessions.
//
// # Concurrency
//
// An Engine is single-threaded by contract: it takes no locks and starts no
// goroutines. Serialize access externally when sharing one.
//
// Lifecycle events can be observed with [Engine.SetEventSink]; the
// bloom/ecs package forwards them into a [Donburi] world.
//
// [Donburi]: https://github.com/yohamta/donburi
package bloom
