// Package ecs connects tween to a [Donburi] world.
//
// [NewDonburiSink] publishes tween lifecycle events as a typed donburi
// event, and [EntityTarget] lets a tween animate an entity's [Visual]
// component:
//
//	m.SetEventSink(ecs.NewDonburiSink(world))
//
//	e := world.Create(ecs.Visual)
//	m.Create(ecs.NewEntityTarget(world, e), 0.5, 0).ToOpacity(0).Begin()
//
//	ecs.TweenEventType.Subscribe(world, onTweenEvent)
//	// each frame, after m.Update:
//	ecs.TweenEventType.ProcessEvents(world)
//
// Removing an entity cancels nothing by itself; tweens bound to it see the
// handle go invalid and complete on their next update.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
