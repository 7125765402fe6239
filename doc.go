// Package tween animates the visual properties of objects it does not own:
// translation, scale, rotation, opacity, tint, layout position, padding,
// visibility and maximum height.
//
// # Quick start
//
// A [Manager] owns every running tween. Tick it once per frame and create
// tweens with the builder chain:
//
//	m := tween.NewManager()
//	node := tween.NewNode("panel")
//
//	m.Create(node, 0.4, 0).
//		FromOpacity(0).ToOpacity(1).
//		FromTranslation(0, 40).ToTranslation(0, 0).
//		Easing(easing.OutBack, 1.70158).
//		OnComplete(func(tween.Target) { log.Println("shown") }).
//		Begin()
//
//	// every frame
//	m.Update(dt)   // or m.Tick() inside an ebiten.Game
//
// [Manager.Create] cancels whatever else is running on the target;
// [Manager.CreateAdditive] leaves it running. Tweens created from a callback
// start ticking on the next update.
//
// # Targets
//
// Anything with an Alive method can be tweened. Each attribute is opt-in
// through a capability interface ([TransformTarget], [OpacityTarget],
// [ColorTarget], [VisibilityTarget], [LayoutTarget], [PaddingTarget],
// [SizeTarget]); attributes a target does not implement are skipped. Once
// Alive reports false every tween bound to the target completes without
// writing to it again. [Node] is a ready-made target with ebiten draw
// helpers.
//
// # Easing
//
// Curves live in the easing sub-package. A gween [ease.TweenFunc] can be
// used instead through [Instance.EasingFunc].
//
// # Presets
//
// Tweens can be described in YAML and loaded with [LoadPresets]. During
// development [WatchPresets] reloads the file whenever it changes. See
// [ParsePresets] for the format.
//
// # ECS integration
//
// The github.com/phanxgames/tween/ecs module animates donburi entities and
// publishes tween events into a donburi world.
//
// [ease.TweenFunc]: https://pkg.go.dev/github.com/tanema/gween/ease#TweenFunc
package tween
