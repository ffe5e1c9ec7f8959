// Package tableau is a retained-mode UI engine for card-table games.
//
// The engine owns a shallow widget tree: a Screen owns an ordered list of
// widgets, and a CardGroup owns its Cards. Layout is declarative — every
// widget carries a Position (base point, anchor, pixel adjustments) that is
// resolved against its parent's bounding box on refresh, not every frame.
// A dirty latch (NeedsRefresh) limits relayout to widgets whose properties
// actually changed; a window resize refreshes everything visible.
//
// Input is normalized into a per-tick snapshot by InputSystem: mouse buttons
// are debounced to booleans, key-down events and text input accumulate in
// order, and the mouse position is sampled once per tick in a bottom-left
// origin coordinate system. The fixed-budget game loop polls, ticks, and
// sleeps off the remainder of its 16 ms budget (waking early on input).
//
// Rendering and text shaping are external: the engine talks to them through
// the Renderer and EventSource interfaces. A production backend built on
// Ebitengine lives in backend_ebiten.go; tests use in-memory doubles.
package tableau
