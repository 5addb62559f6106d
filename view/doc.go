// Package view draws grove scenes with [Ebitengine].
//
// The view is a top-down orthographic projection onto the XY plane: world X
// maps to screen right and world Y to screen down. A [Camera] turns its
// visible area into a [grove.Box] frustum so drawing only visits nodes the
// camera can see. [Renderer] outlines each visible node's world bounds and
// [Run] wraps the whole thing in a window with a game loop that calls
// Scene.Update once per tick.
//
// [Ebitengine]: https://ebitengine.org
package view
