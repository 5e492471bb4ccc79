// Package figure draws the stick-and-capsule human figures used to
// illustrate physiotherapy exercises.
//
// # Overview
//
// A figure is described by a [Pose], twelve named joints in a fixed
// 100x120 workspace, plus a highlight set of [Parts], optional scene
// [Props] and a [Gender] that selects the body [Proportions].
// [Compose] turns that [Scene] into a [drawing.Drawing]: a flat list of
// typed fill and stroke commands in back-to-front order that a backend from
// the drawing package serialises to SVG or rasterises to PNG.
//
//	d := figure.Compose(figure.Scene{
//		Pose:      pose,
//		Highlight: figure.PartsOf(figure.PartLLeg),
//		Gender:    figure.Female,
//		IDPrefix:  "fig-1",
//	})
//
// # Geometry
//
// Every limb is a [Limb] outline: a tapered quad between two joints whose
// edges are quadratic curves, so consecutive segments read as one smooth
// silhouette. Coincident joints collapse the outline instead of producing
// NaN coordinates.
//
// # Animation
//
// [Interpolate] and [Between] produce in-between frames of an exercise.
// Scheduling lives in the anim package and the render context that ties
// catalog, composer and mounted targets together lives in illustrate.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to route diagnostics
// from figure and its sub-packages to an [slog.Logger].
package figure
