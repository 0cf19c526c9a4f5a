// Package canvas handles the background image that layers annotate.
//
// The geometry kernel itself never touches pixels; this package is the
// in-repo home of the image-facing collaborators around it: loading and
// caching the background, reporting its dimensions so the editor can clamp
// layers to the canvas, cropping a bounds region for zoomed inspection, and
// applying the gaussian blur that blur layers describe.
//
// Regions are addressed with the same geometry.Bounds values the kernel
// produces, so a blur layer's effect always lands exactly where its
// selection box sits.
package canvas
