// Package plot draws graphs of real functions on axes that reach infinity.
//
// # Overview
//
// Each axis of a plot maps the whole real line onto its pixels in five
// zones: a linear zone around zero, logarithmic zones beyond it and
// hyperbolic zones that squeeze the rest of the line, up to ±∞, into the
// last pixels. The mapping and the gridlines ("rulers") are provided by
// package axis; package sample evaluates graphs once per pixel and caches
// the result. Plot ties both to a window and renders into an image.RGBA.
//
// # Quick Start
//
//	import "github.com/gogpu/plot"
//
//	p, err := plot.New(800, 600)
//	if err != nil {
//		return err
//	}
//	sin, _ := plot.Builtin("sin")
//	_ = p.AddGraph("sin", sin)
//
//	img := p.Image()
//
// # Gestures
//
// Hosts translate input into Plot methods such as Pan, Zoom, ZoomRect,
// Resize, ShiftLog, SetDefault and Reset. They take window pixels and
// report whether the view changed; a gesture that would leave an axis
// invalid is ignored, so the view never breaks. Render again only when a
// gesture returns true.
//
// # Coordinate System
//
// Window pixels have their origin at the top left with Y growing down.
// Axis view coordinates start at the bottom left of the plot area, inside
// the padding, with Y growing up.
//
// # Configuration
//
// Options customize a plot at creation. Config is the same setup as YAML,
// read with LoadConfig and turned into a plot with NewFromConfig.
package plot

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
