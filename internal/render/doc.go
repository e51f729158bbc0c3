// Package render turns 2D fields into annotated images.
//
// The package provides:
//
//   - [Panel]: one field as a colorbar-annotated image with the first index
//     on the horizontal axis and the origin at lower left
//   - [Montage]: a stack of fields laid out in a 3-column grid
//   - [ProfileChart]: a 1D row or column slice as a PNG line chart
//   - [Colormap]: gray, viridis, inferno, coolwarm
//
// Panel titles always report the data extremes:
//
//	density  max:1.2340  min:0.0001
package render
