// Package viz provides terminal-based visualization for simulation fields.
//
// The package implements an interactive viewer using the Bubble Tea
// framework:
//
//   - [Viewer]: browse a stack of 2D fields as colored heatmaps
//   - [Heatmap]: render one field into terminal cells
//
// # Key Bindings
//
//	←/→  - Previous/next panel
//	c    - Cycle colormaps
//	q    - Quit
package viz
