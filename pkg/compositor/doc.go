// Package compositor assembles a dungeon's rasterised tile grid and a
// texture.Provider into the final raster layers a renderer or CLI tool
// consumes: a "bg" background layer with every tile pasted at its grid
// position, and an optional "debug" overlay labelling each cell with its
// tile family for inspection. The pasting and layer-map shape follow the
// teacher's rendering package's layered-image conventions; the debug text
// overlay is adapted from golang.org/x/image/font's basicfont drawer, one
// of the pack's font-rendering dependencies that otherwise had no home in
// this generator's scope.
package compositor
