// Package dungeon generates procedural 2D tile dungeons: a BSP partitioner
// carves the map into sections, a room is dropped into each leaf, a
// four-direction corridor sweep links neighbouring rooms with single-cell
// halls and doors, a rasteriser paints the result onto a tile grid, and a
// neighbourhood filter gives every wall cell an orientation. Generation
// retries with fresh randomness until every room is reachable from every
// other room, or gives up after a bounded number of attempts.
package dungeon
