// Package texture is the dungeon generator's default texture-asset registry:
// the external collaborator the core pipeline expects at its (id, subId)
// lookup interface. Generator paints each tile procedurally from an HSL
// palette (adapted from the teacher's genre palette generator, minus the
// genre registry) using the same fill-pattern primitives the teacher's tile
// generator uses, and Cache is an LRU in front of it keyed by (id, subId)
// so a compositor rendering many identical wall cells only pays for one
// Tile call per variant.
package texture
