// Package geom provides the axis-aligned geometry primitives shared by the dungeon
// generation pipeline: integer points and rectangles, with closed-box containment.
package geom
