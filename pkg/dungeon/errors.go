package dungeon

import "errors"

// ErrInvalidParameters is returned by New when the requested dimensions or
// room-size constraints cannot produce a valid partition (width/height too
// small for the requested room sizes and margin, minRoomSize > maxRoomSize,
// or a negative margin).
var ErrInvalidParameters = errors.New("dungeon: invalid parameters")

// ErrInvalidGrid is returned by the orientation filter when it is asked to
// classify a 3x3 neighbourhood whose center is not a wall cell.
var ErrInvalidGrid = errors.New("dungeon: invalid grid")

// ErrGenerationIncomplete is returned by New when every retry attempt produced
// a map whose rooms are not all reachable from one another.
var ErrGenerationIncomplete = errors.New("dungeon: generation incomplete")
