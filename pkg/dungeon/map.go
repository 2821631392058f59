package dungeon

import (
	"fmt"
	"math/rand"

	"github.com/opd-ai/dungeongen/pkg/geom"
	"github.com/opd-ai/dungeongen/pkg/logging"
	"github.com/sirupsen/logrus"
)

const (
	defaultMinRoomSize = 6
	defaultMaxRoomSize = 15
	defaultMargin      = 3
	defaultMaxAttempts = 32
	unknownSeedForLog  = -1
)

type config struct {
	minRoomSize int
	maxRoomSize int
	margin      int
	maxAttempts int
	seed        int64
	rng         *rand.Rand
	logger      *logrus.Logger
}

// Option configures a call to New.
type Option func(*config)

// WithMinRoomSize overrides the minimum room side length (default 6).
func WithMinRoomSize(n int) Option { return func(c *config) { c.minRoomSize = n } }

// WithMaxRoomSize overrides the maximum room side length (default 15).
func WithMaxRoomSize(n int) Option { return func(c *config) { c.maxRoomSize = n } }

// WithMargin overrides the empty buffer between a room and its section
// boundary (default 3).
func WithMargin(n int) Option { return func(c *config) { c.margin = n } }

// WithMaxAttempts overrides the number of full regenerations attempted before
// New gives up and returns ErrGenerationIncomplete (default 32).
func WithMaxAttempts(n int) Option { return func(c *config) { c.maxAttempts = n } }

// WithSeed derives the generator's random source from seed, making the run
// reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRNG injects a caller-owned random source. Options apply in order, so it
// replaces the source of an earlier WithSeed and is replaced by a later one.
// Use this to share one source across several generations.
func WithRNG(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
		c.seed = unknownSeedForLog
	}
}

// WithLogger attaches a logrus logger used to report retry attempts.
func WithLogger(logger *logrus.Logger) Option { return func(c *config) { c.logger = logger } }

// Map is the immutable result of one successful dungeon generation: a
// partitioned BSP tree, its rooms, halls, doors and walls, and the rasterised,
// orientation-filtered tile grid built from them.
type Map struct {
	Width, Height int

	root  *Section
	rooms []*Room
	halls []*Hall
	doors []*Door
	grid  *Grid

	minRoomSize int
	maxRoomSize int
	margin      int
}

// New builds a dungeon map of the given dimensions. It retries the whole
// pipeline from the BSP partition stage, with the same random source, until
// every room is reachable from every other room or the attempt budget is
// exhausted.
func New(width, height int, opts ...Option) (*Map, error) {
	cfg := config{
		minRoomSize: defaultMinRoomSize,
		maxRoomSize: defaultMaxRoomSize,
		margin:      defaultMargin,
		maxAttempts: defaultMaxAttempts,
		seed:        1,
	}
	cfg.rng = rand.New(rand.NewSource(cfg.seed))
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateParams(width, height, cfg.minRoomSize, cfg.maxRoomSize, cfg.margin); err != nil {
		return nil, err
	}

	minSize := cfg.minRoomSize + 2*cfg.margin
	maxSize := cfg.maxRoomSize + 2*cfg.margin

	var log *logrus.Entry
	if cfg.logger != nil {
		log = logging.GeneratorLogger(cfg.logger, "dungeon", cfg.seed, 0)
	}

	for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
		root := &Section{Rect: geom.Rect{X: 0, Y: 0, Width: width, Height: height}}
		partition(root, minSize, maxSize, cfg.rng)
		rooms := placeRooms(root, cfg.minRoomSize, cfg.margin, cfg.rng)
		halls := carveCorridors(root, width, height, cfg.rng)
		extractWalls(root)

		if !connected(rooms) {
			if log != nil {
				log.WithField("attempt", attempt).Info("generation attempt rejected: rooms not fully connected")
			}
			continue
		}

		doors, walls := collectDoorsAndWalls(root)
		grid := rasterise(width, height, rooms, doors, halls, walls)
		orientWalls(grid)

		return &Map{
			Width: width, Height: height,
			root: root, rooms: rooms, halls: halls, doors: doors, grid: grid,
			minRoomSize: cfg.minRoomSize, maxRoomSize: cfg.maxRoomSize, margin: cfg.margin,
		}, nil
	}

	return nil, fmt.Errorf("%w: no connected map after %d attempts", ErrGenerationIncomplete, cfg.maxAttempts)
}

func validateParams(width, height, minRoomSize, maxRoomSize, margin int) error {
	switch {
	case minRoomSize < 3:
		return fmt.Errorf("%w: minRoomSize=%d must be >= 3", ErrInvalidParameters, minRoomSize)
	case maxRoomSize < minRoomSize:
		return fmt.Errorf("%w: maxRoomSize=%d must be >= minRoomSize=%d", ErrInvalidParameters, maxRoomSize, minRoomSize)
	case margin < 0:
		return fmt.Errorf("%w: margin=%d must be >= 0", ErrInvalidParameters, margin)
	}
	maxSize := maxRoomSize + 2*margin
	if width <= maxSize || height <= maxSize {
		return fmt.Errorf("%w: %dx%d must exceed maxRoomSize+2*margin=%d on both axes", ErrInvalidParameters, width, height, maxSize)
	}
	return nil
}

func collectDoorsAndWalls(root *Section) ([]*Door, []geom.Rect) {
	var doors []*Door
	var walls []geom.Rect
	for _, leaf := range root.leaves(nil) {
		doors = append(doors, leaf.Doors...)
		walls = append(walls, leaf.Walls...)
	}
	return doors, walls
}

// Rooms returns every room's rectangle, for test or inspection use.
func (m *Map) Rooms() []geom.Rect {
	out := make([]geom.Rect, len(m.rooms))
	for i, r := range m.rooms {
		out[i] = r.Rect
	}
	return out
}

// Grid returns the rasterised, orientation-filtered tile label grid.
func (m *Map) Grid() *Grid { return m.grid }

// LeafAt returns the leaf section covering (x, y), or nil if out of bounds.
func (m *Map) LeafAt(x, y int) *Section { return m.root.leafAt(x, y) }
