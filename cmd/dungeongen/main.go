// Command dungeongen generates a procedural dungeon map and writes its
// composited tile layers to disk as PNGs.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/opd-ai/dungeongen/pkg/compositor"
	"github.com/opd-ai/dungeongen/pkg/dungeon"
	"github.com/opd-ai/dungeongen/pkg/logging"
	"github.com/opd-ai/dungeongen/pkg/texture"
	"github.com/sirupsen/logrus"
)

var (
	width       = flag.Int("width", 80, "Map width in tiles")
	height      = flag.Int("height", 50, "Map height in tiles")
	seed        = flag.Int64("seed", 1, "Random seed")
	minRoomSize = flag.Int("min-room-size", 6, "Minimum room side length")
	maxRoomSize = flag.Int("max-room-size", 15, "Maximum room side length")
	margin      = flag.Int("margin", 3, "Empty buffer between a room and its partition boundary")
	maxAttempts = flag.Int("max-attempts", 32, "Generation attempts before giving up")
	hue         = flag.Float64("hue", 200, "Base hue in degrees for the procedural texture theme")
	cacheSize   = flag.Int("cache-size", 64, "Texture cache capacity, in distinct tile variants")
	output      = flag.String("output", "", "Output PNG path; if empty a native save dialog is shown")
	debugLabels = flag.Bool("debug-labels", false, "Also write a <output>.debug.png overlay labelling each cell's family")
	verbose     = flag.Bool("verbose", false, "Show verbose output")
)

func main() {
	flag.Parse()

	logger := logging.NewLoggerFromEnv()
	if !*verbose {
		logger.SetLevel(logrus.WarnLevel)
	}

	m, err := dungeon.New(*width, *height,
		dungeon.WithSeed(*seed),
		dungeon.WithMinRoomSize(*minRoomSize),
		dungeon.WithMaxRoomSize(*maxRoomSize),
		dungeon.WithMargin(*margin),
		dungeon.WithMaxAttempts(*maxAttempts),
		dungeon.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("dungeon generation failed: %v", err)
	}

	theme := texture.DefaultTheme()
	theme.BaseHue = *hue
	cache := texture.NewCache(texture.NewGenerator(theme), *cacheSize)

	layers, err := compositor.Composite(m.Grid(), cache, *debugLabels)
	if err != nil {
		log.Fatalf("compositing failed: %v", err)
	}

	if *verbose {
		stats := cache.Statistics()
		fmt.Printf("Generated a %dx%d dungeon with %d rooms (seed=%d)\n", *width, *height, len(m.Rooms()), *seed)
		fmt.Printf("Texture cache: %d hits, %d misses, %d evictions (hit rate %.1f%%)\n",
			stats.Hits, stats.Misses, stats.Evictions, stats.HitRate()*100)
	}

	path := *output
	if path == "" {
		selected, err := selectSavePath()
		if err != nil {
			log.Fatalf("save dialog failed: %v", err)
		}
		if selected == "" {
			fmt.Println("save cancelled")
			return
		}
		path = selected
	}

	if err := savePNG(path, layers[compositor.BackgroundLayer]); err != nil {
		log.Fatalf("failed to save %s: %v", path, err)
	}
	fmt.Printf("Saved dungeon to %s\n", path)

	if *debugLabels {
		debugPath := path + ".debug.png"
		if err := savePNG(debugPath, layers[compositor.DebugLayer]); err != nil {
			log.Fatalf("failed to save %s: %v", debugPath, err)
		}
		fmt.Printf("Saved debug overlay to %s\n", debugPath)
	}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return png.Encode(f, img)
}
