// Package tilesmith compiles painted level images into a deduplicated
// tile atlas and Lua world tables.
//
// One compile is a single batch: all inputs are loaded up front, tile
// layers feed a shared atlas in argument order, the metadata layer runs
// through classification, mount propagation, obstacle adjustment and
// validation, and the results are serialized in one go.  Phase
// preconditions are enforced by the ordering here, not by checks inside
// the phases.
package tilesmith

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/voskhod/go-tilesmith/tilesmith/atlas"
	"github.com/voskhod/go-tilesmith/tilesmith/imageio"
	"github.com/voskhod/go-tilesmith/tilesmith/serialize"
	"github.com/voskhod/go-tilesmith/tilesmith/worldmap"
)

// DefaultTilesPerRow is the atlas image width in tiles.  The 1D tile
// index is what actually matters downstream; 60 keeps the atlas within a
// 1920 pixel screen width, which makes eyeballing it easier.
const DefaultTilesPerRow = 60

// Config holds the options for one compile.
type Config struct {
	Inputs          []string // input PNGs, order fixes atlas indices
	TableOutput     string
	AtlasOutput     string
	TilesPerRow     int
	MaxTiles        int
	MaxCollectibles int
	MetadataTag     string // base-name substring marking the annotation layer
}

func (c *Config) applyDefaults() {
	if c.TableOutput == "" {
		c.TableOutput = "world.lua"
	}
	if c.AtlasOutput == "" {
		c.AtlasOutput = fmt.Sprintf("world-table-%d-%d.png",
			imageio.TileSize, imageio.TileSize)
	}
	if c.TilesPerRow <= 0 {
		c.TilesPerRow = DefaultTilesPerRow
	}
	if c.MaxTiles <= 0 {
		c.MaxTiles = atlas.MaxTiles
	}
	if c.MaxCollectibles <= 0 {
		c.MaxCollectibles = worldmap.MaxCollectibles
	}
	if c.MetadataTag == "" {
		c.MetadataTag = "metadata"
	}
}

// ValidationError aggregates all semantic findings of a run.  The output
// files are not written when it is returned.
type ValidationError struct {
	Findings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%d validation errors", len(e.Findings))
}

// Result is the compiled world, returned for inspection (the terminal
// previewer feeds on Metadata) alongside the written output files.
type Result struct {
	World    *serialize.World
	Atlas    *atlas.Atlas
	Metadata *worldmap.Grid // last metadata grid, nil if none
}

// Compile runs one full batch and writes the table and atlas files.  On
// a *ValidationError the returned Result still carries everything that
// was derived, but no files are written.
func Compile(cfg Config) (*Result, error) {
	cfg.applyDefaults()
	if len(cfg.Inputs) == 0 {
		return nil, errors.New("no input images")
	}

	inputs, err := imageio.LoadBatch(cfg.Inputs, cfg.MetadataTag)
	if err != nil {
		return nil, err
	}

	shared := atlas.New()
	world := &serialize.World{
		Width:  inputs[0].Image.Width,
		Height: inputs[0].Image.Height,
	}
	findings := &worldmap.Findings{}
	result := &Result{World: world, Atlas: shared}

	// Tile layers first: capacity problems with the atlas abort before
	// any validation work, since validating against an oversized world
	// helps nobody.  Atlas order stays deterministic because metadata
	// layers never touch the atlas.
	for _, input := range inputs {
		if input.Metadata {
			continue
		}
		grid := atlas.Classify(input.Image, shared)
		world.Layers = append(world.Layers, serialize.Layer{
			Name:  input.Name,
			Cells: grid,
		})
		slog.Debug("classified tile layer", "layer", input.Name,
			"tiles", shared.Len())
	}
	if err := shared.Check(cfg.MaxTiles); err != nil {
		return result, err
	}
	world.UniqueTileCount = shared.Len()

	for _, input := range inputs {
		if !input.Metadata {
			continue
		}
		grid, positions := worldmap.Classify(input.Image)
		worldmap.DetectMounts(grid)
		worldmap.AdjustObstacles(grid, cfg.MaxCollectibles, findings)
		worldmap.CheckStartPoints(grid, positions.Start, findings)
		worldmap.CheckTeleportPoints(grid, positions.Teleport, findings)
		worldmap.CheckTerminalReactions(grid, findings)
		worldmap.StripGhosts(grid)

		items, removable := worldmap.Stats(grid)
		world.ItemCount += items
		world.RemovableTileCount += removable
		world.Start = append(world.Start, positions.Start...)
		world.Teleport = append(world.Teleport, positions.Teleport...)
		world.Throwables = append(world.Throwables, positions.Throwables...)
		world.Layers = append(world.Layers, serialize.Layer{
			Name:     input.Name,
			Metadata: true,
			Cells:    grid.Packed(),
		})
		result.Metadata = grid
		slog.Debug("classified metadata layer", "layer", input.Name,
			"start", len(positions.Start), "teleport", len(positions.Teleport))
	}

	if !findings.OK() {
		return result, &ValidationError{Findings: findings.Messages()}
	}

	if err := writeOutputs(cfg, result); err != nil {
		return result, err
	}
	return result, nil
}

func writeOutputs(cfg Config, result *Result) error {
	f, err := os.Create(cfg.TableOutput)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", cfg.TableOutput, err)
	}
	if err := serialize.WriteTables(f, result.World); err != nil {
		f.Close()
		return fmt.Errorf("error writing %s: %w", cfg.TableOutput, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error writing %s: %w", cfg.TableOutput, err)
	}

	if err := imageio.Write(cfg.AtlasOutput, result.Atlas.Image(cfg.TilesPerRow)); err != nil {
		return err
	}

	slog.Info("world compiled",
		"table", cfg.TableOutput,
		"atlas", cfg.AtlasOutput,
		"unique_tiles", result.Atlas.Len(),
		"items", result.World.ItemCount)
	return nil
}
