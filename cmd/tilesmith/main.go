package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/voskhod/go-tilesmith/tilesmith"
	"github.com/voskhod/go-tilesmith/tilesmith/config"
	"github.com/voskhod/go-tilesmith/tilesmith/render"
)

func main() {
	app := cli.NewApp()
	app.Name = "tilesmith"
	app.Description = "Compiles painted level images into a tile atlas and world tables"
	app.Usage = "tilesmith [options] <input.png...>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "Path to a YAML options file",
		},
		cli.StringFlag{
			Name:  "table",
			Usage: "Output path for the world table file",
		},
		cli.StringFlag{
			Name:  "atlas",
			Usage: "Output path for the packed tile atlas image",
		},
		cli.IntFlag{
			Name:  "tiles-per-row",
			Usage: "Number of tiles per row in the atlas image",
		},
		cli.BoolFlag{
			Name:  "preview",
			Usage: "Show the compiled metadata grid in the terminal after a successful compile",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
	}
	app.Action = runCompile

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error compiling world", "error", err)
		os.Exit(1)
	}
}

func runCompile(c *cli.Context) error {
	if c.Bool("verbose") {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := tilesmith.Config{Inputs: c.Args()}
	if path := c.String("config"); path != "" {
		file, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg.TableOutput = file.TableOutput
		cfg.AtlasOutput = file.AtlasOutput
		cfg.TilesPerRow = file.TilesPerRow
		cfg.MaxTiles = file.MaxTiles
		cfg.MaxCollectibles = file.MaxCollectibles
		cfg.MetadataTag = file.MetadataTag
		if len(cfg.Inputs) == 0 {
			cfg.Inputs = file.Inputs
		}
	}
	if v := c.String("table"); v != "" {
		cfg.TableOutput = v
	}
	if v := c.String("atlas"); v != "" {
		cfg.AtlasOutput = v
	}
	if v := c.Int("tiles-per-row"); v > 0 {
		cfg.TilesPerRow = v
	}
	if len(cfg.Inputs) == 0 {
		cli.ShowAppHelp(c)
		return errors.New("no input images provided")
	}

	result, err := tilesmith.Compile(cfg)

	var verr *tilesmith.ValidationError
	if errors.As(err, &verr) {
		// Findings go to stdout verbatim; they are the contract with the
		// level author, who greps for the cell coordinates.
		for _, msg := range verr.Findings {
			fmt.Println(msg)
		}
		return verr
	}
	if err != nil {
		return err
	}

	if c.Bool("preview") && result.Metadata != nil {
		previewer, err := render.NewPreviewer(result.Metadata)
		if err != nil {
			return err
		}
		return previewer.Run()
	}
	return nil
}
