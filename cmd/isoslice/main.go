package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"isotiles/internal/slicer"
)

const (
	defaultSource = "input.png"
	defaultOutDir = "tiles"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "isoslice"
	app.Usage = "Slice a rectangular image into isometric diamond tiles"
	app.ArgsUsage = "[SOURCE [OUTDIR]]"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:  "tile-width",
			Value: 64,
			Usage: "tile width in pixels",
		},
		&cli.IntFlag{
			Name:  "tile-height",
			Value: 32,
			Usage: "tile height in pixels",
		},
		&cli.IntFlag{
			Name:  "colors",
			Value: 0,
			Usage: "quantize tiles to at most this many colors (0 keeps full RGBA)",
		},
		&cli.IntFlag{
			Name:  "workers",
			Value: 0,
			Usage: "worker goroutines (0 uses one per CPU)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		source := defaultSource
		outDir := defaultOutDir
		if c.NArg() > 0 {
			source = c.Args().Get(0)
		}
		if c.NArg() > 1 {
			outDir = c.Args().Get(1)
		}

		logger := log.New(io.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}

		src, err := readImage(source)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		s := slicer.New(c.Int("tile-width"), c.Int("tile-height"))
		s.Workers = c.Int("workers")
		s.Log = logger

		tiles, err := s.Slice(src)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		if err := slicer.WriteTiles(outDir, tiles, c.Int("colors")); err != nil {
			return cli.NewExitError(err, 1)
		}

		fmt.Printf("wrote %d tiles to %s\n", len(tiles), outDir)
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode source image %s: %w", path, err)
	}
	return img, nil
}
