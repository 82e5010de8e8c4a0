//go:build ebiten

package main

import (
	stderrors "errors"
	"flag"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"growthimage/internal/app"
	"growthimage/internal/core"
	"growthimage/internal/growth"
	"growthimage/internal/palette"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{ForceColors: isatty.IsTerminal(os.Stdout.Fd())})

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("failed to load .env")
	}

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	grower, err := buildGrower(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to build growth run")
	}
	grower.Reset(cfg.Seed)

	size := grower.Size()
	log.WithFields(logrus.Fields{
		"preset": cfg.Preset,
		"width":  size.W,
		"height": size.H,
		"seed":   cfg.Seed,
	}).Info("starting growth run")

	game := app.New(grower, cfg.Scale, cfg.Seed)

	ebiten.SetWindowTitle("growthimage — " + grower.Name())
	ebiten.SetTPS(cfg.TPS)
	width, height := game.Layout(0, 0)
	ebiten.SetWindowSize(width, height)

	if err := ebiten.RunGame(game); err != nil && !stderrors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("growth run exited with an error")
	}
}

func buildGrower(cfg app.Config) (core.Grower, error) {
	if cfg.PaletteImage != "" {
		return buildGrowerFromImage(cfg)
	}
	factory, ok := core.Presets()[cfg.Preset]
	if !ok {
		return nil, errors.Errorf("unknown preset %q", cfg.Preset)
	}
	return factory(cfg.GrowthParams()), nil
}

func buildGrowerFromImage(cfg app.Config) (core.Grower, error) {
	f, err := os.Open(cfg.PaletteImage)
	if err != nil {
		return nil, errors.Wrap(err, "opening palette image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, "decoding palette image")
	}

	growthCfg := growth.FromMap(cfg.GrowthParams())
	pal, err := palette.FromImageClusters(img, cfg.PaletteK, growthCfg.Width*growthCfg.Height)
	if err != nil {
		return nil, errors.Wrap(err, "building palette from image")
	}

	driver, err := growth.NewWithPalette(growthCfg, pal)
	if err != nil {
		return nil, errors.Wrap(err, "constructing growth driver")
	}
	return growth.NewPreset(driver), nil
}
