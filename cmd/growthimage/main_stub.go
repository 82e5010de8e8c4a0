//go:build !ebiten

package main

import (
	"flag"
	"image/png"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"growthimage/internal/app"
	"growthimage/internal/growth"
)

const progressCadence = 100000

func main() {
	log := logrus.New()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("failed to load .env")
	}

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "growth.png", "output PNG path for the headless build")
	flag.Parse()

	growthCfg := growth.FromMap(cfg.GrowthParams())
	driver, err := growth.New(growthCfg)
	if err != nil {
		log.WithError(err).Fatal("failed to build growth run")
	}

	log.WithFields(logrus.Fields{
		"width":  growthCfg.Width,
		"height": growthCfg.Height,
		"seed":   growthCfg.Seed,
	}).Info("starting headless growth run")

	driver.IterateUntilDone(func(filled int) {
		if filled%progressCadence == 0 {
			log.WithFields(logrus.Fields{
				"filled":    filled,
				"frontier":  driver.FrontierSize(),
				"remaining": growthCfg.Width*growthCfg.Height - filled - driver.FrontierSize(),
			}).Info("growth progress")
		}
	})

	if err := writePNG(*out, driver); err != nil {
		log.WithError(err).Fatal("failed to write output image")
	}
	log.WithField("path", *out).Info("wrote raster")
}

func writePNG(path string, driver *growth.Driver) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer f.Close()
	if err := png.Encode(f, driver.Raster().ToImage()); err != nil {
		return errors.Wrap(err, "encoding PNG")
	}
	return nil
}
