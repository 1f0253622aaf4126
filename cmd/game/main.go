package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/platformer/internal/application/game"
	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/scene/playing"
	"github.com/younwookim/platformer/internal/infrastructure/assets"
	"github.com/younwookim/platformer/internal/infrastructure/config"
	"github.com/younwookim/platformer/internal/infrastructure/logging"
)

//go:embed configs
var configFS embed.FS

func main() {
	levelFlag := flag.String("level", "level1", "Level to play (levels/<name>.json, or a .tmx file name)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Re-simulate a recording headless and print the outcome")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	gridFlag := flag.Bool("grid", false, "Use the spatial grid broad phase")
	flag.Parse()

	log, err := logging.New(*logLevel, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.WithError(err).Fatal("failed to get config subfs")
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	if *gridFlag {
		cfg.Physics.Simulation.BroadPhase = "grid"
	}

	if *replayFlag != "" {
		if err := replayHeadless(loader, cfg, *replayFlag, *levelFlag, log); err != nil {
			log.WithError(err).Fatal("replay failed")
		}
		return
	}

	lvl, err := loader.LoadLevel(*levelFlag)
	if err != nil {
		log.WithError(err).Fatal("failed to load level")
	}

	sounds := assets.NewAudio(audio.NewContext(cfg.Entities.Audio.SampleRate), fsys, cfg.Entities.Audio, log)
	if err := sounds.Preload(); err != nil {
		log.WithError(err).Warn("some sounds are unavailable")
	}

	scene, err := playing.New(cfg, lvl, playing.Options{
		Sprites:    assets.NewSpriteFactory(cfg.Entities.Sprites, fsys, log),
		Audio:      sounds,
		Logger:     log,
		RecordPath: *recordFlag,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to start level")
	}

	d := cfg.Physics.Display
	g := game.New(scene, d.ScreenWidth, d.ScreenHeight, d.Framerate)

	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle("Knight")
	ebiten.SetTPS(d.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("game stopped")
	}
	g.Close()
}

func replayHeadless(loader *config.Loader, cfg *config.GameConfig, file, level string, log logrus.FieldLogger) error {
	data, err := replay.LoadReplay(file)
	if err != nil {
		return err
	}
	if data.Level != "" {
		level = data.Level
	}
	lvl, err := loader.LoadLevel(level)
	if err != nil {
		return err
	}
	res, err := RunReplay(cfg, lvl, *data, log)
	if err != nil {
		return err
	}
	fmt.Println(res)
	return nil
}
