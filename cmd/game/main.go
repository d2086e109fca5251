package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/younwookim/starcatcher/internal/application/eventbus"
	"github.com/younwookim/starcatcher/internal/application/game"
	"github.com/younwookim/starcatcher/internal/application/replay"
	"github.com/younwookim/starcatcher/internal/application/scene"
	"github.com/younwookim/starcatcher/internal/application/system"
	"github.com/younwookim/starcatcher/internal/infrastructure/config"
	"github.com/younwookim/starcatcher/internal/infrastructure/render"
	"github.com/younwookim/starcatcher/internal/infrastructure/storage"
)

func main() {
	stageFlag := flag.String("stage", "level1", "Stage to play (file name under configs/stages)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json, or auto)")
	replayFlag := flag.String("replay", "", "Play back a recorded file")
	verifyFlag := flag.String("verify", "", "Replay a recorded file headlessly and check its outcome")
	seedFlag := flag.Int64("seed", 0, "Random seed (0 picks one per run)")
	watchFlag := flag.String("watch", "", "Load configs from this directory and reload them on change")
	noSaveFlag := flag.Bool("nosave", false, "Keep the best score in memory only")
	flag.Parse()

	loader, err := newLoader(*watchFlag)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}

	if *verifyFlag != "" {
		outcome, err := verifyReplay(loader, *verifyFlag)
		if err != nil {
			log.Printf("[Verify] %s: %v", *verifyFlag, err)
			os.Exit(1)
		}
		log.Printf("[Verify] %s: ok (score %d, waves %d, frames %d)", *verifyFlag, outcome.Score, outcome.Waves, outcome.Frames)
		return
	}

	stage := *stageFlag
	var replayer *replay.Replayer
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer = replay.NewReplayer(*data)
		stage = data.Stage
		log.Printf("[Main] replaying %s (%d frames, seed %d)", *replayFlag, replayer.TotalFrames(), replayer.Seed())
	}

	live, err := config.NewLive(loader, stage)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg, _ := live.Snapshot()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *watchFlag != "" {
		go func() {
			err := config.Watch(ctx, live, *watchFlag, func(v int) {
				log.Printf("[Main] configs reloaded (v%d), next run picks them up", v)
			})
			if err != nil {
				log.Printf("[Main] Warning: config watcher stopped: %v", err)
			}
		}()
	}

	fonts, err := render.NewFonts()
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	bus := eventbus.New()
	bus.On(eventbus.CurrentSceneReady, func(v any) {
		if l, ok := v.(*system.Level); ok {
			log.Printf("[Main] level %s ready", l.Stage().ID)
		}
	})

	d := &director{
		live:   live,
		scores: openScores(cfg.Save.AppName, *noSaveFlag),
		fonts:  fonts,
		bus:    bus,
		seed:   *seedFlag,
		record: *recordFlag,
		replay: replayer,
	}

	var first scene.Scene = d.Menu()
	if replayer != nil {
		first = d.Playing()
	}

	display := cfg.Display
	g := game.New(first, display.ScreenWidth, display.ScreenHeight)
	g.SetDT(1.0 / float64(display.Framerate))
	g.SetBus(bus)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// newLoader reads configs from dir, or from the embedded copy when dir is
// empty.
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// openScores opens the save data store. Without one the scores live in
// memory for this session.
func openScores(appName string, noSave bool) *storage.HighScores {
	m, err := openManager(appName, noSave)
	if err != nil {
		log.Printf("[Main] Warning: %v (scores kept in memory)", err)
	}
	return storage.NewHighScores(m)
}

func openManager(appName string, noSave bool) (*gdata.Manager, error) {
	if noSave {
		return nil, nil
	}
	return storage.Open(appName)
}
