package main

import (
	"github.com/younwookim/starcatcher/internal/application/eventbus"
	"github.com/younwookim/starcatcher/internal/application/replay"
	"github.com/younwookim/starcatcher/internal/application/scene"
	"github.com/younwookim/starcatcher/internal/application/scene/gameover"
	"github.com/younwookim/starcatcher/internal/application/scene/menu"
	"github.com/younwookim/starcatcher/internal/application/scene/playing"
	"github.com/younwookim/starcatcher/internal/infrastructure/config"
	"github.com/younwookim/starcatcher/internal/infrastructure/render"
)

// director wires the scenes together.
type director struct {
	live   *config.Live
	scores scene.ScoreBoard
	fonts  *render.Fonts
	bus    *eventbus.Bus
	seed   int64
	record string

	// replay drives the first run only.
	replay *replay.Replayer
}

func (d *director) Menu() scene.Scene {
	cfg, _ := d.live.Snapshot()
	return menu.New(cfg.Display.Title, d, d.scores, d.fonts)
}

func (d *director) Playing() scene.Scene {
	opts := playing.Options{
		Live:       d.live,
		Director:   d,
		Scores:     d.scores,
		Bus:        d.bus,
		Fonts:      d.fonts,
		Seed:       d.seed,
		RecordPath: d.record,
	}
	if opts.RecordPath == "auto" {
		opts.RecordPath = playing.GenerateFilename()
	}
	if d.replay != nil {
		opts.Input = d.replay
		opts.Seed = d.replay.Seed()
		opts.Scores = readOnlyScores{d.scores}
		opts.RecordPath = ""
		d.replay = nil
	}
	return playing.New(opts)
}

func (d *director) GameOver(result scene.Result) scene.Scene {
	return gameover.New(result, d, d.fonts)
}

// readOnlyScores shows the best score without counting the run.
type readOnlyScores struct {
	scene.ScoreBoard
}

func (r readOnlyScores) Submit(int) (bool, error) { return false, nil }
