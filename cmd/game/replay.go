package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/younwookim/starcatcher/internal/application/replay"
	"github.com/younwookim/starcatcher/internal/application/system"
	"github.com/younwookim/starcatcher/internal/infrastructure/config"
)

var errReplayMismatch = errors.New("replay outcome mismatch")

// simulate runs the recorded input through a fresh level with no window.
// Pause frames are skipped since they never advance the level.
func simulate(cfg *config.GameConfig, stageCfg *config.StageConfig, data replay.ReplayData) (replay.Outcome, error) {
	stage := system.LoadStage(stageCfg, cfg.Platform)
	level, err := system.NewLevel(cfg, stage, rand.New(rand.NewSource(data.Seed)), nil)
	if err != nil {
		return replay.Outcome{}, err
	}

	dt := 1.0 / float64(cfg.Display.Framerate)
	r := replay.NewReplayer(data)
	for !level.Over() {
		in, ok := r.Poll()
		if !ok {
			break
		}
		if in.Pause {
			continue
		}
		level.Update(in, dt)
	}

	return replay.Outcome{
		Score:  level.Score(),
		Waves:  level.Waves(),
		Hit:    level.Over(),
		Frames: level.Frames(),
	}, nil
}

// verifyReplay replays path and compares the result with the outcome saved
// in the file. A file without an outcome only has to replay cleanly.
func verifyReplay(loader *config.Loader, path string) (replay.Outcome, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return replay.Outcome{}, err
	}
	cfg, err := loader.LoadGame()
	if err != nil {
		return replay.Outcome{}, err
	}
	stageCfg, err := loader.LoadStage(data.Stage)
	if err != nil {
		return replay.Outcome{}, err
	}

	got, err := simulate(cfg, stageCfg, *data)
	if err != nil {
		return got, err
	}
	if data.Outcome != nil && *data.Outcome != got {
		return got, fmt.Errorf("%w: recorded %+v, replayed %+v", errReplayMismatch, *data.Outcome, got)
	}
	return got, nil
}
