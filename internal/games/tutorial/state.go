package tutorial

import (
	"time"

	"github.com/vovakirdan/sprite-tutorial/internal/config"
	"github.com/vovakirdan/sprite-tutorial/internal/engine"
)

// GameState is the persistent record threaded through every frame.
type GameState struct {
	HighScore uint32
	Score     uint32

	// NextSpawnIndex numbers spawned targets. It only ever increases, so a
	// label is never handed out twice in a run.
	NextSpawnIndex int32

	SpawnTimer engine.Timer

	// Session statistics for the run history. They do not affect gameplay.
	TargetsSpawned   int
	TargetsCollected int
	Resets           int
}

// NewGameState returns the state a run starts with.
func NewGameState(cfg config.TutorialConfig) GameState {
	return GameState{
		SpawnTimer: engine.NewTimer(cfg.Targets.SpawnInterval, engine.TimerRepeating),
	}
}

// RunSummary is what a host records when a run ends.
type RunSummary struct {
	Score            int
	HighScore        int
	TargetsSpawned   int
	TargetsCollected int
	Resets           int
	Duration         time.Duration
}

// Summarize builds a RunSummary from the final state and play time.
func Summarize(s GameState, played time.Duration) RunSummary {
	return RunSummary{
		Score:            int(s.Score),
		HighScore:        int(s.HighScore),
		TargetsSpawned:   s.TargetsSpawned,
		TargetsCollected: s.TargetsCollected,
		Resets:           s.Resets,
		Duration:         played,
	}
}
