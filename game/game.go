package game

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type GameConfig struct {
	Width, Height int

	// Seed for piece selection; 0 seeds from the clock. With Randomizer set
	// it is only recorded in saved snapshots.
	Seed       int64
	Randomizer Randomizer

	// Snapshot to load the starting board from, instead of an empty board
	Snapshot *BoardSnapshot

	Logger logrus.FieldLogger

	// Called after every lock that scored points
	OnScoreChange func(score int)
	// Called once when a game ends
	OnGameOver func(state State)

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Snapshot: nil,
		Logger:   logrus.StandardLogger(),
	}
}

func (config GameConfig) createBoard() (*Board, error) {
	if config.Snapshot == nil {
		return NewBoard(config.Width, config.Height)
	}
	return config.Snapshot.CreateBoard()
}

func (config GameConfig) logger() logrus.FieldLogger {
	if config.Logger == nil {
		return logrus.StandardLogger()
	}
	return config.Logger
}

func (config GameConfig) onGameOver(state State) {
	config.saveSnapshot(state)

	if config.OnGameOver != nil {
		config.OnGameOver(state)
	}
}

func (config GameConfig) saveSnapshot(state State) {
	if config.SavedSnapshotsDir == "" {
		return
	}

	log := config.logger().WithField("dir", config.SavedSnapshotsDir)

	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Error("cannot save snapshot")
			return
		}
		if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
			log.WithError(err).Error("cannot create snapshot directory")
			return
		}
	} else if !stat.Mode().IsDir() {
		log.Error("not a directory; cannot save snapshots to it")
		return
	}

	filename := config.generateSnapshotFilename(time.Now())
	path := filepath.Join(config.SavedSnapshotsDir, filename)

	snapshot := NewBoardSnapshot(state.Board)
	snapshot.Seed = config.Seed
	snapshot.Score = state.Score
	snapshot.Lines = state.Lines

	if err := os.WriteFile(path, []byte(snapshot.Serialize()), 0666); err != nil {
		log.WithError(err).Error("cannot save snapshot")
		return
	}

	log.WithField("file", filename).Debug("saved final board")
}

// generateSnapshotFilename names a final board by the time and seed
func (config GameConfig) generateSnapshotFilename(t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405.000_"))
	filenameBuilder.WriteString(strconv.FormatInt(config.Seed, 10))
	filenameBuilder.WriteString("_over.yaml")

	return filenameBuilder.String()
}
