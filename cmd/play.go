package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/goblocks/director/heuristic"
	"github.com/they4kman/goblocks/director/random"
	"github.com/they4kman/goblocks/game"
)

type directorKind int

const (
	heuristicDirector directorKind = iota
	randomDirector
)

type runOptions struct {
	Director  directorKind
	Games     int
	MaxPieces int
	Realtime  bool
	Print     bool

	SnapshotPath string
	ScoresDir    string
	Namespace    string
}

func newRunOptions() runOptions {
	return runOptions{
		Director: heuristicDirector,
		Games:    1,
	}
}

type directorValue directorKind

func newDirectorValue(val directorKind, p *directorKind) *directorValue {
	*p = val
	return (*directorValue)(p)
}

var directorKinds = map[string]directorKind{
	"heuristic": heuristicDirector,
	"random":    randomDirector,
}

func (kindVal *directorValue) String() string {
	for name, kind := range directorKinds {
		if kind == directorKind(*kindVal) {
			return name
		}
	}
	return fmt.Sprint(*kindVal)
}

func (kindVal *directorValue) Set(value string) error {
	if kind, isValid := directorKinds[value]; isValid {
		*kindVal = directorValue(kind)
		return nil
	} else {
		return fmt.Errorf("invalid director %q", value)
	}
}

func (kindVal *directorValue) Type() string {
	return "director"
}

func (options runOptions) newDirector(seed int64) game.Director {
	switch options.Director {
	case randomDirector:
		return random.New(seed)
	default:
		return heuristic.New()
	}
}

func loadSnapshotFile(path string) (*game.BoardSnapshot, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read snapshot")
	}
	snapshot, err := game.LoadSnapshot(string(in))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse snapshot %s", path)
	}
	return snapshot, nil
}

func play(ctx context.Context, config game.GameConfig, options runOptions, out io.Writer) error {
	if options.SnapshotPath != "" {
		snapshot, err := loadSnapshotFile(options.SnapshotPath)
		if err != nil {
			return err
		}
		config.Snapshot = snapshot
		if config.Seed == 0 {
			config.Seed = snapshot.Seed
		}
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	store, err := openScoreStore(options.ScoresDir)
	if err != nil {
		return err
	}
	defer store.Close()

	log := logrus.WithField("namespace", options.Namespace)
	config.OnScoreChange = func(score int) {
		if recorded, err := store.Record(options.Namespace, score); err != nil {
			log.WithError(err).Warn("cannot record score")
		} else if recorded {
			log.WithField("score", score).Debug("new best score")
		}
	}

	for i := 0; i < options.Games; i++ {
		session, err := game.NewSession(config)
		if err != nil {
			return err
		}

		runner := game.NewRunner(session, options.newDirector(config.Seed))
		runner.MaxPieces = options.MaxPieces
		if !options.Realtime {
			runner.Interval = func(int) time.Duration { return 0 }
		}

		if err := runner.Run(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				log.Info("interrupted")
				return nil
			}
			return err
		}

		frame := session.Frame()
		best, err := store.Best(options.Namespace)
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"game":   i + 1,
			"score":  frame.Score,
			"lines":  frame.Lines,
			"level":  frame.Level,
			"pieces": runner.Pieces(),
			"best":   best,
		}).Info("game finished")

		if options.Print {
			if err := printFrame(out, frame); err != nil {
				return err
			}
		}

		// Every game draws a different piece sequence
		config.Seed++
	}

	return nil
}
