package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/they4kman/goblocks/game"
	"gopkg.in/yaml.v2"
)

// fileConfig holds defaults read from a YAML file. Flags given on the command
// line win over anything set here.
type fileConfig struct {
	Width  *int   `yaml:"width"`
	Height *int   `yaml:"height"`
	Seed   *int64 `yaml:"seed"`

	Director  string `yaml:"director"`
	Games     *int   `yaml:"games"`
	MaxPieces *int   `yaml:"max_pieces"`
	Realtime  *bool  `yaml:"realtime"`
	Print     *bool  `yaml:"print"`

	Snapshot     string `yaml:"snapshot"`
	SnapshotsDir string `yaml:"snapshots_dir"`
	ScoresDir    string `yaml:"scores_dir"`
	Namespace    string `yaml:"namespace"`
}

func loadConfigFile(path string) (*fileConfig, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read config")
	}
	return parseConfig(in)
}

func parseConfig(in []byte) (*fileConfig, error) {
	var file fileConfig
	if err := yaml.UnmarshalStrict(in, &file); err != nil {
		return nil, errors.Wrap(err, "cannot parse config")
	}
	return &file, nil
}

func (file *fileConfig) apply(flags *pflag.FlagSet, config *game.GameConfig, options *runOptions) error {
	unset := func(name string) bool {
		return !flags.Changed(name)
	}

	if file.Width != nil && unset("width") {
		config.Width = *file.Width
	}
	if file.Height != nil && unset("height") {
		config.Height = *file.Height
	}
	if file.Seed != nil && unset("seed") {
		config.Seed = *file.Seed
	}
	if file.SnapshotsDir != "" && unset("snapshots-dir") {
		config.SavedSnapshotsDir = file.SnapshotsDir
	}

	if file.Director != "" && unset("director") {
		if err := (*directorValue)(&options.Director).Set(file.Director); err != nil {
			return err
		}
	}
	if file.Games != nil && unset("games") {
		options.Games = *file.Games
	}
	if file.MaxPieces != nil && unset("max-pieces") {
		options.MaxPieces = *file.MaxPieces
	}
	if file.Realtime != nil && unset("realtime") {
		options.Realtime = *file.Realtime
	}
	if file.Print != nil && unset("print") {
		options.Print = *file.Print
	}
	if file.Snapshot != "" && unset("snapshot") {
		options.SnapshotPath = file.Snapshot
	}
	if file.ScoresDir != "" && unset("scores-dir") {
		options.ScoresDir = file.ScoresDir
	}
	if file.Namespace != "" && unset("namespace") {
		options.Namespace = file.Namespace
	}

	return nil
}
