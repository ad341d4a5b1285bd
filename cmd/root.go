package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/goblocks/game"
	"github.com/they4kman/goblocks/score"
)

var gameConfig = game.NewGameConfig()
var options = newRunOptions()
var configPath string
var logLevel string

var rootCmd = &cobra.Command{
	Use:   "goblocks",
	Short: "Play computer-driven falling-block games",
	Long: `goblocks plays falling-block puzzle games headless, with the
computer at the controls.

Run with no arguments to watch the heuristic player
	goblocks -print

Use the director flag to pick a different player
	goblocks -director random -games 10
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)

		if configPath != "" {
			file, err := loadConfigFile(configPath)
			if err != nil {
				return err
			}
			if err := file.apply(cmd.Flags(), &gameConfig, &options); err != nil {
				return err
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return play(ctx, gameConfig, options, cmd.OutOrStdout())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func openScoreStore(dir string) (score.Store, error) {
	if dir == "" {
		return score.NewMemoryStore(), nil
	}
	return score.OpenBadgerStore(dir)
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&gameConfig.Width, "width", "w", game.DefaultWidth, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Height, "height", "h", game.DefaultHeight, "Height of game board, in cells")
	rootCmd.Flags().Int64VarP(&gameConfig.Seed, "seed", "s", 0, "Seed for piece selection (0 picks one from the clock)")
	rootCmd.Flags().StringVar(&gameConfig.SavedSnapshotsDir, "snapshots-dir", "", "Directory to save the final board of every game to")
	rootCmd.Flags().StringVar(&options.SnapshotPath, "snapshot", "", "Snapshot file to load the starting board from")

	rootCmd.Flags().VarP(newDirectorValue(heuristicDirector, &options.Director), "director", "d", `Computer player.
heuristic: rates every placement of each piece and plays the best
random: moves each piece around at random before dropping it`)
	rootCmd.Flags().IntVarP(&options.Games, "games", "g", 1, "Number of games to play")
	rootCmd.Flags().IntVar(&options.MaxPieces, "max-pieces", 0, "Stop a game after this many pieces (0 for no limit)")
	rootCmd.Flags().BoolVar(&options.Realtime, "realtime", false, "Wait the level's gravity interval between ticks")
	rootCmd.Flags().BoolVarP(&options.Print, "print", "p", false, "Print the final board of every game")

	rootCmd.Flags().StringVar(&options.ScoresDir, "scores-dir", "", "Directory of the best-score database (kept in memory if empty)")
	rootCmd.Flags().StringVarP(&options.Namespace, "namespace", "n", score.DefaultNamespace, "Namespace best scores are kept under")

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file with default settings")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
