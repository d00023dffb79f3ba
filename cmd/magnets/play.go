package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/magnet-maze/internal/core"
	"github.com/vovakirdan/magnet-maze/internal/game"
	"github.com/vovakirdan/magnet-maze/internal/game/level"
	"github.com/vovakirdan/magnet-maze/internal/game/levels"
	"github.com/vovakirdan/magnet-maze/internal/platform/tui"
	"github.com/vovakirdan/magnet-maze/internal/storage"
)

var (
	flagLevel     int
	flagLevelFile string
	flagProfile   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Magnet Maze",
	Long: `Start playing from the level stored for your profile.

Controls:
  Click         - Spawn the selected magnet / remove a magnet
  Hold magnet   - Flip its polarity
  Shift+click   - Two-finger repel at the pointer
  1-4 / 0       - Select attract, repel, trap, parabolic / nothing
  Space         - Switch polarity
  P/Esc         - Pause
  R             - Retry the layout
  G             - New layout for this level
  N             - Next level (after a win)
  ?             - Help
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Fewer obstacles, more time and magnets
  normal - Stock settings
  hard   - More obstacles, less time and magnets
  fixed  - No per-level scaling

Examples:
  magnets play
  magnets play --level 5 --seed 42
  magnets play --difficulty hard
  magnets play --level-file ./levels/corridor.yaml
  magnets play --profile alice`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level (0 = stored progress)")
	playCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Play a layout from a YAML level file")
	playCmd.Flags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Progress profile")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
		Level:    flagLevel,
	}

	var grid *level.Grid
	if flagLevelFile != "" {
		f, loadErr := levels.LoadFile(flagLevelFile)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", loadErr)
			os.Exit(1)
		}
		grid = f.Grid
		if rc.Level == 0 {
			rc.Level = f.Level
		}
		logger.Info("level file loaded", "path", f.Path, "id", f.ID)
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	session := game.New(cfg, logger)
	if err := tui.Start(session, store, flagProfile, rc, grid); err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error starting level: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(session, store, flagProfile, rc, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
