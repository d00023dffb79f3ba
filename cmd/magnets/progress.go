package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/magnet-maze/internal/storage"
)

var flagProgressProfile string

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show stored progress",
	Long: `Show the stored level and instructions flag for a profile.

Subcommands:
  reset      - Forget the level and instructions flag (run history is kept)
  set-level  - Jump to a level

Examples:
  magnets progress
  magnets progress --profile alice
  magnets progress reset
  magnets progress set-level 5`,
	Args: cobra.NoArgs,
	Run:  runProgress,
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset stored progress",
	Args:  cobra.NoArgs,
	Run:   runProgressReset,
}

var progressSetLevelCmd = &cobra.Command{
	Use:   "set-level <level>",
	Short: "Set the stored level",
	Args:  cobra.ExactArgs(1),
	Run:   runProgressSetLevel,
}

func init() {
	progressCmd.PersistentFlags().StringVar(&flagProgressProfile, "profile", storage.DefaultProfile, "Progress profile")
	progressCmd.AddCommand(progressResetCmd)
	progressCmd.AddCommand(progressSetLevelCmd)
}

// mustOpenStore opens the database or exits.
func mustOpenStore() *storage.Store {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runProgress(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	level, err := store.Level(flagProgressProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	seen, err := store.HasSeenInstructions(flagProgressProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	fmt.Printf("Profile:       %s\n", flagProgressProfile)
	fmt.Printf("Level:         %d\n", level)
	fmt.Printf("Instructions:  %s\n", map[bool]string{true: "seen", false: "not seen"}[seen])
}

func runProgressReset(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if err := store.ResetProgress(flagProgressProfile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Progress reset for %s\n", flagProgressProfile)
}

func runProgressSetLevel(_ *cobra.Command, args []string) {
	level, err := strconv.Atoi(args[0])
	if err != nil || level < 1 {
		fmt.Fprintf(os.Stderr, "Error: level must be a positive integer, got %q\n", args[0])
		os.Exit(1)
	}

	store := mustOpenStore()
	defer store.Close()

	if err := store.SetLevel(flagProgressProfile, level); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("%s is now on level %d\n", flagProgressProfile, level)
}
