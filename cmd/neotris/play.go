package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/teodorv/neotris/internal/core"
	"github.com/teodorv/neotris/internal/games/neotris"
	"github.com/teodorv/neotris/internal/platform/tui"
	"github.com/teodorv/neotris/internal/registry"
	"github.com/teodorv/neotris/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagTheme      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/H     - Move left
  Right/L    - Move right
  Down/J     - Soft drop
  Up/K       - Rotate
  Space      - Hard drop
  A          - Toggle move advisor
  G          - Toggle ghost piece
  T          - Cycle color theme
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower baseline fall speed, gentler floor
  normal - Standard timing
  hard   - Fast baseline fall speed
  fixed  - Constant speed, adaptive difficulty off

Examples:
  neotris play
  neotris play --difficulty easy
  neotris play --theme Dark
  neotris play --config ./my-neotris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Starting color theme: Neon, Dark, Retro")
}

func runPlay(cmd *cobra.Command, args []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Hand CLI overrides to the game before creation
	neotris.SetConfigPath(flagConfig)
	neotris.SetDifficultyPreset(flagDifficulty)
	neotris.SetTheme(flagTheme)

	game, err := registry.Create("neotris")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
