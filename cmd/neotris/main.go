// neotris is a falling-block puzzle game for the terminal, with a built-in
// move advisor and performance-adaptive difficulty.
//
// Usage:
//
//	neotris play             - Play in the current terminal
//	neotris scores           - Show the session scoreboard
//	neotris serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.neotris/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/teodorv/neotris/internal/games/neotris"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neotris",
	Short: "Neotris - A falling-block puzzle game for your terminal",
	Long: `Neotris is a terminal falling-block puzzle game with a heuristic
move advisor and a difficulty controller that adapts to how well you play.

Available commands:
  play     - Play in the current terminal
  scores   - View past sessions and the high score
  serve    - Start SSH server for remote play

Examples:
  neotris play
  neotris play --difficulty hard --theme Retro
  neotris scores
  neotris serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neotris/scores.db", "Path to sessions database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
