// lunarcade is a terminal lunar lander arcade.
//
// Usage:
//
//	lunarcade list              - List available game modes
//	lunarcade play <mode>       - Play a mode directly
//	lunarcade menu              - Start the interactive mode picker
//	lunarcade serve             - Start SSH server for remote play
//	lunarcade scores <mode>     - Show best runs for a mode
//	lunarcade terrain           - Preview a generated terrain profile
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.lunarcade/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/lunarcade/internal/games/lander"
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
	Use:   "lunarcade",
	Short: "Lunar Lander - Land on the pad, in your terminal",
	Long: `lunarcade is a terminal-based lunar lander game.

Steer the ship down against gravity and touch down gently on the
landing pad. Every safe landing raises the difficulty.

Available commands:
  list     - Show all available game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View best runs
  terrain  - Preview a generated terrain profile

Examples:
  lunarcade play lander
  lunarcade play lander_zen --difficulty easy
  lunarcade menu
  lunarcade serve --ssh :2222
  lunarcade scores lander
  lunarcade terrain --seed 42`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lunarcade/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(terrainCmd)
}
