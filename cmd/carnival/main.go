// carnival is a terminal grid game about digging rocks and building walls.
//
// Usage:
//
//	carnival list              - List available modes
//	carnival play <mode>       - Play a mode
//	carnival menu              - Start menu to pick a mode interactively
//	carnival serve             - Start SSH server for remote play
//	carnival scores <mode>     - Show best sessions for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.carnival/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/tchaudhry91/carnival/internal/games/carnival"
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
	Use:   "carnival",
	Short: "Carnival - Dig rocks and build walls in your terminal",
	Long: `Carnival is a terminal grid game. You are a lone digger in a walled
arena: dig up walls for rocks, carry them, and build new walls while
the arena slowly fills with fresh stone.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View best sessions

Examples:
  carnival list
  carnival play carnival
  carnival menu
  carnival serve --ssh :2222
  carnival scores carnival`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.carnival/sessions.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
