// bingo is a goal bingo board for the terminal.
//
// Usage:
//
//	bingo play                  - Open the interactive board
//	bingo new --title ...       - Create a quest
//	bingo edit <cell> <text>    - Set a goal during setup
//	bingo shuffle               - Shuffle the goals during setup
//	bingo start                 - Lock the board and start playing
//	bingo toggle <cell>         - Mark a goal done or undone
//	bingo claim                 - Claim the unlocked reward
//	bingo status                - Print the board
//	bingo export                - Write the board to a text file
//	bingo list                  - List saved boards, SSH users included
//	bingo config                - Print the default config YAML
//	bingo reset                 - Delete the quest
//	bingo serve                 - Start SSH server for remote boards
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--db <path>         - Database path (default: ~/.bingo/bingo.db)
//	--namespace <name>  - Quest slot inside the database (default: local)
//	--log-level <lvl>   - debug, info, warn, error
//	--seed <value>      - RNG seed for reproducible shuffles
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagNamespace string
	flagLogLevel  string
	flagSeed      int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bingo",
	Short: "Goal Bingo - turn your goals into a bingo card",
	Long: `Goal Bingo puts your goals on an N×N bingo card. Complete a row,
column or diagonal to unlock the reward you picked when creating the quest.

A quest starts in setup mode, where goals are written and shuffled. Once
every cell has a goal it can be started; from then on the board is locked
and goals can only be marked done.

Examples:
  bingo play
  bingo new --title "Spring" --reward "New book" --duration month --size 4
  bingo edit 1 "Run 5k" --icon shoe
  bingo start --yes
  bingo toggle 5
  bingo status`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to quest database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagNamespace, "namespace", "", "Quest slot inside the database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(shuffleCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(claimCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
