// arrows is the server-side toolbox for the arrows puzzle core.
//
// Usage:
//
//	arrows generate <level>     - Generate a level and print its summary
//	arrows solve <level>        - Print the canonical solve order
//	arrows validate <level>     - Replay a submitted run against the level
//	arrows hint <level>         - Suggest a removable arrow
//	arrows stats <level>        - Show recorded attempts for a level
//	arrows schema               - Emit JSON Schemas of the wire payloads
//
// Global flags:
//
//	--seed <value>   - PRNG seed (0 = derive from level number)
//	--db <path>      - Level/attempt database path
//	--config <path>  - Game config YAML path
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Lololomus/Arrows-sub000/internal/config"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "arrows",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arrows",
	Short: "Arrows puzzle core - generate, solve and validate levels",
	Long: `Arrows is the server-side core of the arrows tile puzzle: a
deterministic level generator, a solvability validator and an
authoritative replay validator for submitted runs.

Examples:
  arrows generate 42 --check
  arrows generate --from 1 --to 100 --store
  arrows solve 42
  arrows validate 42 --moves run.json
  arrows hint 42 --remaining a0,a3,a7
  arrows stats 42
  arrows schema --out schema/`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "PRNG seed (0 = derive from level number)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arrows/levels.db", "Path to level database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(schemaCmd)
}

// loadConfig resolves the game configuration for every subcommand.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("cannot load config", "err", err)
		os.Exit(1)
	}
	return cfg
}
