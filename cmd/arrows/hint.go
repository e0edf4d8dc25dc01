package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lololomus/Arrows-sub000/internal/engine"
	"github.com/Lololomus/Arrows-sub000/internal/generator"
	"github.com/Lololomus/Arrows-sub000/internal/puzzle"
)

var flagRemaining string

var hintCmd = &cobra.Command{
	Use:   "hint <level>",
	Short: "Suggest one removable arrow",
	Long: `Regenerate the level and print the id of one currently free arrow
among the remaining ones. Without --remaining the full board is assumed.

Examples:
  arrows hint 42
  arrows hint 42 --remaining a0,a3,a7`,
	Args: cobra.ExactArgs(1),
	RunE: runHint,
}

func init() {
	hintCmd.Flags().StringVar(&flagRemaining, "remaining", "", "Comma-separated ids of arrows still on the board")
}

func runHint(cmd *cobra.Command, args []string) error {
	n, err := parseLevelArg(args[0])
	if err != nil {
		return err
	}

	cfg := loadConfig()
	level := generator.New(cfg, logger).Generate(n, flagSeed)

	remaining := level.Arrows
	if flagRemaining != "" {
		keep := make(map[string]bool)
		for _, id := range strings.Split(flagRemaining, ",") {
			keep[strings.TrimSpace(id)] = true
		}
		remaining = make([]*puzzle.Arrow, 0, len(keep))
		for _, a := range level.Arrows {
			if keep[a.ID] {
				remaining = append(remaining, a)
			}
		}
		if len(remaining) == 0 {
			return fmt.Errorf("no known arrows remaining")
		}
	}

	id, ok := engine.Hint(remaining, level.Grid)
	if !ok {
		return fmt.Errorf("no free arrow on the board")
	}
	fmt.Println(id)
	return nil
}
