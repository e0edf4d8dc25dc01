package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lololomus/Arrows-sub000/internal/generator"
)

var solveCmd = &cobra.Command{
	Use:   "solve <level>",
	Short: "Print the canonical solve order for a level",
	Long: `Regenerate the level from (level, seed) and print its server-held
clearing sequence.

Examples:
  arrows solve 42
  arrows solve 42 --seed 12345`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	n, err := parseLevelArg(args[0])
	if err != nil {
		return err
	}

	cfg := loadConfig()
	level := generator.New(cfg, logger).Generate(n, flagSeed)

	if level.Solution == nil {
		return fmt.Errorf("level %d (seed %d) has no solution", n, level.Seed)
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Level %d (seed %d)", n, level.Seed)))
	fmt.Printf("Arrows: %d  Depth: %d  Difficulty: %.2f\n",
		level.Meta.ArrowCount, level.Meta.DAGDepth, level.Meta.Difficulty)
	fmt.Println(strings.Join(level.Solution, " "))
	return nil
}
