package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lololomus/Arrows-sub000/internal/config"
	"github.com/Lololomus/Arrows-sub000/internal/generator"
	"github.com/Lololomus/Arrows-sub000/internal/puzzle"
	"github.com/Lololomus/Arrows-sub000/internal/replay"
	"github.com/Lololomus/Arrows-sub000/internal/storage"
)

var (
	flagMovesFile string
	flagMoves     string
	flagTime      int
	flagRecord    bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <level>",
	Short: "Replay a submitted run against the authoritative level",
	Long: `Validate a completed run the way the game server does: the level is
loaded from the database (or regenerated from (level, seed) on a miss)
and the submitted move sequence is replayed click by click.

The run can be passed as a JSON request file (--moves-file, matching the
completion request payload) or inline (--moves a0,a1,...).

Examples:
  arrows validate 42 --moves-file run.json
  arrows validate 42 --moves a0,a2,a1 --time 37 --record`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&flagMovesFile, "moves-file", "", "JSON file with the completion request")
	validateCmd.Flags().StringVar(&flagMoves, "moves", "", "Comma-separated arrow ids")
	validateCmd.Flags().IntVar(&flagTime, "time", 0, "Completion time in seconds (with --moves)")
	validateCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the attempt in the database")
}

func runValidate(cmd *cobra.Command, args []string) error {
	n, err := parseLevelArg(args[0])
	if err != nil {
		return err
	}

	cfg := loadConfig()

	req, err := buildRequest(n)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	level, err := resolveLevel(store, cfg, n, req.Seed)
	if err != nil {
		return err
	}

	result := replay.New(cfg, logger).Validate(level, req)

	if flagRecord {
		if _, err := store.SaveAttempt(req, result); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	os.Stdout.Write(data)
	fmt.Println()
	return nil
}

func buildRequest(level int) (replay.Request, error) {
	if flagMovesFile != "" {
		data, err := os.ReadFile(flagMovesFile)
		if err != nil {
			return replay.Request{}, fmt.Errorf("cannot read moves file: %w", err)
		}
		var req replay.Request
		if err := json.Unmarshal(data, &req); err != nil {
			return replay.Request{}, fmt.Errorf("cannot parse moves file: %w", err)
		}
		return req, nil
	}

	if flagMoves == "" {
		return replay.Request{}, fmt.Errorf("either --moves-file or --moves is required")
	}
	seed := flagSeed
	if seed == 0 {
		seed = int64(level)
	}
	return replay.Request{
		Level:       level,
		Seed:        seed,
		Moves:       strings.Split(flagMoves, ","),
		TimeSeconds: flagTime,
	}, nil
}

// resolveLevel prefers the stored payload and regenerates on a miss or a
// seed mismatch, mirroring the server's anti-cheat path.
func resolveLevel(store *storage.Store, cfg config.Config, number int, seed int64) (*puzzle.Level, error) {
	level, ok, err := store.LoadLevel(number)
	if err != nil {
		return nil, err
	}
	if ok && level.Seed == seed {
		return level, nil
	}
	return generator.New(cfg, logger).Generate(number, seed), nil
}
