package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/Lololomus/Arrows-sub000/internal/puzzle"
	"github.com/Lololomus/Arrows-sub000/internal/replay"
)

var flagSchemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Emit JSON Schemas of the wire payloads",
	Long: `Write JSON Schemas for the payloads crossing the client boundary:
the level payload and the completion request/response. Client teams
validate their serializers against these files.

Example:
  arrows schema --out schema/`,
	RunE: runSchema,
}

func init() {
	schemaCmd.Flags().StringVar(&flagSchemaOut, "out", "schema", "Directory to write schema files into")
}

func runSchema(cmd *cobra.Command, args []string) error {
	reflector := jsonschema.Reflector{}

	targets := []struct {
		name  string
		value any
		title string
	}{
		{"level.json", new(puzzle.Level), "Arrows Level Payload"},
		{"complete_request.json", new(replay.Request), "Arrows Completion Request"},
		{"complete_response.json", new(replay.Result), "Arrows Completion Response"},
	}

	if err := os.MkdirAll(flagSchemaOut, 0o755); err != nil {
		return fmt.Errorf("cannot create schema directory: %w", err)
	}

	for _, t := range targets {
		schema := reflector.Reflect(t.value)
		schema.Title = t.title

		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal schema %s: %w", t.name, err)
		}
		path := filepath.Join(flagSchemaOut, t.name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write schema %s: %w", path, err)
		}
		fmt.Println(path)
	}
	return nil
}
