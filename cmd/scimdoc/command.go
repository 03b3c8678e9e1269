package main

import (
	"encoding/json"
	"fmt"
	"os"

	goccyyaml "github.com/goccy/go-yaml"
	"github.com/urfave/cli/v2"

	"github.com/scimkit/scimmodel/dynamic"
	"github.com/scimkit/scimmodel/spec"
)

// Command returns the scimdoc cli.Command: read a Schema JSON document,
// build its model, and print either a descriptor tree or a JSON Schema
// export of the result.
func Command() *cli.Command {
	arg := &arguments{}
	return &cli.Command{
		Name:      "scimdoc",
		Usage:     "Inspect the model a SCIM Schema document generates",
		ArgsUsage: "<schema-file.json>",
		Flags:     arg.Flags(),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("exactly one schema file argument is required", 1)
			}
			arg.SchemaPath = c.Args().Get(0)
			return run(arg)
		},
	}
}

func run(arg *arguments) error {
	logger := arg.Logger()

	raw, err := os.ReadFile(arg.SchemaPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", arg.SchemaPath, err)
	}

	var schema spec.Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		return fmt.Errorf("parsing schema document: %w", err)
	}

	td, err := dynamic.BuildModel(&schema)
	if err != nil {
		return fmt.Errorf("building model: %w", err)
	}
	logger.Debug().Str("schema", schema.ID()).Int("fields", len(td.Fields())).Msg("model built")

	if !arg.JSONSchema {
		describeModel(os.Stdout, td)
		return nil
	}

	exported := dynamic.ExportJSONSchema(td)
	switch arg.Format {
	case "yaml":
		return printYAML(os.Stdout, exported)
	default:
		return printJSON(os.Stdout, exported)
	}
}

func printJSON(w *os.File, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYAML(w *os.File, v interface{}) error {
	asJSON, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic interface{}
	if err := json.Unmarshal(asJSON, &generic); err != nil {
		return err
	}
	out, err := goccyyaml.Marshal(generic)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
