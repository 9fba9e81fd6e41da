package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/recipeld/schemaorg"
	yamlsrc "github.com/reoring/recipeld/source/yaml"
)

func newDecodeCommand(ctx *commandContext) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "decode [file|-]",
		Short: "Decode a JSON-LD document and print its recipes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			var entry schemaorg.SchemaEntry
			if asYAML || isYAMLPath(name) {
				entry, err = schemaorg.FromSource(yamlsrc.NewReader(in), ctx.parseOpt())
			} else {
				entry, err = schemaorg.FromJSONReader(in, ctx.parseOpt())
			}
			if err != nil {
				return fmt.Errorf("decode %s: %w", name, err)
			}

			recipes := entry.ExtractRecipes()
			ctx.log().Debug("decoded document", "input", name, "recipes", len(recipes))
			return ctx.writeRecipes(cmd, viewsOf(name, recipes))
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Read the document as YAML-LD")
	return cmd
}
