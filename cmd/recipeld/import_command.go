package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reoring/recipeld"
	"github.com/reoring/recipeld/internal/store"
	"github.com/reoring/recipeld/schemaorg"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var repair bool

	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Extract recipes from HTML or JSON-LD files and store them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd.Context(), func(s *store.Store) error {
				var added []recipeView
				for _, path := range args {
					recipes, err := ctx.extractFile(path, repair)
					if err != nil {
						return err
					}
					if len(recipes) == 0 {
						ctx.log().Warn("no recipes found", "input", path)
						continue
					}
					for _, r := range recipes {
						e, err := s.Add(cmd.Context(), path, r)
						if err != nil {
							return fmt.Errorf("store recipe from %s: %w", path, err)
						}
						ctx.log().Info("imported recipe", "id", e.ID, "name", r.Name(), "input", path)
						added = append(added, entryView(e))
					}
				}
				return ctx.writeRecipes(cmd, added)
			})
		},
	}

	cmd.Flags().BoolVar(&repair, "repair", false, "Repair malformed ld+json blocks before dropping them")
	return cmd
}

// extractFile decodes .json/.jsonld files as JSON-LD and everything else as HTML.
func (c *commandContext) extractFile(path string, repair bool) ([]schemaorg.Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	if isJSONLDPath(path) {
		entry, err := schemaorg.FromJSONReader(f, c.parseOpt())
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return entry.ExtractRecipes(), nil
	}
	entries, err := schemaorg.ScrapeHTMLReader(f, c.scrapeOptions(repair)...)
	if err != nil {
		return nil, fmt.Errorf("scrape %s: %w", path, err)
	}
	return recipeld.ExtractAll[schemaorg.Recipe](entries), nil
}
