package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/recipeld"
	"github.com/reoring/recipeld/schemaorg"
)

func newScrapeCommand(ctx *commandContext) *cobra.Command {
	var repair bool

	cmd := &cobra.Command{
		Use:   "scrape [file|-]",
		Short: "Extract recipes from the ld+json blocks of an HTML page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			entries, err := schemaorg.ScrapeHTMLReader(in, ctx.scrapeOptions(repair)...)
			if err != nil {
				return fmt.Errorf("scrape %s: %w", name, err)
			}
			recipes := recipeld.ExtractAll[schemaorg.Recipe](entries)
			ctx.log().Info("scraped page", "input", name, "blocks", len(entries), "recipes", len(recipes))
			return ctx.writeRecipes(cmd, viewsOf(name, recipes))
		},
	}

	cmd.Flags().BoolVar(&repair, "repair", false, "Repair malformed ld+json blocks before dropping them")
	return cmd
}
