package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/recipeld/internal/store"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored recipes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd.Context(), func(s *store.Store) error {
				entries, err := s.List(cmd.Context())
				if err != nil {
					return err
				}
				views := make([]recipeView, 0, len(entries))
				for _, e := range entries {
					views = append(views, entryView(e))
				}
				return ctx.writeRecipes(cmd, views)
			})
		},
	}
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one stored recipe in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd.Context(), func(s *store.Store) error {
				e, err := s.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return ctx.writeRecipe(cmd, entryView(e))
			})
		},
	}
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>...",
		Aliases: []string{"rm"},
		Short:   "Remove stored recipes",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd.Context(), func(s *store.Store) error {
				for _, id := range args {
					if err := s.Remove(cmd.Context(), id); err != nil {
						return err
					}
					ctx.log().Info("removed recipe", "id", id)
					fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", id)
				}
				return nil
			})
		},
	}
}
