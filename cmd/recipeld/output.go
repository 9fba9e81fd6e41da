package main

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reoring/recipeld/internal/store"
	"github.com/reoring/recipeld/schemaorg"
)

const (
	formatTable    = "table"
	formatJSON     = "json"
	formatYAML     = "yaml"
	formatMarkdown = "markdown"
)

// recipeView is one printed recipe. ID is empty for recipes that were not
// read from the store.
type recipeView struct {
	ID     string           `json:"id,omitempty" yaml:"id,omitempty"`
	Source string           `json:"source,omitempty" yaml:"source,omitempty"`
	Recipe schemaorg.Recipe `json:"recipe" yaml:"recipe"`
}

func viewsOf(source string, recipes []schemaorg.Recipe) []recipeView {
	out := make([]recipeView, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, recipeView{Source: source, Recipe: r})
	}
	return out
}

func entryView(e store.Entry) recipeView {
	return recipeView{ID: e.ID, Source: e.Source, Recipe: e.Recipe}
}

func (c *commandContext) writeRecipes(cmd *cobra.Command, views []recipeView) error {
	format, err := c.outputFormat(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	switch format {
	case formatJSON:
		return writeJSON(cmd, views)
	case formatYAML:
		return writeYAML(cmd, views)
	case formatMarkdown:
		for i, v := range views {
			if i > 0 {
				fmt.Fprintln(out, "\n---")
			}
			fmt.Fprint(out, renderMarkdown(v.Recipe))
		}
		return nil
	default:
		if len(views) == 0 {
			fmt.Fprintln(out, "No recipes found")
			return nil
		}
		fmt.Fprintln(out, renderRecipeTable(views))
		return nil
	}
}

// writeRecipe prints one recipe in full; the table format shows its fields
// followed by ingredients and steps.
func (c *commandContext) writeRecipe(cmd *cobra.Command, v recipeView) error {
	format, err := c.outputFormat(cmd)
	if err != nil {
		return err
	}
	switch format {
	case formatJSON:
		return writeJSON(cmd, v)
	case formatYAML:
		return writeYAML(cmd, v)
	case formatMarkdown:
		fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(v.Recipe))
		return nil
	default:
		fmt.Fprintln(cmd.OutOrStdout(), renderRecipeDetail(v))
		return nil
	}
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func renderRecipeTable(views []recipeView) string {
	headers := []string{"ID", "Name", "Yield", "Total", "Ingredients", "Steps", "Source"}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		r := v.Recipe
		steps := 0
		if in, ok := r.Instructions(); ok {
			steps = len(in.Steps())
		}
		rows = append(rows, []string{
			shortID(v.ID),
			r.Name(),
			yieldText(r),
			durationText(r.TotalTime()),
			strconv.Itoa(r.Ingredients().Len()),
			strconv.Itoa(steps),
			v.Source,
		})
	}
	return renderTable(headers, rows, []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft})
}

func renderRecipeDetail(v recipeView) string {
	r := v.Recipe
	fields := [][]string{
		{"ID", v.ID},
		{"Source", v.Source},
		{"Name", r.Name()},
		{"Description", r.Description()},
		{"Yield", yieldText(r)},
		{"Prep", durationText(r.PrepTime())},
		{"Cook", durationText(r.CookTime())},
		{"Total", durationText(r.TotalTime())},
	}
	var b strings.Builder
	b.WriteString(renderTable([]string{"Field", "Value"}, fields, nil))
	b.WriteString("\n")

	ingredients := make([][]string, 0, r.Ingredients().Len())
	for i, ing := range r.Ingredients().All() {
		ingredients = append(ingredients, []string{strconv.Itoa(i + 1), ing})
	}
	b.WriteString(renderTable([]string{"#", "Ingredient"}, ingredients, []columnAlignment{alignRight}))

	if in, ok := r.Instructions(); ok {
		steps := make([][]string, 0)
		for i, s := range in.Steps() {
			steps = append(steps, []string{strconv.Itoa(i + 1), s})
		}
		b.WriteString("\n")
		b.WriteString(renderTable([]string{"#", "Step"}, steps, []columnAlignment{alignRight}))
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func yieldText(r schemaorg.Recipe) string {
	if y, ok := r.Yield(); ok {
		return y.String()
	}
	return schemaorg.DefaultQuantity().String()
}

func durationText(d schemaorg.MaybeDuration, present bool) string {
	if !present {
		return "-"
	}
	if h, ok := d.HumanReadable(); ok {
		return h
	}
	if d.Present() {
		return d.String()
	}
	return "?"
}
