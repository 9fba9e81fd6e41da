package main

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/reoring/recipeld/schemaorg"
)

// renderMarkdown renders a recipe card. Publishers often embed HTML in
// descriptions and steps, so both go through html-to-markdown.
func renderMarkdown(r schemaorg.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Name())
	if desc := htmlToMarkdown(r.Description()); desc != "" {
		fmt.Fprintf(&b, "%s\n\n", desc)
	}

	var facts []string
	if y, ok := r.Yield(); ok {
		facts = append(facts, "**Yield:** "+y.String())
	}
	for _, f := range []struct {
		label string
		get   func() (schemaorg.MaybeDuration, bool)
	}{
		{"Prep", r.PrepTime},
		{"Cook", r.CookTime},
		{"Total", r.TotalTime},
	} {
		if d, ok := f.get(); ok && d.Present() {
			facts = append(facts, fmt.Sprintf("**%s:** %s", f.label, durationText(d, true)))
		}
	}
	if len(facts) > 0 {
		b.WriteString(strings.Join(facts, " · "))
		b.WriteString("\n\n")
	}

	b.WriteString("## Ingredients\n\n")
	for ing := range r.Ingredients().Seq() {
		fmt.Fprintf(&b, "- %s\n", htmlToMarkdown(ing))
	}

	in, ok := r.Instructions()
	if !ok {
		return b.String()
	}
	b.WriteString("\n## Instructions\n")
	if sections, ok := in.Sections(); ok {
		for _, s := range sections {
			fmt.Fprintf(&b, "\n### %s\n\n", s.Name())
			writeSteps(&b, s.Instructions())
		}
		return b.String()
	}
	directions, _ := in.Directions()
	b.WriteString("\n")
	writeSteps(&b, directions)
	return b.String()
}

func writeSteps(b *strings.Builder, steps []schemaorg.Instruction) {
	for i, s := range steps {
		fmt.Fprintf(b, "%d. %s\n", i+1, htmlToMarkdown(s.Text()))
	}
}

// htmlToMarkdown converts an HTML fragment, falling back to the trimmed
// input when conversion fails.
func htmlToMarkdown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || !strings.ContainsAny(s, "<&") {
		return s
	}
	md, err := htmltomarkdown.ConvertString(s)
	if err != nil {
		return s
	}
	return strings.TrimSpace(md)
}
