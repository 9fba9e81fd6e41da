// Package schemaorg decodes schema.org Recipe JSON-LD into immutable records.
//
// Publishers disagree on shape: recipeYield may be a number, a string or an
// array; recipeInstructions may be a string, a HowToStep, a list of either, or
// a list of HowToSection groups. Every polymorphic field is decoded by an
// ordered list of candidate shapes; the first candidate that matches wins and
// the order is part of the contract (see the *Candidates functions).
//
// Mandatory recipe fields (name, description, recipeIngredient) fail the
// record when missing or malformed. Optional fields degrade to absence. At the
// document level, objects that are not recipes decode as placeholders so
// breadcrumb or organization metadata never fails the envelope.
//
// Entry points:
//
//	entry, err := schemaorg.FromJSONBytes(data)
//	recipes := entry.ExtractRecipes()
//
//	entries := schemaorg.ScrapeHTML(page) // malformed blocks are dropped
package schemaorg
