// Command recipeld extracts schema.org Recipe data from JSON-LD documents and
// HTML pages, prints it as a table, JSON, YAML or Markdown, and keeps a local
// SQLite collection of imported recipes.
package main
