// Package store persists extracted recipes in SQLite.
//
// Each row keeps the normalized schema.org JSON document produced by
// schemaorg.Recipe.MarshalJSON; reads decode it back through the same
// tolerant decoder, so stored rows never bypass the field rules.
package store
