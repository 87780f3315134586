// Package search implements the cross-entity search engine.
//
// A query is matched case-insensitively against each record's name and a
// small set of secondary fields (description, type, loot, incantation and
// the like). Matches are scored in tiers: exact name, name prefix, whole
// word in the name, arbitrary substring of the name, and finally
// secondary-field hits. Equal scores break ties by entity-type priority
// (the wiki's navigation order) and then by name.
//
// Empty or whitespace-only queries return an empty result set, never an
// error. Results are capped at MaxResults and each carries a snippet
// centered on the first match.
package search
