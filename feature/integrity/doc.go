// Package integrity validates the content set beyond what the store's
// per-file schema checks cover.
//
// Relationships between entities are by convention only: a weapon's
// dropped_by lists monster names as free text and nothing enforces that
// those monsters exist. This package makes the gap visible without making
// it fatal; the wiki stays browsable with dangling links.
//
// # Checks Provided
//
//   - Files: reports which content files failed to load and why.
//   - DroppedBy: every dropped_by entry on weapons and equipment must name
//     an existing monster.
//   - Loot: an item listing monster M as dropper should appear in M's loot
//     text. Loot is free text, so mismatches are warnings only.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/files : Content file report.
//   - GET /integrity/references : Dangling reference report.
package integrity
