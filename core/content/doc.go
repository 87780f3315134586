// Package content implements the content store: the immutable in-memory
// collections the wiki serves.
//
// Six JSON files make up the content set (weapons, equipment, spells,
// monsters, quests, server_info). They are loaded once at startup, either
// from a configured directory or from the embedded default set, and never
// change for the lifetime of the process.
//
// # Load Semantics
//
// Collections load independently. A missing or malformed file marks only its
// own collection as unavailable; the remaining pages keep working. There is
// no partial success within a file: one invalid record fails the whole
// collection, and the error is kept on the store for handlers to surface.
//
// # Usage
//
//	store := content.Load("./content", logger)
//	if err := store.Err(content.KindWeapons); err != nil {
//	    // weapons page shows the load error
//	}
//	weapons := store.Weapons()
package content
