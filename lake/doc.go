// Package lake provides access to the GTFS lake database: an embedded
// SQLite file holding the static GTFS tables and the normalized realtime
// snapshot tables.
//
// The realtime read side exposes exactly three snapshot queries, one per
// feed kind. Each query runs inside a single read-only transaction so the
// parent and child row sets of one feed come from the same database state.
package lake
