// Package feed assembles GTFS-Realtime feed messages from lake snapshot
// rows and serializes them as protobuf or JSON.
//
// Assembly applies the protocol's field-presence rules: an optional field is
// emitted iff its source column was non-NULL, a trip or vehicle descriptor
// is emitted iff at least one of its source columns was non-NULL. Enum
// columns hold GTFS-RT enum names and are resolved against the generated
// bindings; an unknown name aborts assembly so a response is never built
// from a partially valid entity.
package feed
