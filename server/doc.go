// Package server exposes the three realtime feed endpoints over HTTP.
//
// Each request runs the pipeline: cache lookup, snapshot fetch, assembly,
// envelope, serialization, cache store. The f query parameter selects the
// output format; anything other than "json" means protobuf binary.
package server
