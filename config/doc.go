// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a yaml file and validated using struct tags.
// A missing file falls back to built-in defaults; keys absent from a partial
// file keep their default values. The schema covers endpoint routing, the
// response cache (backend endpoint and per-feed TTLs), the change
// notification broker and the HTTP server port.
package config
