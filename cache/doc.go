// Package cache provides the response cache in front of the serializer.
//
// The cache stores serialized response bytes keyed by endpoint path and
// format, each entry with the TTL configured for its feed kind. Expiry is
// checked on read only; there is no eviction sweep. Backend failures are
// reported to the caller, which degrades to uncached serving.
package cache
