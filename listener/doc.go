// Package listener maintains the data notification subscription.
//
// The listener is an architectural placeholder for cache invalidation: it
// subscribes to one broker topic and only logs what it receives. It runs in
// its own failure domain; broker connectivity problems are retried
// internally and never reach request serving.
package listener
