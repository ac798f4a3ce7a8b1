// Package sync implements the remote-storage synchronization pipeline: a
// marker-paginated object lister with bounded retry, and an orchestrator that
// classifies listed keys, fetches and merges album descriptors, reconciles
// the result into the database, and reports progress through the operation
// log.
package sync
