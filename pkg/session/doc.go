/*
Package session holds the explicit state of an open adventure and orchestrates persistence.

A Session bundles the graph store, the playback cursor and the edit focus of one adventure.
Every mutating command saves the new snapshot through a ports.AdventureStore.

A Manager opens sessions, caches them by adventure ID, and serializes work on each ID with
ref-counted local mutexes plus an optional ports.DistributedLocker for multi-replica setups.
*/
package session
