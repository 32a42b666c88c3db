/*
Package ports defines the driven ports (interfaces) for the Quest engine.

These interfaces decouple the core logic from external implementations, allowing
the engine to work with various storage backends and lock providers.

# Key Interfaces

  - AdventureStore: persists whole Adventure snapshots (memory, file, redis, sqlite).
  - Watchable: notifies about adventures changed outside the current process.
  - DistributedLocker: serializes edits of one adventure across replicas.
*/
package ports
