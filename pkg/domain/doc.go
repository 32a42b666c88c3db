/*
Package domain contains the core domain models of the Quest engine.

It defines the story graph: the six node variants, their outgoing edges and the
Adventure aggregate that owns them. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Node: a sealed interface over Dialogue, Combat, Exploration, Skill, Item and Loot.
  - Adventure: the aggregate root (id, metadata, node map and start node pointer).
  - Kind: the closed set of node type tags used for persistence and type changes.

The derived queries Title, TypeLabel and OutgoingEdges are total: they never fail,
including on zero values and nil.
*/
package domain
