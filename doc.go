/*
Package quest is an authoring and playback engine for branching adventures.

An adventure is a graph of typed nodes (dialogue, combat, exploration, skill check, item and
loot) rooted at a start node. Quest keeps the graph consistent while it is edited, lays it
out for a map view, and walks it during playback.

# Architecture

  - pkg/domain: the node variants, the Adventure aggregate and their read-only queries.
  - pkg/graph, pkg/editor, pkg/play, pkg/layout: the graph store, authoring commands,
    the playback cursor and the map layout.
  - pkg/session: one open adventure, and the Manager that serializes access per adventure.
  - pkg/ports and pkg/adapters: the AdventureStore contract with memory, file, Redis and
    SQLite backends, the HTTP API generated from api/openapi.yaml, and an MCP tool server
    for agents.

# Usage

	eng, err := quest.New(quest.WithStore(file.New("./adventures")))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	sess, err := eng.Manager.Create(ctx, "The Cave", "")
	if err != nil {
		log.Fatal(err)
	}

	_ = sess.EnterEdit(domain.StartNodeID)
	childID, err := sess.AddChildAndLink(ctx, "Enter the cave")

Every mutating session command saves the new snapshot through the store. When the store
rejects a write the edit stays in memory and the session reports Dirty until Save succeeds.
*/
package quest
