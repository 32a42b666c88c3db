package domain

import "errors"

// ErrAdventureNotFound is returned when an adventure ID cannot be found in the store.
var ErrAdventureNotFound = errors.New("adventure not found")

// ErrNodeNotFound is returned when a node ID is not a key of the adventure's node map.
var ErrNodeNotFound = errors.New("node not found")

// ErrStartNodeProtected is returned when a mutation would delete the start node.
var ErrStartNodeProtected = errors.New("start node cannot be deleted")

// ErrUnknownKind is returned when a node type tag or label is not one of the six kinds.
var ErrUnknownKind = errors.New("unknown node kind")

// ErrDecode is returned when a persisted adventure record cannot be decoded.
var ErrDecode = errors.New("failed to decode adventure")
