package catalog

import "errors"

// Sentinel errors returned by MemoryLobbyStore; real LobbyStore
// implementations are free to wrap their own.
var (
	ErrLobbyNotFound = errors.New("lobby not found")
	ErrUnknownPlayer = errors.New("unknown player")
)
