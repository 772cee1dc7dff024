package catalog

import "sync"

// MemoryLobbyStore is an in-process LobbyStore: the pre-session roster
// bookkeeping (join/leave/ready) a real deployment would delegate to an
// external lobby-persistence service. It exists so the transport layer has
// a roster to hand SessionEngine.StartSession, grounded on the teacher's
// Hub.players slice and first-connection-becomes-moderator rule in
// celebrity.go, generalized from "moderator" to "host".
type MemoryLobbyStore struct {
	mu      sync.Mutex
	lobbies map[string]*LobbyDescriptor
}

// NewMemoryLobbyStore builds an empty store.
func NewMemoryLobbyStore() *MemoryLobbyStore {
	return &MemoryLobbyStore{lobbies: make(map[string]*LobbyDescriptor)}
}

// Lookup implements LobbyStore.
func (s *MemoryLobbyStore) Lookup(lobbyCode string) (*LobbyDescriptor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	desc, ok := s.lobbies[lobbyCode]
	if !ok {
		return nil, ErrLobbyNotFound
	}

	cp := *desc
	cp.Roster = append([]RosterEntry(nil), desc.Roster...)
	return &cp, nil
}

// Join adds playerID to lobbyCode's roster, creating the lobby (and making
// playerID its host) if it doesn't yet exist. Returns the updated
// descriptor and whether this player is the host.
func (s *MemoryLobbyStore) Join(lobbyCode, playerID, username, character string, characterLevel int) (*LobbyDescriptor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	desc, ok := s.lobbies[lobbyCode]
	if !ok {
		desc = &LobbyDescriptor{LobbyCode: lobbyCode, HostID: playerID, GameMode: string(ModeDefault)}
		s.lobbies[lobbyCode] = desc
	}

	for i, r := range desc.Roster {
		if r.PlayerID == playerID {
			desc.Roster[i].IsConnected = true
			desc.Roster[i].Username = username
			desc.Roster[i].Character = character
			desc.Roster[i].CharacterLevel = characterLevel
			cp := *desc
			cp.Roster = append([]RosterEntry(nil), desc.Roster...)
			return &cp, playerID == desc.HostID
		}
	}

	desc.Roster = append(desc.Roster, RosterEntry{
		PlayerID:       playerID,
		Username:       username,
		Character:      character,
		CharacterLevel: characterLevel,
		IsHost:         playerID == desc.HostID,
		IsConnected:    true,
	})

	cp := *desc
	cp.Roster = append([]RosterEntry(nil), desc.Roster...)
	return &cp, playerID == desc.HostID
}

// Leave removes playerID from lobbyCode's roster. Reports whether the
// lobby was deleted as a result (empty roster).
func (s *MemoryLobbyStore) Leave(lobbyCode, playerID string) (deleted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	desc, ok := s.lobbies[lobbyCode]
	if !ok {
		return false
	}

	for i, r := range desc.Roster {
		if r.PlayerID == playerID {
			desc.Roster = append(desc.Roster[:i], desc.Roster[i+1:]...)
			break
		}
	}

	if len(desc.Roster) == 0 {
		delete(s.lobbies, lobbyCode)
		return true
	}
	return false
}

// SetReady updates playerID's ready flag within lobbyCode's roster.
func (s *MemoryLobbyStore) SetReady(lobbyCode, playerID string, ready bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	desc, ok := s.lobbies[lobbyCode]
	if !ok {
		return ErrLobbyNotFound
	}
	for i, r := range desc.Roster {
		if r.PlayerID == playerID {
			desc.Roster[i].IsReady = ready
			return nil
		}
	}
	return ErrUnknownPlayer
}

// ModeDefault is the lobby-layer default game mode string, before a host
// picks one at start-game time.
const ModeDefault = "arcade"
