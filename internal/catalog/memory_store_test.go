package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLobbyStore_JoinCreatesLobbyAndFirstJoinerIsHost(t *testing.T) {
	s := NewMemoryLobbyStore()

	desc, isHost := s.Join("ABCD", "p1", "alice", "knight", 3)
	assert.True(t, isHost)
	require.Len(t, desc.Roster, 1)
	assert.True(t, desc.Roster[0].IsHost)
	assert.Equal(t, ModeDefault, desc.GameMode)

	_, isHost2 := s.Join("ABCD", "p2", "bob", "mage", 1)
	assert.False(t, isHost2)
}

func TestMemoryLobbyStore_JoinTwiceUpdatesExistingEntry(t *testing.T) {
	s := NewMemoryLobbyStore()
	s.Join("ABCD", "p1", "alice", "knight", 3)

	desc, _ := s.Join("ABCD", "p1", "alice2", "mage", 5)
	require.Len(t, desc.Roster, 1)
	assert.Equal(t, "alice2", desc.Roster[0].Username)
	assert.Equal(t, "mage", desc.Roster[0].Character)
	assert.Equal(t, 5, desc.Roster[0].CharacterLevel)
}

func TestMemoryLobbyStore_Lookup(t *testing.T) {
	s := NewMemoryLobbyStore()

	_, err := s.Lookup("NOPE")
	assert.ErrorIs(t, err, ErrLobbyNotFound)

	s.Join("ABCD", "p1", "alice", "knight", 1)
	desc, err := s.Lookup("ABCD")
	require.NoError(t, err)
	require.Len(t, desc.Roster, 1)

	// Lookup must return a defensive copy.
	desc.Roster[0].Username = "mutated"
	desc2, _ := s.Lookup("ABCD")
	assert.Equal(t, "alice", desc2.Roster[0].Username)
}

func TestMemoryLobbyStore_LeaveRemovesPlayerAndDeletesEmptyLobby(t *testing.T) {
	s := NewMemoryLobbyStore()
	s.Join("ABCD", "p1", "alice", "knight", 1)
	s.Join("ABCD", "p2", "bob", "mage", 1)

	deleted := s.Leave("ABCD", "p1")
	assert.False(t, deleted)

	desc, _ := s.Lookup("ABCD")
	require.Len(t, desc.Roster, 1)
	assert.Equal(t, "p2", desc.Roster[0].PlayerID)

	deleted = s.Leave("ABCD", "p2")
	assert.True(t, deleted)

	_, err := s.Lookup("ABCD")
	assert.ErrorIs(t, err, ErrLobbyNotFound)
}

func TestMemoryLobbyStore_LeaveUnknownLobbyIsNoop(t *testing.T) {
	s := NewMemoryLobbyStore()
	assert.False(t, s.Leave("NOPE", "p1"))
}

func TestMemoryLobbyStore_SetReady(t *testing.T) {
	s := NewMemoryLobbyStore()
	s.Join("ABCD", "p1", "alice", "knight", 1)

	err := s.SetReady("ABCD", "p1", true)
	require.NoError(t, err)

	desc, _ := s.Lookup("ABCD")
	assert.True(t, desc.Roster[0].IsReady)

	assert.ErrorIs(t, s.SetReady("ABCD", "ghost", true), ErrUnknownPlayer)
	assert.ErrorIs(t, s.SetReady("NOPE", "p1", true), ErrLobbyNotFound)
}
