package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seednode/quizengine/internal/events"
	"github.com/Seednode/quizengine/internal/session"
)

func newTestClient(lobbyCode, playerID string) *Client {
	return &Client{send: make(chan any, 4), playerID: playerID, lobbyCode: lobbyCode}
}

func TestGateway_EmitBroadcastsToAllClientsInLobby(t *testing.T) {
	gw := NewGateway(nil, nil, false)
	a := newTestClient("ABCD", "p1")
	b := newTestClient("ABCD", "p2")
	other := newTestClient("WXYZ", "p3")
	gw.addClient(a)
	gw.addClient(b)
	gw.addClient(other)

	gw.Emit(events.Event{Type: events.GameStarted, LobbyCode: "ABCD"})

	requireFrameType(t, a, string(events.GameStarted))
	requireFrameType(t, b, string(events.GameStarted))
	assertNoFrame(t, other)
}

func TestGateway_EmitTargetedDeliversToOnePlayer(t *testing.T) {
	gw := NewGateway(nil, nil, false)
	a := newTestClient("ABCD", "p1")
	b := newTestClient("ABCD", "p2")
	gw.addClient(a)
	gw.addClient(b)

	gw.Emit(events.Event{Type: events.WaitForContinue, LobbyCode: "ABCD", Target: "p1"})

	requireFrameType(t, a, string(events.WaitForContinue))
	assertNoFrame(t, b)
}

func TestGateway_RemoveClientClosesSendAndCleansUpEmptyLobby(t *testing.T) {
	gw := NewGateway(nil, nil, false)
	a := newTestClient("ABCD", "p1")
	gw.addClient(a)

	gw.removeClient(a)

	_, open := <-a.send
	assert.False(t, open, "send channel must be closed on removal")

	gw.mu.RLock()
	_, exists := gw.lobbies["ABCD"]
	gw.mu.RUnlock()
	assert.False(t, exists, "empty lobby should be removed from the map")
}

func TestGateway_DropClientOnFullSendBuffer(t *testing.T) {
	gw := NewGateway(nil, nil, false)
	a := newTestClient("ABCD", "p1")
	gw.addClient(a)

	for i := 0; i < cap(a.send); i++ {
		a.send <- wireFrame{Type: "filler"}
	}

	gw.Emit(events.Event{Type: events.GameStarted, LobbyCode: "ABCD"})

	gw.mu.RLock()
	_, stillPresent := gw.lobbies["ABCD"][a]
	gw.mu.RUnlock()
	assert.False(t, stillPresent, "a client with a full send buffer should be dropped")
}

func TestGateway_SendTypedErrorUsesSessionErrorCode(t *testing.T) {
	gw := NewGateway(nil, nil, false)
	c := newTestClient("ABCD", "p1")

	gw.sendTypedError(c, session.NewError(session.NotHost, "nope"))

	frame := (<-c.send).(wireFrame)
	assert.Equal(t, string(events.Error), frame.Type)
	payload := frame.Payload.(events.ErrorPayload)
	assert.Equal(t, string(session.NotHost), payload.Code)
}

func TestGateway_HandleJoinLobbyWithoutStoreSendsInternalError(t *testing.T) {
	gw := NewGateway(nil, nil, false)
	c := newTestClient("ABCD", "p1")

	gw.handleJoinLobby(c, ClientMessage{Username: "alice"})

	frame := (<-c.send).(wireFrame)
	assert.Equal(t, string(events.Error), frame.Type)
}

func requireFrameType(t *testing.T, c *Client, want string) {
	t.Helper()
	select {
	case f := <-c.send:
		frame, ok := f.(wireFrame)
		require.True(t, ok)
		assert.Equal(t, want, frame.Type)
	default:
		t.Fatalf("expected a frame of type %s, got none", want)
	}
}

func assertNoFrame(t *testing.T, c *Client) {
	t.Helper()
	select {
	case f := <-c.send:
		t.Fatalf("expected no frame, got %+v", f)
	default:
	}
}
