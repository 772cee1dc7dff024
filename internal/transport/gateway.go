// Package transport implements the WebSocket-facing Gateway: one
// connection per player, translating inbound JSON frames into
// engine.SessionEngine calls and rendering outbound events.Event values
// back onto the wire. Grounded on the teacher's Client/Hub/GameManager
// pattern in celebrity.go, generalized from one game's message set to the
// nine inbound operations and full outbound event catalog.
package transport

import (
	"encoding/hex"
	"log"
	"net/http"
	"sync"
	"time"

	"crypto/rand"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"github.com/Seednode/quizengine/internal/catalog"
	"github.com/Seednode/quizengine/internal/engine"
	"github.com/Seednode/quizengine/internal/events"
	"github.com/Seednode/quizengine/internal/session"
)

const logDate = `2006-01-02T15:04:05.000-07:00`

const playerCookieName = "quizengine_id"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ClientMessage is the closed set of inbound frame shapes.
type ClientMessage struct {
	Type         string `json:"type"`
	LobbyCode    string `json:"lobbyCode,omitempty"`
	Username     string `json:"username,omitempty"`
	Character    string `json:"character,omitempty"`
	GameMode     string `json:"gameMode,omitempty"`
	Answer       string `json:"answer,omitempty"`
	WagerPercent *int   `json:"wagerPercent,omitempty"`
	IsReady      bool   `json:"isReady,omitempty"`
}

// Client is one live WebSocket connection, identified by a long-lived
// cookie-backed player ID.
type Client struct {
	conn      *websocket.Conn
	send      chan any
	playerID  string
	lobbyCode string
}

// Gateway owns the per-lobby broadcast groups and implements events.Sink,
// fanning every emitted event out to the clients currently connected to
// that lobby.
type Gateway struct {
	mu      sync.RWMutex
	lobbies map[string]map[*Client]bool

	registry   *engine.Registry
	lobbyStore *catalog.MemoryLobbyStore
	verbose    bool
}

// NewGateway builds an empty Gateway. lobbyStore resolves a lobby code to
// its roster/host/question-set configuration at start-game time, and
// backs the pre-session join-lobby/leave-lobby/player-ready operations.
func NewGateway(registry *engine.Registry, lobbyStore *catalog.MemoryLobbyStore, verbose bool) *Gateway {
	return &Gateway{
		lobbies:    make(map[string]map[*Client]bool),
		registry:   registry,
		lobbyStore: lobbyStore,
		verbose:    verbose,
	}
}

func (gw *Gateway) logf(format string, args ...any) {
	if !gw.verbose {
		return
	}
	log.Printf("%s | GATEWAY: "+format, append([]any{time.Now().Format(logDate)}, args...)...)
}

// Emit implements events.Sink: broadcast to every client in the lobby, or
// to a single targeted player when Event.Target is set.
func (gw *Gateway) Emit(ev events.Event) {
	frame := wireFrame{Type: string(ev.Type), Payload: ev.Payload}

	var dropped []*Client

	gw.mu.RLock()
	for c := range gw.lobbies[ev.LobbyCode] {
		if ev.Target != "" && c.playerID != ev.Target {
			continue
		}
		select {
		case c.send <- frame:
		default:
			dropped = append(dropped, c)
		}
	}
	gw.mu.RUnlock()

	for _, c := range dropped {
		gw.removeClient(c)
	}
}

type wireFrame struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

func (gw *Gateway) addClient(c *Client) {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	set, ok := gw.lobbies[c.lobbyCode]
	if !ok {
		set = make(map[*Client]bool)
		gw.lobbies[c.lobbyCode] = set
	}
	set[c] = true
}

func (gw *Gateway) removeClient(c *Client) {
	gw.mu.Lock()
	defer gw.mu.Unlock()
	gw.dropClientLocked(c)
}

func (gw *Gateway) dropClientLocked(c *Client) {
	set, ok := gw.lobbies[c.lobbyCode]
	if !ok {
		return
	}
	if _, ok := set[c]; ok {
		delete(set, c)
		close(c.send)
	}
	if len(set) == 0 {
		delete(gw.lobbies, c.lobbyCode)
	}
}

func getOrSetPlayerID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(playerCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		log.Println("rand.Read error:", err)
		return ""
	}
	id := hex.EncodeToString(buf)

	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// ServeWS is the WebSocket upgrade handler, mounted at a route carrying
// :lobbycode.
func (gw *Gateway) ServeWS() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		lobbyCode := ps.ByName("lobbycode")
		if lobbyCode == "" {
			http.Error(w, "missing lobby code", http.StatusBadRequest)
			return
		}

		playerID := getOrSetPlayerID(w, r)
		if playerID == "" {
			http.Error(w, "unable to assign player id", http.StatusInternalServerError)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			gw.logf("upgrade error: %v", err)
			return
		}

		client := &Client{
			conn:      conn,
			send:      make(chan any, 16),
			playerID:  playerID,
			lobbyCode: lobbyCode,
		}

		gw.addClient(client)

		client.send <- wireFrame{
			Type: string(events.Connected),
			Payload: events.SessionInfoPayload{
				LobbyCode:  lobbyCode,
				ServerTime: time.Now(),
			},
		}

		eng, existing := gw.registry.Get(lobbyCode)

		go client.writePump()
		gw.readPump(client, eng, existing)
	}
}

func (gw *Gateway) readPump(c *Client, eng *engine.SessionEngine, existing bool) {
	defer func() {
		gw.removeClient(c)
		if eng != nil {
			_ = eng.Disconnect(c.playerID)
		}
		_ = c.conn.Close()
	}()

	if existing && eng != nil {
		if err := eng.Reconnect(c.playerID); err != nil {
			gw.logf("reconnect error for %s: %v", c.playerID, err)
		}
	}

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		gw.handleMessage(c, &eng, msg)
	}
}

func (gw *Gateway) handleMessage(c *Client, eng **engine.SessionEngine, msg ClientMessage) {
	switch msg.Type {
	case "join-lobby":
		gw.handleJoinLobby(c, msg)

	case "player-ready":
		gw.handlePlayerReady(c, msg)

	case "start-game":
		gw.handleStartGame(c, eng, msg)

	case "submit-answer":
		if *eng == nil {
			gw.sendError(c, session.Internal, "no session active")
			return
		}
		if err := (*eng).SubmitAnswer(c.playerID, msg.Answer, msg.WagerPercent); err != nil {
			gw.sendTypedError(c, err)
		}

	case "submit-wager":
		if *eng == nil {
			gw.sendError(c, session.Internal, "no session active")
			return
		}
		pct := 0
		if msg.WagerPercent != nil {
			pct = *msg.WagerPercent
		}
		if err := (*eng).SubmitWager(c.playerID, pct); err != nil {
			gw.sendTypedError(c, err)
		}

	case "practice-continue":
		if *eng == nil {
			gw.sendError(c, session.Internal, "no session active")
			return
		}
		if err := (*eng).PracticeContinue(c.playerID); err != nil {
			gw.sendTypedError(c, err)
		}

	case "leave-lobby":
		gw.handleLeaveLobby(c, eng)

	default:
		// unknown frame types are ignored, matching the teacher's readPump
	}
}

func (gw *Gateway) handleJoinLobby(c *Client, msg ClientMessage) {
	if gw.lobbyStore == nil {
		gw.sendError(c, session.Internal, "lobby store unavailable")
		return
	}

	desc, _ := gw.lobbyStore.Join(c.lobbyCode, c.playerID, msg.Username, msg.Character, 0)

	select {
	case c.send <- wireFrame{Type: string(events.JoinSuccess), Payload: events.JoinSuccessPayload{PlayerID: c.playerID, Username: msg.Username}}:
	default:
	}

	gw.broadcastLobbyUpdated(c.lobbyCode, desc)
}

func (gw *Gateway) handlePlayerReady(c *Client, msg ClientMessage) {
	if gw.lobbyStore == nil {
		gw.sendError(c, session.Internal, "lobby store unavailable")
		return
	}

	if err := gw.lobbyStore.SetReady(c.lobbyCode, c.playerID, msg.IsReady); err != nil {
		gw.sendError(c, session.Internal, err.Error())
		return
	}

	desc, err := gw.lobbyStore.Lookup(c.lobbyCode)
	if err != nil {
		return
	}
	gw.broadcastLobbyUpdated(c.lobbyCode, desc)
}

func (gw *Gateway) handleLeaveLobby(c *Client, eng **engine.SessionEngine) {
	if *eng != nil {
		_ = (*eng).Disconnect(c.playerID)
	}

	if gw.lobbyStore == nil {
		return
	}

	deleted := gw.lobbyStore.Leave(c.lobbyCode, c.playerID)

	select {
	case c.send <- wireFrame{Type: string(events.LeaveSuccess), Payload: nil}:
	default:
	}

	if deleted {
		gw.Emit(events.Event{Type: events.LobbyDeleted, LobbyCode: c.lobbyCode})
		return
	}

	desc, err := gw.lobbyStore.Lookup(c.lobbyCode)
	if err != nil {
		return
	}
	gw.broadcastLobbyUpdated(c.lobbyCode, desc)
}

func (gw *Gateway) broadcastLobbyUpdated(lobbyCode string, desc *catalog.LobbyDescriptor) {
	roster := make([]events.RosterPlayer, 0, len(desc.Roster))
	for _, r := range desc.Roster {
		roster = append(roster, events.RosterPlayer{
			PlayerID:    r.PlayerID,
			Username:    r.Username,
			Character:   r.Character,
			IsHost:      r.IsHost,
			IsConnected: r.IsConnected,
			IsReady:     r.IsReady,
		})
	}
	gw.Emit(events.Event{Type: events.LobbyUpdated, LobbyCode: lobbyCode, Payload: events.LobbyUpdatedPayload{Roster: roster}})
}

func (gw *Gateway) handleStartGame(c *Client, eng **engine.SessionEngine, msg ClientMessage) {
	if gw.lobbyStore == nil {
		gw.sendError(c, session.Internal, "lobby store unavailable")
		return
	}

	desc, err := gw.lobbyStore.Lookup(c.lobbyCode)
	if err != nil {
		gw.sendError(c, session.Internal, err.Error())
		return
	}

	e, createErr := gw.registry.Create(c.lobbyCode)
	if createErr != nil {
		if existing, ok := gw.registry.Get(c.lobbyCode); ok {
			e = existing
		} else {
			gw.sendTypedError(c, createErr)
			return
		}
	}
	*eng = e

	gm := session.GameMode(msg.GameMode)
	if gm == "" {
		gm = session.ModeArcade
	}

	// The engine resolves questions itself via its injected
	// QuestionProvider/fallback; the gateway only forwards the mode and
	// host check.
	if err := e.StartSession(c.playerID, *desc, nil, gm); err != nil {
		gw.sendTypedError(c, err)
	}
}

func (gw *Gateway) sendTypedError(c *Client, err error) {
	if se, ok := err.(*session.Error); ok {
		gw.sendError(c, se.Code, se.Message)
		return
	}
	gw.sendError(c, session.Internal, err.Error())
}

func (gw *Gateway) sendError(c *Client, code session.Code, message string) {
	select {
	case c.send <- wireFrame{Type: string(events.Error), Payload: events.ErrorPayload{Code: string(code), Message: message}}:
	default:
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}
