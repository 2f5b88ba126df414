package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/engine"
	"github.com/vovakirdan/tilemerge/internal/registry"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Outbound messages buffered per connection before it is dropped.
	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Inbound message types.
const (
	MsgMove  = "move"
	MsgReset = "reset"
)

// Outbound message types.
const (
	MsgSnapshot = "snapshot"
	MsgError    = "error"
)

// Inbound is a message from the player.
type Inbound struct {
	Type      string `json:"type"`
	Direction string `json:"direction,omitempty"`
}

// Outbound is a message to the player.
type Outbound struct {
	Type     string           `json:"type"`
	Variant  string           `json:"variant,omitempty"`
	Snapshot *engine.Snapshot `json:"snapshot,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// client is one websocket connection and the game it owns.
// Only readPump touches the game.
type client struct {
	conn    *websocket.Conn
	send    chan []byte
	game    *engine.Game
	variant registry.Variant
	player  string
	store   *storage.Store
	logger  *log.Logger
	saved   bool
}

// handleWS upgrades the connection and plays one game on it.
// Query: variant (default from config), seed (0 = clock), player.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	variantID := q.Get("variant")
	if variantID == "" {
		variantID = s.game.Variant
	}
	variant, err := registry.Lookup(variantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rc := config.Config{Game: s.game}.RuntimeConfig(variant.Size, 0, 0)
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, fmt.Sprintf("bad seed %q", v), http.StatusBadRequest)
			return
		}
		rc.Seed = seed
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		game:    engine.New(rc),
		variant: variant,
		player:  q.Get("player"),
		store:   s.store,
		logger:  s.logger,
	}
	s.logger.Info("websocket session started", "remote", r.RemoteAddr, "variant", variant.ID, "seed", c.game.Seed())

	c.pushSnapshot()
	go c.writePump()
	c.readPump()

	s.logger.Info("websocket session ended", "remote", r.RemoteAddr, "score", c.game.Score())
}

// readPump reads inputs and runs each one to completion before the next.
func (c *client) readPump() {
	defer func() {
		close(c.send)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("websocket read error", "error", err)
			}
			return
		}
		if !c.handle(data) {
			return
		}
	}
}

// handle applies one inbound message. Returns false if the connection
// should be dropped.
func (c *client) handle(data []byte) bool {
	var in Inbound
	if err := json.Unmarshal(data, &in); err != nil {
		return c.queue(Outbound{Type: MsgError, Error: "invalid message"})
	}

	switch in.Type {
	case MsgMove:
		dir, ok := core.ParseDirection(in.Direction)
		if !ok {
			return c.queue(Outbound{Type: MsgError, Error: fmt.Sprintf("unknown direction %q", in.Direction)})
		}
		res := c.game.Apply(dir)
		if res.GameOver {
			c.saveScore()
		}
	case MsgReset:
		c.game.Reset()
		c.saved = false
	default:
		return c.queue(Outbound{Type: MsgError, Error: fmt.Sprintf("unknown message type %q", in.Type)})
	}

	return c.pushSnapshot()
}

// pushSnapshot queues a snapshot if the game changed.
func (c *client) pushSnapshot() bool {
	snap, ok := c.game.TakeSnapshot()
	if !ok {
		return true
	}
	return c.queue(Outbound{Type: MsgSnapshot, Variant: c.variant.ID, Snapshot: &snap})
}

// queue hands a message to writePump. A full buffer means the peer is
// not reading; the connection is dropped.
func (c *client) queue(msg Outbound) bool {
	data, err := json.Marshal(msg)
	if err != nil {
		c.logger.Error("marshal websocket message", "error", err)
		return true
	}
	select {
	case c.send <- data:
		return true
	default:
		c.logger.Warn("websocket send buffer full, dropping connection")
		return false
	}
}

// saveScore records the finished run once.
func (c *client) saveScore() {
	if c.saved {
		return
	}
	c.saved = true
	if c.store == nil || c.game.Score() == 0 {
		return
	}
	snap := c.game.Snapshot()
	_, err := c.store.SaveScore(storage.ScoreEntry{
		Variant: c.variant.ID,
		Score:   snap.Score,
		MaxTile: snap.MaxTile,
		Moves:   snap.Moves,
		Seed:    snap.Seed,
		Player:  c.player,
	})
	if err != nil {
		c.logger.Warn("could not save score", "variant", c.variant.ID, "error", err)
	}
}

// writePump writes queued messages and keeps the connection alive.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
