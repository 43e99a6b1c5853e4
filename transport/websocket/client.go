package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 64
)

// client - one connection. Only writePump writes to conn.
type client struct {
	conn *websocket.Conn
	send chan []byte

	playerMutex sync.RWMutex
	player      *entity.Player

	closeOnce sync.Once
	closed    chan struct{}
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		closed: make(chan struct{}),
	}
}

func (that *client) Player() *entity.Player {
	that.playerMutex.RLock()
	defer that.playerMutex.RUnlock()

	return that.player
}

func (that *client) setPlayer(player *entity.Player) {
	that.playerMutex.Lock()
	defer that.playerMutex.Unlock()

	that.player = player
}

// enqueue - never blocks. It reports false when the client is closed or too slow to keep up.
func (that *client) enqueue(data []byte) bool {
	select {
	case <-that.closed:
		return false
	default:
	}

	select {
	case that.send <- data:
		return true
	default:
		return false
	}
}

func (that *client) close() {
	that.closeOnce.Do(func() {
		close(that.closed)
		_ = that.conn.Close()
	})
}

func (that *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		that.close()
	}()

	for {
		select {
		case <-that.closed:
			return
		case data := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
