package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type registry interface {
	ListTables(ctx context.Context) ([]entity.Table, error)
	FindTableOf(playerID string) (int, bool)
	Table(ctx context.Context, number int) (entity.Table, error)

	Join(ctx context.Context, number int, player entity.Player) (entity.Table, error)
	Leave(ctx context.Context, number int, playerID string) (entity.Table, error)
	ToggleReady(ctx context.Context, number int, playerID string) (entity.Table, error)
	Move(ctx context.Context, number int, playerID string, row, col int) (entity.Table, error)
	Reset(ctx context.Context, number int, playerID string) (entity.Table, error)
}

type playerDirectory interface {
	Connect(ctx context.Context, id, nickname, avatar string) (*entity.Player, error)
}

type handlerFunc func(ctx context.Context, client *client, msg *Message) error

type Server struct {
	logger   *slog.Logger
	registry registry
	players  playerDirectory
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc

	connectionsMutex sync.RWMutex
	connections      map[*client]struct{}
}

func New(logger *slog.Logger, registry registry, players playerDirectory) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		registry: registry,
		players:  players,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(_ *http.Request) bool { return true },
		},

		handlers:    make(map[string]handlerFunc),
		connections: make(map[*client]struct{}),
	}

	server.handlers[actionConnect] = server.handleConnect
	server.handlers[actionTablesList] = server.handleTablesList
	server.handlers[actionJoin] = server.handleJoin
	server.handlers[actionLeave] = server.handleLeave
	server.handlers[actionReady] = server.handleReady
	server.handlers[actionMove] = server.handleMove
	server.handlers[actionReset] = server.handleReset

	return server
}

// Router - the /ws endpoint. ctx bounds every command issued over the upgraded connections.
func (that *Server) Router(ctx context.Context) http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveWS(ctx, w, r)
	})

	return router
}

// Start - starts WebSocket server and shuts it down when ctx is cancelled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Router(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
		that.closeAll()
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Publish - pushes a table snapshot to every connection.
func (that *Server) Publish(table entity.Table) {
	log := that.logger.With("method", "Publish", "table", table.Number)

	data, err := encodeMessage(actionUpdate, ResponsePayload{Table: &table})
	if err != nil {
		log.Error("failed to encode table update", "error", err)
		return
	}

	that.connectionsMutex.RLock()
	defer that.connectionsMutex.RUnlock()

	for c := range that.connections {
		if !c.enqueue(data) {
			log.Warn("dropping slow connection")
			c.close()
		}
	}
}

func (that *Server) serveWS(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := newClient(conn)

	that.connectionsMutex.Lock()
	that.connections[c] = struct{}{}
	that.connectionsMutex.Unlock()

	log.Info("WebSocket connection established", "remote", r.RemoteAddr)

	go c.writePump()

	that.handleMessages(ctx, c)
}

// handleMessages - processes messages from the client until the connection drops. A dropped connection does not
// leave its table.
func (that *Server) handleMessages(ctx context.Context, c *client) {
	log := that.logger.With("method", "handleMessages")

	defer func() {
		that.connectionsMutex.Lock()
		delete(that.connections, c)
		that.connectionsMutex.Unlock()

		c.close()
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
				log.Error("error reading message", "error", err)
			}

			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Debug("failed to unmarshal message", "error", err)
			that.sendError(c, actionUnknown, errMalformedMessage)

			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Debug("unknown action", "action", message.Action)
			that.sendError(c, message.Action, fmt.Errorf("%w: %q", errUnknownAction, message.Action))

			continue
		}

		if err = handler(ctx, c, &message); err != nil {
			that.sendError(c, message.Action, err)
		}
	}
}

func (that *Server) closeAll() {
	that.connectionsMutex.RLock()
	defer that.connectionsMutex.RUnlock()

	for c := range that.connections {
		c.close()
	}
}

func (that *Server) send(c *client, action string, payload ResponsePayload) {
	log := that.logger.With("method", "send", "action", action)

	data, err := encodeMessage(action, payload)
	if err != nil {
		log.Error("failed to encode response", "error", err)
		return
	}

	if !c.enqueue(data) {
		log.Warn("failed to queue response")
	}
}
