package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
	mockedUseCase "github.com/rocketscienceinc/gomoku-backend/mocks/usecase"
)

type testServer struct {
	url      string
	registry *usecase.Registry
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	tableRepo := mockedUseCase.NewMocktableRepo(t)
	tableRepo.EXPECT().GetAll(mock.Anything, mock.Anything).Return(map[int]*entity.Table{}, nil).Once()
	tableRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.Anything).Return(nil).Maybe()

	playerRepo := mockedUseCase.NewMockplayerRepo(t)
	playerRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.Anything).Return(nil).Maybe()
	playerRepo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(nil, repository.ErrPlayerNotFound).Maybe()

	registry := usecase.NewRegistry(logger, clock.NewMock(), tableRepo, usecase.RegistrySettings{
		TablesCount:  4,
		Rules:        entity.Rules{MoveTimeout: 10 * time.Second, ReadyTimeout: 30 * time.Second},
		TickInterval: 250 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := New(logger, registry, usecase.NewPlayerUseCase(logger, playerRepo))
	registry.Subscribe(server)
	require.NoError(t, registry.Start(ctx))

	httpServer := httptest.NewServer(server.Router(ctx))
	t.Cleanup(httpServer.Close)

	return &testServer{
		url:      "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/ws",
		registry: registry,
	}
}

func (that *testServer) dial(t *testing.T) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(that.url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func send(t *testing.T, conn *websocket.Conn, action string, payload any) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Message{Action: action, Payload: raw}))
}

// readUntil - reads messages until one with the given action arrives.
func readUntil(t *testing.T, conn *websocket.Conn, action string) ResponsePayload {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	for {
		var msg Message
		require.NoError(t, conn.ReadJSON(&msg))

		if msg.Action != action {
			continue
		}

		var payload ResponsePayload
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))

		return payload
	}
}

func connect(t *testing.T, conn *websocket.Conn, nickname string) *entity.Player {
	t.Helper()

	send(t, conn, actionConnect, RequestPayload{Player: &entity.Player{Nickname: nickname}})
	reply := readUntil(t, conn, actionConnect)
	require.Empty(t, reply.Error)
	require.NotNil(t, reply.Player)

	return reply.Player
}

func cell(v int) *int {
	return &v
}

func TestServer_Connect(t *testing.T) {
	t.Run("Registers the player and lists tables", func(t *testing.T) {
		// Given: a running server
		srv := newTestServer(t)
		conn := srv.dial(t)

		// When: the client connects and lists the tables
		player := connect(t, conn, "alice")
		send(t, conn, actionTablesList, nil)
		reply := readUntil(t, conn, actionTablesList)

		// Then: the player got an id and sees all four tables
		assert.NotEmpty(t, player.ID)
		assert.Equal(t, "alice", player.Nickname)
		require.Len(t, reply.Tables, 4)
		assert.Equal(t, 1, reply.Tables[0].Number)
	})

	t.Run("Reconnect restores the seat", func(t *testing.T) {
		// Given: alice seated at table 2
		srv := newTestServer(t)
		player := &entity.Player{ID: "p1", Nickname: "alice"}
		_, err := srv.registry.Join(context.Background(), 2, *player)
		require.NoError(t, err)

		// When: she connects from a new connection
		conn := srv.dial(t)
		send(t, conn, actionConnect, RequestPayload{Player: player})
		reply := readUntil(t, conn, actionConnect)

		// Then: the reply carries table 2
		require.Empty(t, reply.Error)
		require.NotNil(t, reply.Table)
		assert.Equal(t, 2, reply.Table.Number)
	})

	t.Run("Commands before connect are rejected", func(t *testing.T) {
		srv := newTestServer(t)
		conn := srv.dial(t)

		send(t, conn, actionJoin, RequestPayload{Table: 1})
		reply := readUntil(t, conn, actionJoin)

		assert.Equal(t, "player is required", reply.Error)
	})
}

func TestServer_TableCommands(t *testing.T) {
	t.Run("Accepted commands are broadcast to every connection", func(t *testing.T) {
		// Given: two connected clients
		srv := newTestServer(t)
		aliceConn, bobConn := srv.dial(t), srv.dial(t)
		connect(t, aliceConn, "alice")
		connect(t, bobConn, "bob")

		// When: alice joins table 3
		send(t, aliceConn, actionJoin, RequestPayload{Table: 3})

		// Then: alice gets the reply and both get the update
		reply := readUntil(t, aliceConn, actionJoin)
		require.Empty(t, reply.Error)
		assert.Equal(t, 3, reply.Table.Number)

		update := readUntil(t, bobConn, actionUpdate)
		assert.Equal(t, 3, update.Table.Number)
		assert.Equal(t, "alice", update.Table.Seats[0].Player.Nickname)
	})

	t.Run("Two players reach a playing table", func(t *testing.T) {
		// Given: alice and bob at table 1
		srv := newTestServer(t)
		aliceConn, bobConn := srv.dial(t), srv.dial(t)
		alice := connect(t, aliceConn, "alice")
		connect(t, bobConn, "bob")

		send(t, aliceConn, actionJoin, RequestPayload{Table: 1})
		readUntil(t, aliceConn, actionJoin)
		send(t, bobConn, actionJoin, RequestPayload{Table: 1})
		readUntil(t, bobConn, actionJoin)

		// When: both ready up and alice plays the center
		send(t, aliceConn, actionReady, RequestPayload{Table: 1})
		readUntil(t, aliceConn, actionReady)
		send(t, bobConn, actionReady, RequestPayload{Table: 1})
		ready := readUntil(t, bobConn, actionReady)
		require.Equal(t, entity.PhasePlaying, ready.Table.Phase)
		require.True(t, ready.Table.IsMyTurn(alice.ID))

		send(t, aliceConn, actionMove, RequestPayload{Table: 1, Row: cell(7), Col: cell(7)})
		moved := readUntil(t, aliceConn, actionMove)

		// Then: the stone is on the board and it is bob's turn
		require.Empty(t, moved.Error)
		assert.Equal(t, entity.PlayerOne, moved.Table.Board[7][7])
		assert.Equal(t, entity.SeatTwo, moved.Table.Turn)
	})

	t.Run("Rejections go only to the issuer", func(t *testing.T) {
		// Given: two connected clients, alice seated at table 1
		srv := newTestServer(t)
		aliceConn, bobConn := srv.dial(t), srv.dial(t)
		connect(t, aliceConn, "alice")
		connect(t, bobConn, "bob")
		send(t, aliceConn, actionJoin, RequestPayload{Table: 1})
		readUntil(t, aliceConn, actionJoin)
		readUntil(t, bobConn, actionUpdate)

		// When: bob moves on a table that is not playing
		send(t, bobConn, actionMove, RequestPayload{Table: 1, Row: cell(0), Col: cell(0)})

		// Then: bob gets the rejection
		reply := readUntil(t, bobConn, actionMove)
		assert.Contains(t, reply.Error, "current phase")

		// And: alice's next message is the answer to her own request, not bob's error
		send(t, aliceConn, actionTablesList, nil)
		require.NoError(t, aliceConn.SetReadDeadline(time.Now().Add(5*time.Second)))
		for {
			var msg Message
			require.NoError(t, aliceConn.ReadJSON(&msg))
			require.NotEqual(t, actionMove, msg.Action)
			if msg.Action == actionTablesList {
				break
			}
		}
	})

	t.Run("Unknown table and missing cell are rejected", func(t *testing.T) {
		srv := newTestServer(t)
		conn := srv.dial(t)
		connect(t, conn, "alice")

		send(t, conn, actionJoin, RequestPayload{Table: 99})
		assert.Contains(t, readUntil(t, conn, actionJoin).Error, "no such table")

		send(t, conn, actionMove, RequestPayload{Table: 1})
		assert.Contains(t, readUntil(t, conn, actionMove).Error, "row and col are required")
	})

	t.Run("Malformed payload is rejected, not masked", func(t *testing.T) {
		// Given: a connected player
		srv := newTestServer(t)
		conn := srv.dial(t)
		connect(t, conn, "alice")

		// When: a move arrives with a non-numeric row
		send(t, conn, actionMove, json.RawMessage(`{"table":1,"row":"x","col":7}`))

		// Then: the issuer is told the message is malformed
		reply := readUntil(t, conn, actionMove)
		assert.Contains(t, reply.Error, "malformed message")
		assert.NotEqual(t, internalErrorText, reply.Error)
	})

	t.Run("Unknown action is answered with an error", func(t *testing.T) {
		srv := newTestServer(t)
		conn := srv.dial(t)

		send(t, conn, "table:shuffle", nil)

		assert.Contains(t, readUntil(t, conn, "table:shuffle").Error, "unknown action")
	})
}
