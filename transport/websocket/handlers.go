package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

var (
	errMalformedMessage = errors.New("malformed message")
	errUnknownAction    = errors.New("unknown action")
	errMissingCell      = errors.New("row and col are required")
)

const internalErrorText = "internal error"

func (that *Server) handleConnect(ctx context.Context, c *client, msg *Message) error {
	log := that.logger.With("method", "handleConnect")

	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payload.Player == nil {
		return apperror.ErrPlayerRequired
	}

	player, err := that.players.Connect(ctx, payload.Player.ID, payload.Player.Nickname, payload.Player.Avatar)
	if err != nil {
		return fmt.Errorf("failed to connect player: %w", err)
	}

	c.setPlayer(player)

	response := ResponsePayload{Player: player}

	if number, ok := that.registry.FindTableOf(player.ID); ok {
		table, err := that.registry.Table(ctx, number)
		if err != nil {
			return fmt.Errorf("failed to get table %d: %w", number, err)
		}

		response.Table = &table
		log.Info("player restored to table", "playerID", player.ID, "table", number)
	}

	that.send(c, msg.Action, response)

	return nil
}

func (that *Server) handleTablesList(ctx context.Context, c *client, msg *Message) error {
	tables, err := that.registry.ListTables(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}

	that.send(c, msg.Action, ResponsePayload{Tables: tables})

	return nil
}

func (that *Server) handleJoin(ctx context.Context, c *client, msg *Message) error {
	return that.tableCommand(ctx, c, msg, func(payload RequestPayload, player *entity.Player) (entity.Table, error) {
		return that.registry.Join(ctx, payload.Table, *player)
	})
}

func (that *Server) handleLeave(ctx context.Context, c *client, msg *Message) error {
	return that.tableCommand(ctx, c, msg, func(payload RequestPayload, player *entity.Player) (entity.Table, error) {
		return that.registry.Leave(ctx, payload.Table, player.ID)
	})
}

func (that *Server) handleReady(ctx context.Context, c *client, msg *Message) error {
	return that.tableCommand(ctx, c, msg, func(payload RequestPayload, player *entity.Player) (entity.Table, error) {
		return that.registry.ToggleReady(ctx, payload.Table, player.ID)
	})
}

func (that *Server) handleMove(ctx context.Context, c *client, msg *Message) error {
	return that.tableCommand(ctx, c, msg, func(payload RequestPayload, player *entity.Player) (entity.Table, error) {
		if payload.Row == nil || payload.Col == nil {
			return entity.Table{}, fmt.Errorf("%w: %w", apperror.ErrOutOfBounds, errMissingCell)
		}

		return that.registry.Move(ctx, payload.Table, player.ID, *payload.Row, *payload.Col)
	})
}

func (that *Server) handleReset(ctx context.Context, c *client, msg *Message) error {
	return that.tableCommand(ctx, c, msg, func(payload RequestPayload, player *entity.Player) (entity.Table, error) {
		return that.registry.Reset(ctx, payload.Table, player.ID)
	})
}

// tableCommand - shared path of every table action: the connection must be identified, the reply carries the
// resulting table. The broadcast comes from the registry.
func (that *Server) tableCommand(
	ctx context.Context,
	c *client,
	msg *Message,
	run func(payload RequestPayload, player *entity.Player) (entity.Table, error),
) error {
	log := that.logger.With("method", "tableCommand", "action", msg.Action)

	player := c.Player()
	if player == nil {
		return apperror.ErrPlayerRequired
	}

	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	log = log.With("playerID", player.ID, "table", payload.Table)

	table, err := run(payload, player)
	if err != nil {
		return err
	}

	log.Debug("command accepted")

	that.send(c, msg.Action, ResponsePayload{Player: player, Table: &table})

	return nil
}

// sendError - replies to the issuing connection only. Infrastructure failures are logged and masked.
func (that *Server) sendError(c *client, action string, err error) {
	log := that.logger.With("method", "sendError", "action", action)

	text := err.Error()

	switch {
	case apperror.IsRejection(err), errors.Is(err, errMalformedMessage), errors.Is(err, errUnknownAction):
		log.Debug("request rejected", "error", err)
	default:
		log.Error("request failed", "error", err)
		text = internalErrorText
	}

	that.send(c, action, ResponsePayload{Error: text})
}
