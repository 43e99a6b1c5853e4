package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

var ErrRegistryStopped = errors.New("table registry is stopped")

type CommandKind string

const (
	CommandJoin  CommandKind = "join"
	CommandLeave CommandKind = "leave"
	CommandReady CommandKind = "ready"
	CommandMove  CommandKind = "move"
	CommandReset CommandKind = "reset"

	commandSnapshot CommandKind = "snapshot"
)

// Command - one request addressed to a table. Player is the authenticated issuer; a Reset without a player is
// issued by the system.
type Command struct {
	Kind   CommandKind
	Player entity.Player
	Row    int
	Col    int
}

type commandResult struct {
	table entity.Table
	err   error
}

type commandRequest struct {
	command Command
	reply   chan commandResult
}

// tableWorker - the only goroutine allowed to touch its table. Commands and timer ticks are handled one at a time
// from the same select loop.
type tableWorker struct {
	logger       *slog.Logger
	clock        clock.Clock
	rules        entity.Rules
	tickInterval time.Duration

	table    *entity.Table
	seats    *seatIndex
	requests chan commandRequest
	done     chan struct{}

	// onChange runs inside the worker after every applied transition and must not block.
	onChange func(before, after entity.Table)
}

func newTableWorker(
	logger *slog.Logger,
	clk clock.Clock,
	table *entity.Table,
	rules entity.Rules,
	tickInterval time.Duration,
	seats *seatIndex,
	onChange func(before, after entity.Table),
) *tableWorker {
	return &tableWorker{
		logger:       logger.With("table", table.Number),
		clock:        clk,
		rules:        rules,
		tickInterval: tickInterval,

		table:    table,
		seats:    seats,
		requests: make(chan commandRequest),
		done:     make(chan struct{}),

		onChange: onChange,
	}
}

func (that *tableWorker) run(ctx context.Context) {
	ticker := that.clock.Ticker(that.tickInterval)
	defer ticker.Stop()
	defer close(that.done)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			that.expireTimers()
		case req := <-that.requests:
			req.reply <- that.handle(req.command)
		}
	}
}

// submit - hands the command to the worker and waits for its reply.
func (that *tableWorker) submit(ctx context.Context, command Command) (entity.Table, error) {
	req := commandRequest{
		command: command,
		reply:   make(chan commandResult, 1),
	}

	select {
	case that.requests <- req:
	case <-that.done:
		return entity.Table{}, ErrRegistryStopped
	case <-ctx.Done():
		return entity.Table{}, fmt.Errorf("failed to submit %s: %w", command.Kind, ctx.Err())
	}

	select {
	case res := <-req.reply:
		return res.table, res.err
	case <-ctx.Done():
		return entity.Table{}, fmt.Errorf("failed to wait for %s: %w", command.Kind, ctx.Err())
	}
}

func (that *tableWorker) handle(command Command) commandResult {
	log := that.logger.With("method", "handle", "command", command.Kind, "playerID", command.Player.ID)

	// a command racing a due timeout always sees the timeout applied first
	that.expireTimers()

	if command.Kind == commandSnapshot {
		return commandResult{table: that.table.Clone()}
	}

	before := that.table.Clone()

	claimed, err := that.claimSeat(command)
	if err == nil {
		err = that.apply(command, that.clock.Now())
	}

	if err != nil {
		if claimed {
			that.seats.release(command.Player.ID, that.table.Number)
		}

		log.Debug("command rejected", "error", err)

		return commandResult{table: before, err: err}
	}

	after := that.table.Clone()
	that.onChange(before, after)

	return commandResult{table: after}
}

// claimSeat - a join first reserves the player in the seat index, so the same player cannot be seated at two
// tables. The claim is taken and settled on this goroutine only.
func (that *tableWorker) claimSeat(command Command) (bool, error) {
	if command.Kind != CommandJoin {
		return false, nil
	}

	return that.seats.claim(command.Player.ID, that.table.Number)
}

func (that *tableWorker) apply(command Command, now time.Time) error {
	switch command.Kind {
	case CommandJoin:
		_, err := that.table.Join(command.Player, now, that.rules)
		return err
	case CommandLeave:
		return that.table.Leave(command.Player.ID, now, that.rules)
	case CommandReady:
		return that.table.ToggleReady(command.Player.ID, now, that.rules)
	case CommandMove:
		return that.table.Move(command.Player.ID, command.Row, command.Col, now, that.rules)
	case CommandReset:
		if command.Player.ID == "" {
			return that.table.Reset()
		}

		return that.table.ResetBy(command.Player.ID)
	case commandSnapshot:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command.Kind)
	}
}

func (that *tableWorker) expireTimers() {
	before := that.table.Clone()

	if !that.table.ExpireTimers(that.clock.Now(), that.rules) {
		return
	}

	after := that.table.Clone()

	that.logger.Info("timer fired",
		"phase", after.Phase,
		"winner", after.Winner,
		"reason", after.FinishReason,
	)

	that.onChange(before, after)
}
