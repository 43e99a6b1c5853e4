package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

var ErrUnknownCommand = errors.New("unknown command")

const persistTimeout = 5 * time.Second

type tableRepo interface {
	CreateOrUpdate(ctx context.Context, table *entity.Table) error
	GetAll(ctx context.Context, count int) (map[int]*entity.Table, error)
	DeleteAll(ctx context.Context, count int) error
}

// Notifier - receives every published table snapshot. Publish is called from a single goroutine, in order.
type Notifier interface {
	Publish(table entity.Table)
}

type RegistrySettings struct {
	TablesCount  int
	Rules        entity.Rules
	TickInterval time.Duration
	ResetOnStart bool
}

// Registry - owns tables 1..N. Commands are routed to the table's worker; accepted transitions are queued and
// published by a separate goroutine so a slow store or subscriber never stalls a table.
type Registry struct {
	logger   *slog.Logger
	clock    clock.Clock
	repo     tableRepo
	settings RegistrySettings

	workers []*tableWorker
	seats   *seatIndex

	queueMutex sync.Mutex
	queue      []entity.Table
	signal     chan struct{}

	notifiersMutex sync.RWMutex
	notifiers      []Notifier
}

func NewRegistry(logger *slog.Logger, clk clock.Clock, repo tableRepo, settings RegistrySettings) *Registry {
	registry := &Registry{
		logger:   logger.With("component", "registry"),
		clock:    clk,
		repo:     repo,
		settings: settings,

		seats:  newSeatIndex(),
		signal: make(chan struct{}, 1),
	}

	registry.workers = make([]*tableWorker, settings.TablesCount)
	for i := range registry.workers {
		registry.workers[i] = registry.newWorker(entity.NewTable(i + 1))
	}

	return registry
}

func (that *Registry) newWorker(table *entity.Table) *tableWorker {
	return newTableWorker(that.logger, that.clock, table, that.settings.Rules, that.settings.TickInterval,
		that.seats, that.onChange)
}

func (that *Registry) Subscribe(notifier Notifier) {
	that.notifiersMutex.Lock()
	defer that.notifiersMutex.Unlock()

	that.notifiers = append(that.notifiers, notifier)
}

// Start - restores the stored tables (or wipes them when ResetOnStart is set) and launches one worker per table.
// The registry stops when ctx is cancelled.
func (that *Registry) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	if err := that.restore(ctx); err != nil {
		return err
	}

	for _, worker := range that.workers {
		go worker.run(ctx)
	}

	go that.publishLoop(ctx)

	log.Info("tables started", "count", len(that.workers))

	return nil
}

func (that *Registry) restore(ctx context.Context) error {
	log := that.logger.With("method", "restore")

	if that.settings.ResetOnStart {
		if err := that.repo.DeleteAll(ctx, that.settings.TablesCount); err != nil {
			return fmt.Errorf("failed to reset tables: %w", err)
		}

		log.Info("stored tables discarded")

		return nil
	}

	stored, err := that.repo.GetAll(ctx, that.settings.TablesCount)
	if err != nil {
		return fmt.Errorf("failed to restore tables: %w", err)
	}

	for number, table := range stored {
		if number < 1 || number > len(that.workers) {
			continue
		}

		table.Number = number
		that.workers[number-1] = that.newWorker(table)

		that.seats.sync(entity.Table{Number: number}, *table)
	}

	log.Info("tables restored", "count", len(stored))

	return nil
}

// ListTables - snapshots of every table ordered by number.
func (that *Registry) ListTables(ctx context.Context) ([]entity.Table, error) {
	tables := make([]entity.Table, 0, len(that.workers))

	for _, worker := range that.workers {
		table, err := worker.submit(ctx, Command{Kind: commandSnapshot})
		if err != nil {
			return nil, fmt.Errorf("failed to list tables: %w", err)
		}

		tables = append(tables, table)
	}

	return tables, nil
}

func (that *Registry) Table(ctx context.Context, number int) (entity.Table, error) {
	return that.Dispatch(ctx, number, Command{Kind: commandSnapshot})
}

// FindTableOf - the table the player is seated at, if any.
func (that *Registry) FindTableOf(playerID string) (int, bool) {
	return that.seats.find(playerID)
}

// Dispatch - routes the command to its table and returns the table as it stands after the command. On a
// rejection the returned table is the unchanged state alongside the error.
func (that *Registry) Dispatch(ctx context.Context, number int, command Command) (entity.Table, error) {
	if number < 1 || number > len(that.workers) {
		return entity.Table{}, fmt.Errorf("%w: %d", apperror.ErrNoSuchTable, number)
	}

	if command.Kind == CommandJoin && command.Player.ID == "" {
		return entity.Table{}, apperror.ErrPlayerRequired
	}

	return that.workers[number-1].submit(ctx, command)
}

func (that *Registry) Join(ctx context.Context, number int, player entity.Player) (entity.Table, error) {
	return that.Dispatch(ctx, number, Command{Kind: CommandJoin, Player: player})
}

func (that *Registry) Leave(ctx context.Context, number int, playerID string) (entity.Table, error) {
	return that.Dispatch(ctx, number, Command{Kind: CommandLeave, Player: entity.Player{ID: playerID}})
}

func (that *Registry) ToggleReady(ctx context.Context, number int, playerID string) (entity.Table, error) {
	return that.Dispatch(ctx, number, Command{Kind: CommandReady, Player: entity.Player{ID: playerID}})
}

func (that *Registry) Move(ctx context.Context, number int, playerID string, row, col int) (entity.Table, error) {
	return that.Dispatch(ctx, number, Command{Kind: CommandMove, Player: entity.Player{ID: playerID}, Row: row, Col: col})
}

// Reset - an empty playerID issues the system reset.
func (that *Registry) Reset(ctx context.Context, number int, playerID string) (entity.Table, error) {
	return that.Dispatch(ctx, number, Command{Kind: CommandReset, Player: entity.Player{ID: playerID}})
}

// onChange - runs on the worker goroutine after every transition.
func (that *Registry) onChange(before, after entity.Table) {
	that.seats.sync(before, after)
	that.enqueue(after)
}

func (that *Registry) enqueue(table entity.Table) {
	that.queueMutex.Lock()
	that.queue = append(that.queue, table)
	that.queueMutex.Unlock()

	select {
	case that.signal <- struct{}{}:
	default:
	}
}

func (that *Registry) drain() []entity.Table {
	that.queueMutex.Lock()
	defer that.queueMutex.Unlock()

	tables := that.queue
	that.queue = nil

	return tables
}

func (that *Registry) publishLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-that.signal:
			for _, table := range that.drain() {
				that.persist(ctx, table)
				that.notify(table)
			}
		}
	}
}

func (that *Registry) persist(ctx context.Context, table entity.Table) {
	log := that.logger.With("method", "persist", "table", table.Number)

	ctx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	if err := that.repo.CreateOrUpdate(ctx, &table); err != nil {
		log.Error("failed to save table", "error", err)
	}
}

func (that *Registry) notify(table entity.Table) {
	that.notifiersMutex.RLock()
	defer that.notifiersMutex.RUnlock()

	for _, notifier := range that.notifiers {
		notifier.Publish(table)
	}
}
