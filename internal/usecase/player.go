package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

// PlayerUseCase - the player directory: stable ids with display data, kept across reconnects.
type PlayerUseCase struct {
	logger     *slog.Logger
	playerRepo playerRepo
}

func NewPlayerUseCase(logger *slog.Logger, playerRepo playerRepo) *PlayerUseCase {
	return &PlayerUseCase{
		logger:     logger,
		playerRepo: playerRepo,
	}
}

// Connect - returns the stored player for id, updating its display data when a nickname is given. An unknown or
// empty id registers a new player, which requires a valid nickname.
func (that *PlayerUseCase) Connect(ctx context.Context, id, nickname, avatar string) (*entity.Player, error) {
	log := that.logger.With("method", "Connect", "playerID", id)

	if id != "" {
		existing, err := that.playerRepo.GetByID(ctx, id)

		switch {
		case err == nil && nickname == "":
			return existing, nil
		case err == nil:
			if avatar == "" {
				avatar = existing.Avatar
			}
		case errors.Is(err, repository.ErrPlayerNotFound):
			log.Debug("unknown player id, registering")
		default:
			return nil, fmt.Errorf("failed to get player by id: %w", err)
		}
	} else {
		id = uuid.NewString()
	}

	player, err := entity.NewPlayer(id, nickname, avatar)
	if err != nil {
		return nil, err
	}

	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	log.Info("player connected", "playerID", player.ID, "nickname", player.Nickname)

	return player, nil
}

func (that *PlayerUseCase) GetPlayer(ctx context.Context, id string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}
