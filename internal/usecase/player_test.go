package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	mockedUseCase "github.com/rocketscienceinc/gomoku-backend/mocks/usecase"
)

func TestPlayerUseCase_Connect(t *testing.T) {
	ctx := context.Background()

	t.Run("Registers a new player when id is empty", func(t *testing.T) {
		// Given: a mock player repository
		mockPlayerRepo := mockedUseCase.NewMockplayerRepo(t)
		useCaseInstance := NewPlayerUseCase(discardLogger(), mockPlayerRepo)

		mockPlayerRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Player")).
			Return(nil).
			Once()

		// When: Connect is called without an id
		player, err := useCaseInstance.Connect(ctx, "", " alice ", "🦊")

		// Then: a new player with a generated id is returned
		require.NoError(t, err)
		assert.NotEmpty(t, player.ID)
		assert.Equal(t, "alice", player.Nickname)
		assert.Equal(t, "🦊", player.Avatar)
	})

	t.Run("Returns the stored player on reconnect", func(t *testing.T) {
		// Given: a stored player
		mockPlayerRepo := mockedUseCase.NewMockplayerRepo(t)
		useCaseInstance := NewPlayerUseCase(discardLogger(), mockPlayerRepo)

		existingPlayer := &entity.Player{ID: "player123", Nickname: "bob", Avatar: "🐼"}
		mockPlayerRepo.EXPECT().
			GetByID(mock.Anything, "player123").
			Return(existingPlayer, nil).
			Once()

		// When: Connect is called with only the id
		player, err := useCaseInstance.Connect(ctx, "player123", "", "")

		// Then: the stored player is returned unchanged
		require.NoError(t, err)
		assert.Equal(t, existingPlayer, player)
	})

	t.Run("Updates the nickname and keeps the avatar", func(t *testing.T) {
		// Given: a stored player
		mockPlayerRepo := mockedUseCase.NewMockplayerRepo(t)
		useCaseInstance := NewPlayerUseCase(discardLogger(), mockPlayerRepo)

		mockPlayerRepo.EXPECT().
			GetByID(mock.Anything, "player123").
			Return(&entity.Player{ID: "player123", Nickname: "bob", Avatar: "🐼"}, nil).
			Once()

		mockPlayerRepo.EXPECT().
			CreateOrUpdate(mock.Anything, &entity.Player{ID: "player123", Nickname: "robert", Avatar: "🐼"}).
			Return(nil).
			Once()

		// When: Connect is called with a new nickname
		player, err := useCaseInstance.Connect(ctx, "player123", "robert", "")

		// Then: the player keeps id and avatar
		require.NoError(t, err)
		assert.Equal(t, "robert", player.Nickname)
		assert.Equal(t, "🐼", player.Avatar)
	})

	t.Run("Registers an unknown id", func(t *testing.T) {
		// Given: an id the repository does not know
		mockPlayerRepo := mockedUseCase.NewMockplayerRepo(t)
		useCaseInstance := NewPlayerUseCase(discardLogger(), mockPlayerRepo)

		mockPlayerRepo.EXPECT().
			GetByID(mock.Anything, "lost").
			Return((*entity.Player)(nil), repository.ErrPlayerNotFound).
			Once()

		mockPlayerRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Player")).
			Return(nil).
			Once()

		// When: Connect is called with the id and a nickname
		player, err := useCaseInstance.Connect(ctx, "lost", "carol", "")

		// Then: the id is kept
		require.NoError(t, err)
		assert.Equal(t, "lost", player.ID)
	})

	t.Run("Rejects an invalid nickname without saving", func(t *testing.T) {
		mockPlayerRepo := mockedUseCase.NewMockplayerRepo(t)
		useCaseInstance := NewPlayerUseCase(discardLogger(), mockPlayerRepo)

		player, err := useCaseInstance.Connect(ctx, "", "x", "")

		require.ErrorIs(t, err, apperror.ErrInvalidNickname)
		assert.Nil(t, player)
	})

	t.Run("Returns error if playerRepo.GetByID fails", func(t *testing.T) {
		// Given: a repository that is down
		mockPlayerRepo := mockedUseCase.NewMockplayerRepo(t)
		useCaseInstance := NewPlayerUseCase(discardLogger(), mockPlayerRepo)

		mockPlayerRepo.EXPECT().
			GetByID(mock.Anything, "playerErr").
			Return((*entity.Player)(nil), errRedisDown).
			Once()

		// When: Connect is called
		player, err := useCaseInstance.Connect(ctx, "playerErr", "", "")

		// Then: the error is returned and no player
		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, player)
	})

	t.Run("Returns error if playerRepo.CreateOrUpdate fails", func(t *testing.T) {
		mockPlayerRepo := mockedUseCase.NewMockplayerRepo(t)
		useCaseInstance := NewPlayerUseCase(discardLogger(), mockPlayerRepo)

		mockPlayerRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Player")).
			Return(errRedisDown).
			Once()

		player, err := useCaseInstance.Connect(ctx, "", "alice", "")

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, player)
	})
}
