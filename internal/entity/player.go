package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

const (
	MinNicknameLength = 2
	MaxNicknameLength = 20
)

var Avatars = []string{
	"👤", "👨", "👩", "🧑", "👦", "👧", "🧔", "👱",
	"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼",
}

type Player struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// NewPlayer - validates the display data and returns a player with a trimmed nickname.
func NewPlayer(id, nickname, avatar string) (*Player, error) {
	nickname = strings.TrimSpace(nickname)

	if n := utf8.RuneCountInString(nickname); n < MinNicknameLength || n > MaxNicknameLength {
		return nil, fmt.Errorf("%w: got %d characters", apperror.ErrInvalidNickname, n)
	}

	if avatar == "" {
		avatar = Avatars[0]
	}

	if !IsKnownAvatar(avatar) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidAvatar, avatar)
	}

	return &Player{
		ID:       id,
		Nickname: nickname,
		Avatar:   avatar,
	}, nil
}

func IsKnownAvatar(avatar string) bool {
	for _, known := range Avatars {
		if known == avatar {
			return true
		}
	}

	return false
}
