package apperror

import "errors"

var (
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrOutOfBounds  = errors.New("cell is out of bounds")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrTableFull    = errors.New("table is full")
	ErrNotSeated    = errors.New("player is not seated at this table")
	ErrWrongPhase   = errors.New("command is not allowed in the current phase")
	ErrNoSuchTable  = errors.New("no such table")

	ErrAlreadySeated   = errors.New("player is already seated at a table")
	ErrPlayerRequired  = errors.New("player is required")
	ErrInvalidNickname = errors.New("nickname must be 2 to 20 characters")
	ErrInvalidAvatar   = errors.New("unknown avatar")
)

var rejections = []error{
	ErrCellOccupied,
	ErrOutOfBounds,
	ErrNotYourTurn,
	ErrTableFull,
	ErrNotSeated,
	ErrWrongPhase,
	ErrNoSuchTable,
	ErrAlreadySeated,
	ErrPlayerRequired,
	ErrInvalidNickname,
	ErrInvalidAvatar,
}

// IsRejection - reports whether err is a guard failure that left state untouched.
func IsRejection(err error) bool {
	for _, rejection := range rejections {
		if errors.Is(err, rejection) {
			return true
		}
	}

	return false
}
