package usecase

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// seatIndex - player id -> table number across all tables. Only table workers write to it, so an entry always
// matches a seat that was applied or a join that is being applied right now.
type seatIndex struct {
	mutex sync.Mutex
	seats map[string]int
}

func newSeatIndex() *seatIndex {
	return &seatIndex{seats: make(map[string]int)}
}

func (that *seatIndex) find(playerID string) (int, bool) {
	that.mutex.Lock()
	defer that.mutex.Unlock()

	number, ok := that.seats[playerID]

	return number, ok
}

// claim - reserves number for the player while its join is applied. It reports whether a new claim was made.
func (that *seatIndex) claim(playerID string, number int) (bool, error) {
	that.mutex.Lock()
	defer that.mutex.Unlock()

	current, ok := that.seats[playerID]
	if ok && current != number {
		return false, fmt.Errorf("%w: table %d", apperror.ErrAlreadySeated, current)
	}

	if ok {
		return false, nil
	}

	that.seats[playerID] = number

	return true, nil
}

func (that *seatIndex) release(playerID string, number int) {
	that.mutex.Lock()
	defer that.mutex.Unlock()

	if that.seats[playerID] == number {
		delete(that.seats, playerID)
	}
}

// sync - reconciles the index with one table transition.
func (that *seatIndex) sync(before, after entity.Table) {
	that.mutex.Lock()
	defer that.mutex.Unlock()

	for _, playerID := range before.PlayerIDs() {
		if after.SeatOf(playerID) == entity.NoSeat && that.seats[playerID] == after.Number {
			delete(that.seats, playerID)
		}
	}

	for _, playerID := range after.PlayerIDs() {
		that.seats[playerID] = after.Number
	}
}
