package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

const (
	NoSeat  = 0
	SeatOne = 1
	SeatTwo = 2
)

const (
	ReasonFiveInRow   = "five_in_row"
	ReasonMoveTimeout = "move_timeout"
	ReasonDraw        = "draw"
)

// Rules - timing limits applied by every table.
type Rules struct {
	MoveTimeout  time.Duration
	ReadyTimeout time.Duration
}

type Seat struct {
	Player *Player `json:"player,omitempty"`
	Ready  bool    `json:"ready"`
}

func (that Seat) IsOccupied() bool {
	return that.Player != nil
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Table - state of one numbered table. Every mutating method either fails with a Rejection and leaves
// the table untouched, or applies the whole transition.
type Table struct {
	Number          int        `json:"number"`
	Seats           [2]Seat    `json:"seats"`
	Phase           Phase      `json:"phase"`
	Board           Board      `json:"board"`
	Turn            int        `json:"turn,omitempty"`
	Winner          int        `json:"winner,omitempty"`
	FinishReason    string     `json:"finish_reason,omitempty"`
	LastMove        *Position  `json:"last_move,omitempty"`
	LastMoveAt      *time.Time `json:"last_move_at,omitempty"`
	MoveDeadlineAt  *time.Time `json:"move_deadline_at,omitempty"`
	ReadyDeadlineAt *time.Time `json:"ready_deadline_at,omitempty"`
}

func NewTable(number int) *Table {
	return &Table{
		Number: number,
		Phase:  PhaseWaiting,
	}
}

func (that *Table) IsWaiting() bool {
	return that.Phase == PhaseWaiting
}

func (that *Table) IsPlaying() bool {
	return that.Phase == PhasePlaying
}

func (that *Table) IsFinished() bool {
	return that.Phase == PhaseFinished
}

// Seat - returns seat 1 or 2, nil for anything else.
func (that *Table) Seat(number int) *Seat {
	if number != SeatOne && number != SeatTwo {
		return nil
	}

	return &that.Seats[number-1]
}

// SeatOf - returns the seat number occupied by playerID or NoSeat.
func (that *Table) SeatOf(playerID string) int {
	if playerID == "" {
		return NoSeat
	}

	for i, seat := range that.Seats {
		if seat.IsOccupied() && seat.Player.ID == playerID {
			return i + 1
		}
	}

	return NoSeat
}

// IsMyTurn - the comparison every client makes against a published snapshot.
func (that *Table) IsMyTurn(playerID string) bool {
	return that.IsPlaying() && that.Turn != NoSeat && that.SeatOf(playerID) == that.Turn
}

func (that *Table) PlayerIDs() []string {
	ids := make([]string, 0, len(that.Seats))
	for _, seat := range that.Seats {
		if seat.IsOccupied() {
			ids = append(ids, seat.Player.ID)
		}
	}

	return ids
}

func (that *Table) IsFull() bool {
	return that.Seats[0].IsOccupied() && that.Seats[1].IsOccupied()
}

// Join - seats the player in the first empty seat (seat 1 before seat 2) and returns its number.
func (that *Table) Join(player Player, now time.Time, rules Rules) (int, error) {
	if player.ID == "" {
		return NoSeat, apperror.ErrPlayerRequired
	}

	if !that.IsWaiting() {
		return NoSeat, fmt.Errorf("%w: join while %s", apperror.ErrWrongPhase, that.Phase)
	}

	if that.SeatOf(player.ID) != NoSeat {
		return NoSeat, fmt.Errorf("%w: table %d", apperror.ErrAlreadySeated, that.Number)
	}

	for i := range that.Seats {
		if that.Seats[i].IsOccupied() {
			continue
		}

		that.Seats[i] = Seat{Player: &player}
		that.syncReadiness(now, rules)

		return i + 1, nil
	}

	return NoSeat, fmt.Errorf("%w: table %d", apperror.ErrTableFull, that.Number)
}

// Leave - vacates the player's seat. Leaving a started or finished round resets the game for both seats.
func (that *Table) Leave(playerID string, now time.Time, rules Rules) error {
	seat := that.SeatOf(playerID)
	if seat == NoSeat {
		return fmt.Errorf("%w: table %d", apperror.ErrNotSeated, that.Number)
	}

	inRound := !that.IsWaiting()

	that.Seats[seat-1] = Seat{}

	if inRound {
		that.resetGame()
	}

	that.syncReadiness(now, rules)

	return nil
}

func (that *Table) ToggleReady(playerID string, now time.Time, rules Rules) error {
	seat := that.SeatOf(playerID)
	if seat == NoSeat {
		return fmt.Errorf("%w: table %d", apperror.ErrNotSeated, that.Number)
	}

	if !that.IsWaiting() {
		return fmt.Errorf("%w: ready while %s", apperror.ErrWrongPhase, that.Phase)
	}

	that.Seats[seat-1].Ready = !that.Seats[seat-1].Ready
	that.syncReadiness(now, rules)

	return nil
}

// Move - places the mover's piece, then either finishes the game or passes the turn.
func (that *Table) Move(playerID string, row, col int, now time.Time, rules Rules) error {
	if !that.IsPlaying() {
		return fmt.Errorf("%w: move while %s", apperror.ErrWrongPhase, that.Phase)
	}

	seat := that.SeatOf(playerID)
	if seat == NoSeat {
		return fmt.Errorf("%w: table %d", apperror.ErrNotSeated, that.Number)
	}

	if seat != that.Turn {
		return apperror.ErrNotYourTurn
	}

	piece := Piece(seat)

	board, err := ApplyMove(that.Board, row, col, piece)
	if err != nil {
		return err
	}

	that.Board = board
	that.LastMove = &Position{Row: row, Col: col}
	that.touch(now, rules)

	switch {
	case HasWinner(that.Board, row, col, piece):
		that.finish(seat, ReasonFiveInRow)
	case that.Board.IsFull():
		that.finish(NoSeat, ReasonDraw)
	default:
		that.Turn = opponent(seat)
	}

	return nil
}

// Reset - FINISHED -> WAITING. Seats are kept for a rematch.
func (that *Table) Reset() error {
	if !that.IsFinished() {
		return fmt.Errorf("%w: reset while %s", apperror.ErrWrongPhase, that.Phase)
	}

	that.resetGame()

	return nil
}

// ResetBy - Reset acknowledged by a seated player.
func (that *Table) ResetBy(playerID string) error {
	if that.SeatOf(playerID) == NoSeat {
		return fmt.Errorf("%w: table %d", apperror.ErrNotSeated, that.Number)
	}

	return that.Reset()
}

// ExpireTimers - fires whichever timeout is due at now. It reports false, and changes nothing,
// when no timeout condition holds.
func (that *Table) ExpireTimers(now time.Time, rules Rules) bool {
	switch that.Phase {
	case PhaseWaiting:
		return that.expireReady(now)
	case PhasePlaying:
		return that.expireMove(now, rules)
	case PhaseFinished:
		return false
	default:
		return false
	}
}

// Clone - deep copy safe to hand to other goroutines.
func (that *Table) Clone() Table {
	clone := *that

	for i, seat := range that.Seats {
		clone.Seats[i].Player = clonePtr(seat.Player)
	}

	clone.LastMove = clonePtr(that.LastMove)
	clone.LastMoveAt = clonePtr(that.LastMoveAt)
	clone.MoveDeadlineAt = clonePtr(that.MoveDeadlineAt)
	clone.ReadyDeadlineAt = clonePtr(that.ReadyDeadlineAt)

	return clone
}

func (that *Table) expireReady(now time.Time) bool {
	if that.ReadyDeadlineAt == nil || now.Before(*that.ReadyDeadlineAt) {
		return false
	}

	one, two := that.Seats[0], that.Seats[1]
	if !that.IsFull() || one.Ready == two.Ready {
		return false
	}

	if one.Ready {
		that.Seats[1] = Seat{}
	} else {
		that.Seats[0] = Seat{}
	}

	that.ReadyDeadlineAt = nil

	return true
}

func (that *Table) expireMove(now time.Time, rules Rules) bool {
	if that.LastMoveAt == nil || now.Sub(*that.LastMoveAt) < rules.MoveTimeout {
		return false
	}

	that.finish(opponent(that.Turn), ReasonMoveTimeout)

	return true
}

// syncReadiness - keeps the ready deadline in step with the seats and starts the game once both are ready.
func (that *Table) syncReadiness(now time.Time, rules Rules) {
	if !that.IsWaiting() {
		return
	}

	one, two := that.Seats[0], that.Seats[1]

	switch {
	case that.IsFull() && one.Ready && two.Ready:
		that.start(now, rules)
	case that.IsFull() && one.Ready != two.Ready:
		if that.ReadyDeadlineAt == nil {
			deadline := now.Add(rules.ReadyTimeout)
			that.ReadyDeadlineAt = &deadline
		}
	default:
		that.ReadyDeadlineAt = nil
	}
}

func (that *Table) start(now time.Time, rules Rules) {
	that.Board.Clear()
	that.Phase = PhasePlaying
	that.Turn = SeatOne
	that.Winner = NoSeat
	that.FinishReason = ""
	that.LastMove = nil
	that.ReadyDeadlineAt = nil
	that.touch(now, rules)
}

func (that *Table) finish(winner int, reason string) {
	that.Phase = PhaseFinished
	that.Winner = winner
	that.FinishReason = reason
	that.Turn = NoSeat
	that.MoveDeadlineAt = nil
}

func (that *Table) resetGame() {
	that.Board.Clear()
	that.Phase = PhaseWaiting
	that.Turn = NoSeat
	that.Winner = NoSeat
	that.FinishReason = ""
	that.LastMove = nil
	that.LastMoveAt = nil
	that.MoveDeadlineAt = nil
	that.ReadyDeadlineAt = nil

	for i := range that.Seats {
		that.Seats[i].Ready = false
	}
}

func (that *Table) touch(now time.Time, rules Rules) {
	lastMoveAt := now
	deadline := now.Add(rules.MoveTimeout)

	that.LastMoveAt = &lastMoveAt
	that.MoveDeadlineAt = &deadline
}

func opponent(seat int) int {
	if seat == SeatOne {
		return SeatTwo
	}

	return SeatOne
}

func clonePtr[T any](value *T) *T {
	if value == nil {
		return nil
	}

	clone := *value

	return &clone
}
