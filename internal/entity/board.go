package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

const (
	BoardSize = 15
	WinLength = 5
)

type Piece uint8

const (
	EmptyCell Piece = 0
	PlayerOne Piece = 1
	PlayerTwo Piece = 2
)

// Board - 15x15 grid indexed [row][col]. It is a value type: copying it copies every cell.
type Board [BoardSize][BoardSize]Piece

// axes are walked in both directions from the played cell.
var axes = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// ApplyMove - returns a copy of board with piece placed at (row, col). The input board is never modified.
func ApplyMove(board Board, row, col int, piece Piece) (Board, error) {
	if !InBounds(row, col) {
		return board, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	if board[row][col] != EmptyCell {
		return board, fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	next := board
	next[row][col] = piece

	return next, nil
}

// HasWinner - checks whether the piece at (row, col) completes at least WinLength in a row on any axis.
func HasWinner(board Board, row, col int, piece Piece) bool {
	if piece == EmptyCell || !InBounds(row, col) || board[row][col] != piece {
		return false
	}

	for _, axis := range axes {
		count := 1 + board.countFrom(row, col, axis[0], axis[1], piece) + board.countFrom(row, col, -axis[0], -axis[1], piece)
		if count >= WinLength {
			return true
		}
	}

	return false
}

func (that *Board) countFrom(row, col, dRow, dCol int, piece Piece) int {
	count := 0

	for r, c := row+dRow, col+dCol; InBounds(r, c) && that[r][c] == piece; r, c = r+dRow, c+dCol {
		count++
	}

	return count
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

func (that *Board) Clear() {
	*that = Board{}
}
