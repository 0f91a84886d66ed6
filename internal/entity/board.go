package entity

// BoardSize - the grid is fixed at 3x3; nothing in the rules generalizes.
const BoardSize = 3

// Player marks a cell owner and doubles as a score weight:
// Human counts as -1 and Computer as +1, so the minimax engine can flip
// sides by negation and compare scores with plain integer ordering.
type Player int8

const (
	Empty    Player = 0
	Human    Player = -1
	Computer Player = +1
)

// Opponent returns the other side. Empty negates to itself.
func (that Player) Opponent() Player {
	return -that
}

// Move is a target cell, rows and columns counted from the top-left corner.
type Move struct {
	Row int
	Col int
}

// Board is the 3x3 grid state. It only stores cells and answers queries;
// turn order, statuses and winners live on Game.
type Board [BoardSize][BoardSize]Player

// EmptyCells returns every free cell in row-major order. The order matters:
// it is the deterministic tie-break of the search.
func (that *Board) EmptyCells() []Move {
	cells := make([]Move, 0, BoardSize*BoardSize)

	for row := range that {
		for col, cell := range that[row] {
			if cell == Empty {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}

// IsValid reports whether (row, col) is on the board and still free.
func (that *Board) IsValid(row, col int) bool {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return false
	}

	return that[row][col] == Empty
}

// Apply puts the player's mark on (row, col) if the move is valid and
// reports whether it did. This is the only mutation entry point for real
// moves; the search engine reverts its own speculative placements.
func (that *Board) Apply(row, col int, player Player) bool {
	if !that.IsValid(row, col) {
		return false
	}

	that[row][col] = player

	return true
}
