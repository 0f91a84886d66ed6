// Package minimax implements the exhaustive game-tree search the computer
// uses to pick its moves. The board is small enough that brute force finds
// the game-theoretic value of any position well within interactive latency,
// so there is no pruning and no depth heuristic beyond the cell count.
package minimax

import (
	"math"

	"zeroxgame/internal/entity"
)

// NoMove marks the coordinates of a leaf result, where only the score
// matters.
const NoMove = -1

// SearchResult is the best move found at a search node and the score the
// mover can force from there.
type SearchResult struct {
	Row   int
	Col   int
	Score int
}

// Move converts the result coordinates into a board move.
func (that SearchResult) Move() entity.Move {
	return entity.Move{Row: that.Row, Col: that.Col}
}

// Minimax returns the score `player` can force from the given position with
// `depth` plies left, and a move achieving it. The computer maximizes, the
// human minimizes; ties keep the first candidate in row-major order, so the
// search itself is fully deterministic.
//
// Candidate moves are played speculatively on the shared board and always
// reverted before the next candidate, so the board is unchanged when the
// call returns.
func Minimax(board *entity.Board, depth int, player entity.Player) SearchResult {
	cells := board.EmptyCells()

	// An exhausted board is a leaf even with depth to spare; otherwise the
	// infinity sentinels below would escape as scores.
	if depth == 0 || len(cells) == 0 || board.IsTerminal() {
		return SearchResult{Row: NoMove, Col: NoMove, Score: board.Evaluate()}
	}

	best := SearchResult{Row: NoMove, Col: NoMove, Score: math.MinInt}
	if player == entity.Human {
		best.Score = math.MaxInt
	}

	for _, cell := range cells {
		board[cell.Row][cell.Col] = player
		candidate := Minimax(board, depth-1, player.Opponent())
		board[cell.Row][cell.Col] = entity.Empty

		candidate.Row, candidate.Col = cell.Row, cell.Col

		if player == entity.Computer {
			if candidate.Score > best.Score {
				best = candidate
			}
		} else if candidate.Score < best.Score {
			best = candidate
		}
	}

	return best
}
