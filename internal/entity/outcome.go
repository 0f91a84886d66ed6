package entity

// WinLines - the 8 winning lines: 3 rows, 3 columns, 2 diagonals.
var WinLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// HasWon reports whether the player occupies a full winning line.
func (that *Board) HasWon(player Player) bool {
	for _, line := range WinLines {
		a, b, c := line[0], line[1], line[2]
		if that[a.Row][a.Col] == player && that[b.Row][b.Col] == player && that[c.Row][c.Col] == player {
			return true
		}
	}

	return false
}

// IsTerminal reports whether either side has won. A full board with no
// winner is deliberately not terminal here: callers detect exhaustion by
// checking EmptyCells, so Evaluate keeps returning 0 for a draw.
func (that *Board) IsTerminal() bool {
	return that.HasWon(Human) || that.HasWon(Computer)
}

// Evaluate scores the board: +1 if the computer has won, -1 if the human
// has won, 0 otherwise (draws and unfinished positions included).
func (that *Board) Evaluate() int {
	switch {
	case that.HasWon(Computer):
		return +1
	case that.HasWon(Human):
		return -1
	default:
		return 0
	}
}
