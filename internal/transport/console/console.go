// Package console is the terminal front end: board rendering, prompts and
// input parsing. It owns no game rules; invalid placements are rejected by
// the game itself and reported back through ShowBadMove.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"zeroxgame/internal/entity"
)

const gridLine = "---------------"

type Console struct {
	in  *bufio.Scanner
	out *termenv.Output
}

func New(in io.Reader, out io.Writer, noColor bool) *Console {
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Console{
		in:  bufio.NewScanner(in),
		out: termenv.NewOutput(out, opts...),
	}
}

// ChooseMark asks the human to pick X or O, re-prompting until the answer
// is one of the two.
func (that *Console) ChooseMark() (string, error) {
	for {
		fmt.Fprint(that.out, "\nChoose X or O\nChosen: ")

		answer, err := that.readLine()
		if err != nil {
			return "", err
		}

		switch strings.ToUpper(answer) {
		case entity.MarkX:
			return entity.MarkX, nil
		case entity.MarkO:
			return entity.MarkO, nil
		default:
			fmt.Fprintln(that.out, "Bad choice")
		}
	}
}

// ChooseFirst asks whether the human makes the opening move.
func (that *Console) ChooseFirst() (entity.Player, error) {
	for {
		fmt.Fprint(that.out, "First to start?[y/n]: ")

		answer, err := that.readLine()
		if err != nil {
			return entity.Empty, err
		}

		switch strings.ToUpper(answer) {
		case "Y":
			return entity.Human, nil
		case "N":
			return entity.Computer, nil
		default:
			fmt.Fprintln(that.out, "Bad choice")
		}
	}
}

// ShowTurn clears the screen and renders the board under a header naming
// whose turn it is.
func (that *Console) ShowTurn(game *entity.Game, player entity.Player) {
	that.out.ClearScreen()

	if player == entity.Human {
		fmt.Fprintf(that.out, "Human turn [%s]\n", game.HumanMark)
	} else {
		fmt.Fprintf(that.out, "Computer turn [%s]\n", game.BotMark)
	}

	that.renderBoard(game)
}

// PromptMove reads a numpad choice (1..9) and maps it onto a cell in
// row-major order. Non-numeric or out-of-range input re-prompts; occupancy
// is for the game to decide.
func (that *Console) PromptMove() (entity.Move, error) {
	for {
		fmt.Fprint(that.out, "Use numpad (1..9): ")

		answer, err := that.readLine()
		if err != nil {
			return entity.Move{}, err
		}

		choice, err := strconv.Atoi(answer)
		if err != nil || choice < 1 || choice > entity.BoardSize*entity.BoardSize {
			fmt.Fprintln(that.out, "Bad choice")
			continue
		}

		cell := choice - 1

		return entity.Move{Row: cell / entity.BoardSize, Col: cell % entity.BoardSize}, nil
	}
}

func (that *Console) ShowBadMove() {
	fmt.Fprintln(that.out, "Bad move")
}

// ShowResult clears the screen, renders the final board and prints the
// outcome banner.
func (that *Console) ShowResult(game *entity.Game) {
	that.out.ClearScreen()

	switch game.Winner {
	case entity.Human:
		fmt.Fprintf(that.out, "Human turn [%s]\n", game.HumanMark)
		that.renderBoard(game)
		fmt.Fprintln(that.out, "YOU WIN!")
	case entity.Computer:
		fmt.Fprintf(that.out, "Computer turn [%s]\n", game.BotMark)
		that.renderBoard(game)
		fmt.Fprintln(that.out, "YOU LOSE!")
	default:
		that.renderBoard(game)
		fmt.Fprintln(that.out, "DRAW!")
	}
}

// PromptReplay asks for another round after a finished game.
func (that *Console) PromptReplay() (bool, error) {
	for {
		fmt.Fprint(that.out, "The game is over. Do you want to play again? [y/n]: ")

		answer, err := that.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToUpper(answer) {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		default:
			fmt.Fprintln(that.out, "Bad choice")
		}
	}
}

func (that *Console) Bye() {
	fmt.Fprintln(that.out, "Bye")
}

func (that *Console) renderBoard(game *entity.Game) {
	fmt.Fprintln(that.out, "\n"+gridLine)

	for row := range game.Board {
		for _, cell := range game.Board[row] {
			fmt.Fprintf(that.out, "| %s |", that.cellSymbol(game, cell))
		}
		fmt.Fprintln(that.out, "\n"+gridLine)
	}
}

// cellSymbol renders one cell: the human's mark in cyan, the computer's in
// red, a space for an empty cell.
func (that *Console) cellSymbol(game *entity.Game, cell entity.Player) string {
	switch cell {
	case entity.Human:
		return that.out.String(game.HumanMark).Foreground(that.out.Color("6")).String()
	case entity.Computer:
		return that.out.String(game.BotMark).Foreground(that.out.Color("1")).String()
	default:
		return " "
	}
}

func (that *Console) readLine() (string, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return strings.TrimSpace(that.in.Text()), nil
}
