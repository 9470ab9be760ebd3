package handlers

import (
	"errors"
	"iter"
	"strconv"
	"strings"

	"github.com/varenn/minefield-server/internal/board"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2, // open (reveal)
	"f": 2, // toggle flag
	"g": 0, // get current state
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// ExecuteCommand applies one command of the text grammar shared by the
// websocket loop and the terminal client. A reveal command returns its
// outcome; other commands return nil.
func ExecuteCommand(b *board.Board, c string) (*board.RevealResult, error) {
	parts := strings.Split(c, " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return nil, errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return nil, errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "g":
		return nil, nil
	case "o":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return nil, err
		}
		res, err := b.RevealCell(row, col)
		if err != nil {
			return nil, err
		}
		return &res, nil
	case "f":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return nil, err
		}
		return nil, b.ToggleFlag(row, col)
	}
	return nil, errors.New("invalid command")
}

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}
