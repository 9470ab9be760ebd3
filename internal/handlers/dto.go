package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"github.com/varenn/minefield-server/internal/board"
	"github.com/varenn/minefield-server/internal/repository"
)

type CreateBoardDTO struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

func ParseCreateBoardDTO(src map[string][]string) (CreateBoardDTO, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto CreateBoardDTO
	err := dec.Decode(&dto, src)
	return dto, err
}

type cellRef struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func parseCellRef(src map[string][]string) (cellRef, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var ref cellRef
	err := dec.Decode(&ref, src)
	return ref, err
}

type Move uint8

const (
	RevealMove Move = iota + 1
	FlagMove
)

var ErrBadMove = errors.New("move must be one of 'reveal', 'flag'")

func parseMove(s string) (Move, error) {
	switch strings.ToLower(s) {
	case "reveal":
		return RevealMove, nil
	case "flag":
		return FlagMove, nil
	default:
		return 0, ErrBadMove
	}
}

type BoardSessionDTO struct {
	BoardSessionID string           `json:"board_session_id"`
	Width          int              `json:"width"`
	Height         int              `json:"height"`
	MineCount      int              `json:"mine_count"`
	Cells          []board.CellView `json:"cells"`
	StartedAt      int64            `json:"started_at"`
}

func NewBoardSessionDTO(session *repository.BoardSession, b *board.Board) *BoardSessionDTO {
	return &BoardSessionDTO{
		BoardSessionID: strconv.FormatInt(session.BoardSessionID, 10),
		Width:          session.Width,
		Height:         session.Height,
		MineCount:      session.MineCount,
		Cells:          b.Snapshot(),
		StartedAt:      session.StartedAt.Time.UnixMilli(),
	}
}

type MoveResultDTO struct {
	Reveal *board.RevealResult `json:"reveal,omitempty"`
	*BoardSessionDTO
}
