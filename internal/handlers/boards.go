package handlers

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/varenn/minefield-server/internal/board"
	"github.com/varenn/minefield-server/internal/config"
	"github.com/varenn/minefield-server/internal/middleware"
	"github.com/varenn/minefield-server/internal/repository"
)

type Boards struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
	rnd    *rand.Rand
}

func NewBoards(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *Boards {
	return &Boards{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
		rnd:    rnd,
	}
}

func (h Boards) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateBoardDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	b, err := board.New(dto.Width, dto.Height, dto.MineCount, h.rnd)
	if errors.Is(err, board.ErrInvalidDimensions) || errors.Is(err, board.ErrTooManyMines) {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to create board", "error", err)
		return
	}

	var params repository.CreateBoardSessionParams
	if claims, ok := middleware.PlayerClaims(r); ok {
		params.PlayerID = &claims.PlayerID
	}

	session, err := h.repo.CreateBoardSession(r.Context(), b, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to create board session", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewBoardSessionDTO(session, b))
}

func (h Boards) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.BoardSession, *board.Board, bool) {
	sessionID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}

	session, err := h.repo.FetchBoardSession(r.Context(), sessionID)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch session from db", "error", err)
		return nil, nil, false
	}

	if claims, ok := middleware.PlayerClaims(r); ok &&
		session.PlayerID != nil && *session.PlayerID != claims.PlayerID {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, nil, false
	}

	b, err := session.Board()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("db returned invalid board_session.state", "error", err)
		return nil, nil, false
	}

	return session, b, true
}

func (h Boards) Fetch(w http.ResponseWriter, r *http.Request) {
	session, b, ok := h.fetchSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, h.logger, NewBoardSessionDTO(session, b))
}

func (h Boards) Move(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	move, err := parseMove(query.Get("move"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	ref, err := parseCellRef(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	session, b, ok := h.fetchSession(w, r)
	if !ok {
		return
	}

	var reveal *board.RevealResult
	switch move {
	case RevealMove:
		res, err := b.RevealCell(ref.Row, ref.Col)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, h.logger, wrapError(err))
			return
		}
		reveal = &res
	case FlagMove:
		if err := b.ToggleFlag(ref.Row, ref.Col); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, h.logger, wrapError(err))
			return
		}
	}

	if err := h.repo.UpdateBoardSession(r.Context(), session.BoardSessionID, b); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to update session in db", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, MoveResultDTO{
		Reveal:          reveal,
		BoardSessionDTO: NewBoardSessionDTO(session, b),
	})
}

func (h Boards) RenderText(w http.ResponseWriter, r *http.Request) {
	_, b, ok := h.fetchSession(w, r)
	if !ok {
		return
	}
	w.Header().Add("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(b.Render())); err != nil {
		h.logger.Error("unable to send rendered board", "error", err)
	}
}
