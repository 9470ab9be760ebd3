package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/varenn/minefield-server/internal/board"
)

type BoardSession struct {
	BoardSessionID int64
	PlayerID       *int64
	Width          int
	Height         int
	MineCount      int
	State          []byte
	StartedAt      pgtype.Timestamptz
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

// Board decodes the stored state blob back into a live board.
func (s BoardSession) Board() (*board.Board, error) {
	return board.Decode(s.State)
}

type CreateBoardSessionParams struct {
	PlayerID *int64
}

func (q *Queries) CreateBoardSession(
	ctx context.Context, b *board.Board, params CreateBoardSessionParams,
) (*BoardSession, error) {
	state, err := b.Bytes()
	if err != nil {
		return nil, err
	}

	args := pgx.NamedArgs{
		"player_id":  params.PlayerID,
		"width":      b.Width(),
		"height":     b.Height(),
		"mine_count": b.MineCount(),
		"state":      state,
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO board_session (player_id, width, height, mine_count, state)
		VALUES (@player_id, @width, @height, @mine_count, @state)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[BoardSession])
}

func (q *Queries) FetchBoardSession(
	ctx context.Context, boardSessionID int64,
) (*BoardSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM board_session WHERE board_session_id = $1",
		boardSessionID,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[BoardSession])
}

func (q *Queries) UpdateBoardSession(
	ctx context.Context, boardSessionID int64, b *board.Board,
) error {
	state, err := b.Bytes()
	if err != nil {
		return err
	}
	_, err = q.db.Exec(
		ctx,
		`UPDATE board_session
		SET state = @state, updated_at = now()
		WHERE board_session_id = @board_session_id`,
		pgx.NamedArgs{
			"board_session_id": boardSessionID,
			"state":            state,
		},
	)
	return err
}
