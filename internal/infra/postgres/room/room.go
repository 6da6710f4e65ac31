package infra_postgres_room

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ibanezbetes/trinity/core/internal/model"
	usecase_room "github.com/ibanezbetes/trinity/core/internal/usecase/room"
)

// Driver is the authoritative room store. The conditional transition is
// a single UPDATE guarded by the current status, which is the only
// concurrency-control primitive the consensus path relies on.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type roomDTO struct {
	ID              string         `db:"id"`
	Code            string         `db:"code"`
	Status          string         `db:"status"`
	MediaType       string         `db:"media_type"`
	GenreIDs        pq.Int64Array  `db:"genre_ids"`
	MatchID         sql.NullInt64  `db:"match_id"`
	LastPoolRefresh sql.NullTime   `db:"last_pool_refresh"`
	MemberCount     int            `db:"member_count"`
}

func (dto roomDTO) toModel() model.Room {
	genres := make([]int, 0, len(dto.GenreIDs))
	for _, id := range dto.GenreIDs {
		genres = append(genres, int(id))
	}

	room := model.Room{
		ID:         model.RoomID(dto.ID),
		PublicCode: dto.Code,
		Status:     model.RoomStatus(dto.Status),
		Criteria: model.FilterCriteria{
			RoomID:    model.RoomID(dto.ID),
			MediaType: model.MediaType(dto.MediaType),
			GenreIDs:  genres,
		},
		MemberCount: dto.MemberCount,
	}
	if dto.MatchID.Valid {
		room.CurrentMatchID = model.CandidateID(dto.MatchID.Int64)
	}
	if dto.LastPoolRefresh.Valid {
		room.LastPoolRefresh = dto.LastPoolRefresh.Time
	}
	return room
}

const roomColumns = `
	r.id, r.code, r.status, r.media_type, r.genre_ids, r.match_id, r.last_pool_refresh,
	(SELECT COUNT(*) FROM participants p WHERE p.room_id = r.id) AS member_count
`

func (d *Driver) CreateAndBook(ctx context.Context, room model.Room, ownerID uuid.UUID) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	genres := make(pq.Int64Array, 0, len(room.Criteria.GenreIDs))
	for _, id := range room.Criteria.GenreIDs {
		genres = append(genres, int64(id))
	}

	query := `
		INSERT INTO rooms (id, code, status, media_type, genre_ids)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.ExecContext(ctx, query,
		string(room.ID), room.PublicCode, string(room.Status),
		string(room.Criteria.MediaType), genres,
	); err != nil {
		if strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "duplicate key") {
			return usecase_room.ErrCodeConflict
		}
		return err
	}

	participantQuery := `
		INSERT INTO participants (room_id, user_id, is_owner)
		VALUES ($1, $2, TRUE)
	`
	if _, err := tx.ExecContext(ctx, participantQuery, string(room.ID), ownerID); err != nil {
		return err
	}

	return tx.Commit()
}

func (d *Driver) ByCode(ctx context.Context, code string) (model.Room, error) {
	var dto roomDTO

	query := `SELECT ` + roomColumns + ` FROM rooms r WHERE r.code = $1`

	err := d.db.GetContext(ctx, &dto, query, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Room{}, usecase_room.ErrResourceNotFound
		}
		return model.Room{}, err
	}

	return dto.toModel(), nil
}

func (d *Driver) ByID(ctx context.Context, roomID model.RoomID) (model.Room, error) {
	var dto roomDTO

	query := `SELECT ` + roomColumns + ` FROM rooms r WHERE r.id = $1`

	err := d.db.GetContext(ctx, &dto, query, string(roomID))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Room{}, usecase_room.ErrResourceNotFound
		}
		return model.Room{}, err
	}

	return dto.toModel(), nil
}

func (d *Driver) UpdateCriteria(ctx context.Context, roomID model.RoomID, criteria model.FilterCriteria) error {
	genres := make(pq.Int64Array, 0, len(criteria.GenreIDs))
	for _, id := range criteria.GenreIDs {
		genres = append(genres, int64(id))
	}

	query := `UPDATE rooms SET media_type = $1, genre_ids = $2 WHERE id = $3`

	result, err := d.db.ExecContext(ctx, query, string(criteria.MediaType), genres, string(roomID))
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (d *Driver) SetStatus(ctx context.Context, roomID model.RoomID, status model.RoomStatus) error {
	query := `UPDATE rooms SET status = $1 WHERE id = $2`

	result, err := d.db.ExecContext(ctx, query, string(status), string(roomID))
	if err != nil {
		return err
	}
	return requireRow(result)
}

// ConditionalTransition is the store's compare-and-set write. It moves the
// room to newStatus and records matchID only when the current status is in
// allowed; exactly one of any set of concurrent attempts can win.
func (d *Driver) ConditionalTransition(ctx context.Context, roomID model.RoomID, allowed []model.RoomStatus, newStatus model.RoomStatus, matchID model.CandidateID) (bool, error) {
	statuses := make(pq.StringArray, 0, len(allowed))
	for _, s := range allowed {
		statuses = append(statuses, string(s))
	}

	query := `
		UPDATE rooms
		SET status = $1, match_id = $2, matched_at = NOW()
		WHERE id = $3 AND status = ANY($4)
	`

	result, err := d.db.ExecContext(ctx, query,
		string(newStatus), int64(matchID), string(roomID), statuses,
	)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// RecordedMatch reads back the match a concurrent winner already wrote.
func (d *Driver) RecordedMatch(ctx context.Context, roomID model.RoomID) (model.CandidateID, error) {
	var matchID sql.NullInt64

	query := `SELECT match_id FROM rooms WHERE id = $1`

	err := d.db.GetContext(ctx, &matchID, query, string(roomID))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.EmptyCandidateID, usecase_room.ErrResourceNotFound
		}
		return model.EmptyCandidateID, err
	}
	if !matchID.Valid {
		return model.EmptyCandidateID, nil
	}
	return model.CandidateID(matchID.Int64), nil
}

func (d *Driver) AddParticipant(ctx context.Context, roomID model.RoomID, userID uuid.UUID) error {
	query := `
		INSERT INTO participants (room_id, user_id, is_owner)
		VALUES ($1, $2, FALSE)
		ON CONFLICT (room_id, user_id) DO NOTHING
	`

	_, err := d.db.ExecContext(ctx, query, string(roomID), userID)
	return err
}

func (d *Driver) Participants(ctx context.Context, roomID model.RoomID) ([]string, error) {
	var userIDs []string

	query := `SELECT user_id FROM participants WHERE room_id = $1 ORDER BY joined_at`

	if err := d.db.SelectContext(ctx, &userIDs, query, string(roomID)); err != nil {
		return nil, err
	}
	return userIDs, nil
}

func (d *Driver) TouchPoolRefresh(ctx context.Context, roomID model.RoomID, at time.Time) error {
	query := `UPDATE rooms SET last_pool_refresh = $1 WHERE id = $2`

	result, err := d.db.ExecContext(ctx, query, at, string(roomID))
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (d *Driver) DeleteByCode(ctx context.Context, code string) error {
	query := `DELETE FROM rooms WHERE code = $1`

	result, err := d.db.ExecContext(ctx, query, code)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return usecase_room.ErrResourceNotFound
	}
	return nil
}
