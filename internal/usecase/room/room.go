package usecase_room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ibanezbetes/trinity/core/internal/model"
	usecase_pool "github.com/ibanezbetes/trinity/core/internal/usecase/pool"
)

var (
	ErrCodeConflict     = errors.New("code conflict")
	ErrRoomsUnavailable = errors.New("no available rooms")
	ErrInternal         = errors.New("internal error")
	ErrResourceNotFound = errors.New("no such resource")
	ErrInvalidInput     = errors.New("invalid input")
	// ErrCriteriaLocked rejects criteria changes once voting has started.
	ErrCriteriaLocked = errors.New("criteria are immutable while voting")
	ErrWrongStatus    = errors.New("operation not allowed in current room status")
	// ErrPoolExhausted means the pool ran dry and a refill could not find
	// enough unseen content; the room is closed without a match.
	ErrPoolExhausted = errors.New("pool exhausted without a match")
)

// RefillThreshold is the remaining-entry count at or below which a pool
// read triggers a refill. The comparison is on the remaining count, never
// on the truthiness of the reader's index: index 0 is a valid position.
const RefillThreshold = 5

//go:generate mockery --name=RoomRepository --output=./mocks/repository --filename=repository.go
type RoomRepository interface {
	CreateAndBook(ctx context.Context, room model.Room, ownerID uuid.UUID) error
	ByCode(ctx context.Context, code string) (model.Room, error)
	SetStatus(ctx context.Context, roomID model.RoomID, status model.RoomStatus) error
	ConditionalTransition(ctx context.Context, roomID model.RoomID, allowed []model.RoomStatus, newStatus model.RoomStatus, matchID model.CandidateID) (bool, error)
	UpdateCriteria(ctx context.Context, roomID model.RoomID, criteria model.FilterCriteria) error
	AddParticipant(ctx context.Context, roomID model.RoomID, userID uuid.UUID) error
	Participants(ctx context.Context, roomID model.RoomID) ([]string, error)
	TouchPoolRefresh(ctx context.Context, roomID model.RoomID, at time.Time) error
	DeleteByCode(ctx context.Context, code string) error
}

//go:generate mockery --name=PoolBuilder --output=./mocks/poolbuilder --filename=poolbuilder.go
type PoolBuilder interface {
	BuildPool(ctx context.Context, criteria model.FilterCriteria) ([]model.PoolEntry, error)
	Refill(ctx context.Context, criteria model.FilterCriteria, excludeIDs []model.CandidateID) ([]model.PoolEntry, error)
}

//go:generate mockery --name=PoolStore --output=./mocks/poolstore --filename=poolstore.go
type PoolStore interface {
	SavePool(ctx context.Context, roomID model.RoomID, entries []model.PoolEntry) error
	LoadPool(ctx context.Context, roomID model.RoomID) ([]model.PoolEntry, error)
	Title(ctx context.Context, roomID model.RoomID, candidateID model.CandidateID) (string, error)
	Clear(ctx context.Context, roomID model.RoomID) error
}

type Usecase struct {
	repository RoomRepository
	pools      PoolBuilder
	poolStore  PoolStore
	logger     *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(repository RoomRepository, pools PoolBuilder, poolStore PoolStore, opts ...Option) *Usecase {
	u := &Usecase{
		repository: repository,
		pools:      pools,
		poolStore:  poolStore,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Book creates a room in the lobby state with its filter criteria fixed.
// The owner token must be set on the client to perform owner operations.
func (u *Usecase) Book(ctx context.Context, mediaType model.MediaType, genreIDs []int) (roomCode string, ownerToken string, err error) {
	if !mediaType.Valid() {
		return "", "", fmt.Errorf("%w: unknown media type %q", ErrInvalidInput, mediaType)
	}
	if len(genreIDs) > model.MaxCriteriaGenres {
		return "", "", fmt.Errorf("%w: at most %d genres", ErrInvalidInput, model.MaxCriteriaGenres)
	}

	ownerID := uuid.New()
	roomCode, err = u.createRoomLobby(ctx, ownerID, mediaType, genreIDs)
	if err != nil {
		return "", "", err
	}
	return roomCode, ownerID.String(), nil
}

// Assuming that codes can conflict. Retrying.
func (u *Usecase) createRoomLobby(ctx context.Context, ownerID uuid.UUID, mediaType model.MediaType, genreIDs []int) (string, error) {
	var retries = 3
	for retries > 0 {
		roomID := model.RoomID(uuid.New().String())
		code := u.buildRoomCode()
		room := model.Room{
			ID:         roomID,
			PublicCode: code,
			Status:     model.StatusWaitingForMembers,
			Criteria: model.FilterCriteria{
				RoomID:    roomID,
				MediaType: mediaType,
				GenreIDs:  genreIDs,
			},
		}
		if err := u.repository.CreateAndBook(ctx, room, ownerID); err != nil {
			if errors.Is(err, ErrCodeConflict) {
				retries--
			} else {
				return "", errors.Join(ErrInternal, err)
			}
		} else {
			return code, nil
		}
	}
	return "", ErrRoomsUnavailable
}

func (u *Usecase) buildRoomCode() string {
	const codeLen = 6
	var builder strings.Builder
	builder.Grow(codeLen)

	for i := 0; i < codeLen; i++ {
		builder.WriteByte(byte(rand.Intn(10)) + '0')
	}

	return builder.String()
}

// Join adds a participant while the room is still gathering members.
func (u *Usecase) Join(ctx context.Context, code string, userID *string) (string, error) {
	var userUUID uuid.UUID
	if userID == nil {
		userUUID = uuid.New()
	} else {
		var err error
		userUUID, err = uuid.Parse(*userID)
		if err != nil {
			return "", fmt.Errorf("%w: malformed user id", ErrInvalidInput)
		}
	}

	room, err := u.roomByCode(ctx, code)
	if err != nil {
		return "", err
	}
	if room.Status != model.StatusWaitingForMembers {
		return "", fmt.Errorf("%w: room is %s", ErrWrongStatus, room.Status)
	}

	if err := u.repository.AddParticipant(ctx, room.ID, userUUID); err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	return userUUID.String(), nil
}

// StartVoting moves the room into voting through the store's conditional
// write and builds its initial pool. A concurrent start loses the
// precondition and is treated as already started.
func (u *Usecase) StartVoting(ctx context.Context, code string) error {
	room, err := u.roomByCode(ctx, code)
	if err != nil {
		return err
	}

	won, err := u.repository.ConditionalTransition(ctx, room.ID,
		[]model.RoomStatus{model.StatusWaitingForMembers},
		model.StatusVotingInProgress, model.EmptyCandidateID,
	)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if !won {
		return fmt.Errorf("%w: room is not waiting for members", ErrWrongStatus)
	}

	entries, err := u.pools.BuildPool(ctx, room.Criteria)
	if err != nil {
		return err
	}
	if err := u.poolStore.SavePool(ctx, room.ID, entries); err != nil {
		return errors.Join(ErrInternal, err)
	}
	if err := u.repository.TouchPoolRefresh(ctx, room.ID, time.Now()); err != nil {
		u.logger.Warn("failed to record pool refresh time",
			slog.String("room_id", string(room.ID)),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

// Pool returns the room's ordered pool. afterIndex is how far the reader
// has swiped; when the remainder at or past that position falls to the
// refill threshold, the pool is extended before returning.
func (u *Usecase) Pool(ctx context.Context, code string, afterIndex int) ([]model.PoolEntry, error) {
	if afterIndex < 0 {
		return nil, fmt.Errorf("%w: negative pool index", ErrInvalidInput)
	}

	room, err := u.roomByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.Status != model.StatusVotingInProgress {
		return nil, fmt.Errorf("%w: room is %s", ErrWrongStatus, room.Status)
	}

	entries, err := u.poolStore.LoadPool(ctx, room.ID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	remaining := len(entries) - afterIndex
	if remaining > RefillThreshold {
		return entries, nil
	}

	extended, err := u.extendPool(ctx, room, entries, afterIndex)
	if err != nil {
		return nil, err
	}
	return extended, nil
}

func (u *Usecase) extendPool(ctx context.Context, room model.Room, entries []model.PoolEntry, afterIndex int) ([]model.PoolEntry, error) {
	currentIDs := make([]model.CandidateID, 0, len(entries))
	for _, e := range entries {
		currentIDs = append(currentIDs, e.Item.ID)
	}

	fresh, err := u.pools.Refill(ctx, room.Criteria, currentIDs)
	if err != nil {
		if errors.Is(err, usecase_pool.ErrInsufficientContent) {
			if len(entries)-afterIndex > 0 {
				// Serve what is left; the room closes once the reader has
				// consumed every stored entry.
				return entries, nil
			}
			if setErr := u.repository.SetStatus(ctx, room.ID, model.StatusCompletedNoMatch); setErr != nil {
				return nil, errors.Join(ErrInternal, setErr)
			}
			return nil, ErrPoolExhausted
		}
		return nil, err
	}

	entries = append(entries, fresh...)
	if err := u.poolStore.SavePool(ctx, room.ID, entries); err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	if err := u.repository.TouchPoolRefresh(ctx, room.ID, time.Now()); err != nil {
		u.logger.Warn("failed to record pool refresh time",
			slog.String("room_id", string(room.ID)),
			slog.String("error", err.Error()),
		)
	}
	return entries, nil
}

// UpdateCriteria replaces the room's filter criteria. Only permitted
// before voting starts; afterwards the criteria are immutable.
func (u *Usecase) UpdateCriteria(ctx context.Context, code string, mediaType model.MediaType, genreIDs []int) error {
	if !mediaType.Valid() {
		return fmt.Errorf("%w: unknown media type %q", ErrInvalidInput, mediaType)
	}
	if len(genreIDs) > model.MaxCriteriaGenres {
		return fmt.Errorf("%w: at most %d genres", ErrInvalidInput, model.MaxCriteriaGenres)
	}

	room, err := u.roomByCode(ctx, code)
	if err != nil {
		return err
	}
	if room.Status != model.StatusWaitingForMembers {
		return fmt.Errorf("%w: room is %s", ErrCriteriaLocked, room.Status)
	}

	criteria := model.FilterCriteria{
		RoomID:    room.ID,
		MediaType: mediaType,
		GenreIDs:  genreIDs,
	}
	if err := u.repository.UpdateCriteria(ctx, room.ID, criteria); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func (u *Usecase) Status(ctx context.Context, code string) (model.RoomStatus, error) {
	room, err := u.roomByCode(ctx, code)
	if err != nil {
		return "", err
	}
	return room.Status, nil
}

// Match returns the agreed item for a room that reached consensus.
func (u *Usecase) Match(ctx context.Context, code string) (model.MatchInfo, error) {
	room, err := u.roomByCode(ctx, code)
	if err != nil {
		return model.MatchInfo{}, err
	}
	if room.Status != model.StatusConsensusReached && room.Status != model.StatusMatched {
		return model.MatchInfo{}, fmt.Errorf("%w: room is %s", ErrWrongStatus, room.Status)
	}

	match := model.MatchInfo{
		RoomID:      room.ID,
		CandidateID: room.CurrentMatchID,
	}
	if title, err := u.poolStore.Title(ctx, room.ID, room.CurrentMatchID); err == nil {
		match.Title = title
	}
	if participants, err := u.repository.Participants(ctx, room.ID); err == nil {
		match.Participants = participants
	}
	return match, nil
}

// Free deletes the room and its pool.
func (u *Usecase) Free(ctx context.Context, code string) error {
	room, err := u.roomByCode(ctx, code)
	if err != nil {
		return err
	}

	if err := u.repository.DeleteByCode(ctx, code); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return ErrResourceNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	if err := u.poolStore.Clear(ctx, room.ID); err != nil {
		u.logger.Warn("failed to clear room pool",
			slog.String("room_id", string(room.ID)),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

// RoomByCode exposes the room record for collaborators that key on the
// public code, e.g. the vote path resolving the room id.
func (u *Usecase) RoomByCode(ctx context.Context, code string) (model.Room, error) {
	return u.roomByCode(ctx, code)
}

func (u *Usecase) roomByCode(ctx context.Context, code string) (model.Room, error) {
	room, err := u.repository.ByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Room{}, ErrResourceNotFound
		}
		return model.Room{}, errors.Join(ErrInternal, err)
	}
	return room, nil
}
