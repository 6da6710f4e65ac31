package usecase_vote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ibanezbetes/trinity/core/internal/model"
)

var (
	ErrUnableToSaveVote  = errors.New("unable to vote")
	ErrUnableToReadVotes = errors.New("unable to read votes")
	ErrInvalidInput      = errors.New("invalid input")
	ErrWrongStatus       = errors.New("room is not accepting votes")
)

//go:generate mockery --name=RoomSource --output=./mocks/rooms --filename=rooms.go
type RoomSource interface {
	RoomByCode(ctx context.Context, code string) (model.Room, error)
}

//go:generate mockery --name=VoteCounter --output=./mocks/counter --filename=counter.go
type VoteCounter interface {
	IncrementYes(ctx context.Context, roomID model.RoomID, candidateID model.CandidateID) (int, error)
	YesCount(ctx context.Context, roomID model.RoomID, candidateID model.CandidateID) (int, error)
}

//go:generate mockery --name=ExclusionTracker --output=./mocks/exclusions --filename=exclusions.go
type ExclusionTracker interface {
	TrackShown(ctx context.Context, roomID model.RoomID, ids []model.CandidateID) error
}

//go:generate mockery --name=MutationPublisher --output=./mocks/publisher --filename=publisher.go
type MutationPublisher interface {
	PublishVoteMutation(ctx context.Context, mutation model.VoteMutation) error
}

// Usecase records swipes. A like bumps the room/candidate yes-counter
// atomically and emits the post-increment count as a mutation event for
// the consensus detector; dislikes and skips cannot produce agreement,
// so they only mark the candidate as seen.
type Usecase struct {
	rooms      RoomSource
	counter    VoteCounter
	exclusions ExclusionTracker
	publisher  MutationPublisher
	logger     *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	rooms RoomSource,
	counter VoteCounter,
	exclusions ExclusionTracker,
	publisher MutationPublisher,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		rooms:      rooms,
		counter:    counter,
		exclusions: exclusions,
		publisher:  publisher,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Vote records one swipe on a candidate in a voting room.
func (u *Usecase) Vote(ctx context.Context, code string, candidateID model.CandidateID, voteType model.VoteType) error {
	if candidateID == model.EmptyCandidateID {
		return fmt.Errorf("%w: missing candidate id", ErrInvalidInput)
	}
	if !voteType.Valid() {
		return fmt.Errorf("%w: unknown vote type %q", ErrInvalidInput, voteType)
	}

	room, err := u.rooms.RoomByCode(ctx, code)
	if err != nil {
		return err
	}
	if room.Status != model.StatusVotingInProgress {
		return fmt.Errorf("%w: room is %s", ErrWrongStatus, room.Status)
	}

	if err := u.exclusions.TrackShown(ctx, room.ID, []model.CandidateID{candidateID}); err != nil {
		u.logger.Warn("failed to track shown candidate",
			slog.String("room_id", string(room.ID)),
			slog.String("error", err.Error()),
		)
	}

	if voteType != model.VoteLike {
		return nil
	}

	count, err := u.counter.IncrementYes(ctx, room.ID, candidateID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnableToSaveVote, err)
	}

	mutation := model.VoteMutation{
		RoomID:       room.ID,
		CandidateID:  candidateID,
		YesVoteCount: count,
	}
	if err := u.publisher.PublishVoteMutation(ctx, mutation); err != nil {
		return fmt.Errorf("%w: %w", ErrUnableToSaveVote, err)
	}
	return nil
}

// YesVotes reports how many members have liked a candidate so far. A
// candidate nobody voted on reads as zero.
func (u *Usecase) YesVotes(ctx context.Context, code string, candidateID model.CandidateID) (int, error) {
	if candidateID == model.EmptyCandidateID {
		return 0, fmt.Errorf("%w: missing candidate id", ErrInvalidInput)
	}

	room, err := u.rooms.RoomByCode(ctx, code)
	if err != nil {
		return 0, err
	}

	count, err := u.counter.YesCount(ctx, room.ID, candidateID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnableToReadVotes, err)
	}
	return count, nil
}
