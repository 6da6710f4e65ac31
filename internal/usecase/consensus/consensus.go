package usecase_consensus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ibanezbetes/trinity/core/internal/model"
)

var ErrInvalidMutation = errors.New("invalid vote mutation")

//go:generate mockery --name=RoomStore --output=./mocks/store --filename=store.go
type RoomStore interface {
	ByID(ctx context.Context, roomID model.RoomID) (model.Room, error)
	// ConditionalTransition is the store's compare-and-set write: it
	// succeeds only while the room status is still in allowed. It is the
	// sole concurrency primitive on the consensus path.
	ConditionalTransition(ctx context.Context, roomID model.RoomID, allowed []model.RoomStatus, newStatus model.RoomStatus, matchID model.CandidateID) (bool, error)
	RecordedMatch(ctx context.Context, roomID model.RoomID) (model.CandidateID, error)
	Participants(ctx context.Context, roomID model.RoomID) ([]string, error)
	SetStatus(ctx context.Context, roomID model.RoomID, status model.RoomStatus) error
}

//go:generate mockery --name=TitleSource --output=./mocks/titles --filename=titles.go
type TitleSource interface {
	Title(ctx context.Context, roomID model.RoomID, candidateID model.CandidateID) (string, error)
}

//go:generate mockery --name=MatchPublisher --output=./mocks/publisher --filename=publisher.go
type MatchPublisher interface {
	PublishMatchFound(ctx context.Context, match model.MatchInfo) error
}

// Detector decides whether a vote-count mutation is the moment all active
// members agree, and converts that moment into an exactly-once room
// transition. Evaluations may arrive duplicated, parallel and out of
// order; losing the transition race is an expected outcome returned as
// data, never an error.
type Detector struct {
	store     RoomStore
	titles    TitleSource
	publisher MatchPublisher
	logger    *slog.Logger
	now       func() time.Time
}

type Option func(*Detector)

func WithLogger(logger *slog.Logger) Option {
	return func(d *Detector) {
		d.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(d *Detector) {
		d.now = now
	}
}

func New(store RoomStore, titles TitleSource, publisher MatchPublisher, opts ...Option) *Detector {
	d := &Detector{
		store:     store,
		titles:    titles,
		publisher: publisher,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// transitionableStatuses are the states the consensus precondition accepts.
var transitionableStatuses = []model.RoomStatus{
	model.StatusWaitingForMembers,
	model.StatusVotingInProgress,
}

// OnVoteMutation evaluates one mutation. Store failures propagate
// unmodified and the compare-and-set is never retried here: retrying a
// conditional write after a transient failure would re-evaluate a stale
// precondition, so callers re-trigger evaluation instead.
func (d *Detector) OnVoteMutation(ctx context.Context, mutation model.VoteMutation) (model.ConsensusOutcome, error) {
	if err := validateMutation(mutation); err != nil {
		return model.ConsensusOutcome{}, err
	}

	room, err := d.store.ByID(ctx, mutation.RoomID)
	if err != nil {
		return model.ConsensusOutcome{}, err
	}

	if room.MemberCount == 0 || mutation.YesVoteCount < room.MemberCount {
		return model.ConsensusOutcome{}, nil
	}

	won, err := d.store.ConditionalTransition(ctx, mutation.RoomID, transitionableStatuses, model.StatusConsensusReached, mutation.CandidateID)
	if err != nil {
		return model.ConsensusOutcome{}, err
	}

	if !won {
		return d.loserOutcome(ctx, mutation.RoomID)
	}
	return d.winnerOutcome(ctx, mutation)
}

// winnerOutcome gathers match metadata, publishes the match event and
// finishes the MATCHED transition. Metadata lookups run only after the
// irreversible transition, so their failures degrade the payload instead
// of undoing the agreement.
func (d *Detector) winnerOutcome(ctx context.Context, mutation model.VoteMutation) (model.ConsensusOutcome, error) {
	match := model.MatchInfo{
		RoomID:      mutation.RoomID,
		CandidateID: mutation.CandidateID,
		ReachedAt:   d.now(),
	}

	title, err := d.titles.Title(ctx, mutation.RoomID, mutation.CandidateID)
	if err != nil {
		d.logger.Warn("match title lookup failed",
			slog.String("room_id", string(mutation.RoomID)),
			slog.String("error", err.Error()),
		)
	} else {
		match.Title = title
	}

	participants, err := d.store.Participants(ctx, mutation.RoomID)
	if err != nil {
		d.logger.Warn("participant lookup failed",
			slog.String("room_id", string(mutation.RoomID)),
			slog.String("error", err.Error()),
		)
	} else {
		match.Participants = participants
	}

	if err := d.publisher.PublishMatchFound(ctx, match); err != nil {
		d.logger.Error("failed to publish match event",
			slog.String("room_id", string(mutation.RoomID)),
			slog.String("error", err.Error()),
		)
	}

	if err := d.store.SetStatus(ctx, mutation.RoomID, model.StatusMatched); err != nil {
		d.logger.Warn("failed to finalize matched status",
			slog.String("room_id", string(mutation.RoomID)),
			slog.String("error", err.Error()),
		)
	}

	d.logger.Info("consensus reached",
		slog.String("room_id", string(mutation.RoomID)),
		slog.Int64("candidate_id", int64(mutation.CandidateID)),
	)

	return model.ConsensusOutcome{Matched: true, Match: &match}, nil
}

// loserOutcome reads back the match a concurrent evaluation already
// recorded. Losers publish nothing.
func (d *Detector) loserOutcome(ctx context.Context, roomID model.RoomID) (model.ConsensusOutcome, error) {
	matchID, err := d.store.RecordedMatch(ctx, roomID)
	if err != nil {
		return model.ConsensusOutcome{}, err
	}
	if matchID == model.EmptyCandidateID {
		// The precondition failed for a reason other than an earlier
		// winner, e.g. the room ran out of content.
		return model.ConsensusOutcome{}, nil
	}

	existing := model.MatchInfo{
		RoomID:      roomID,
		CandidateID: matchID,
	}
	title, err := d.titles.Title(ctx, roomID, matchID)
	if err == nil {
		existing.Title = title
	}

	return model.ConsensusOutcome{AlreadyMatched: &existing}, nil
}

func validateMutation(mutation model.VoteMutation) error {
	if mutation.RoomID == model.EmptyRoomID {
		return fmt.Errorf("%w: missing room id", ErrInvalidMutation)
	}
	if mutation.CandidateID == model.EmptyCandidateID {
		return fmt.Errorf("%w: missing candidate id", ErrInvalidMutation)
	}
	if mutation.YesVoteCount < 0 {
		return fmt.Errorf("%w: negative yes-vote count", ErrInvalidMutation)
	}
	return nil
}
