//go:build !integration

package usecase_consensus

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ibanezbetes/trinity/core/internal/model"
	publisher_mocks "github.com/ibanezbetes/trinity/core/internal/usecase/consensus/mocks/publisher"
	store_mocks "github.com/ibanezbetes/trinity/core/internal/usecase/consensus/mocks/store"
	title_mocks "github.com/ibanezbetes/trinity/core/internal/usecase/consensus/mocks/titles"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseConsensusUnitSuite struct {
	suite.Suite
}

type consensusResources struct {
	detector  *Detector
	store     *store_mocks.RoomStore
	titles    *title_mocks.TitleSource
	publisher *publisher_mocks.MatchPublisher
	ctx       context.Context
}

func initConsensusResources(t provider.T) *consensusResources {
	store := store_mocks.NewRoomStore(t)
	titles := title_mocks.NewTitleSource(t)
	publisher := publisher_mocks.NewMatchPublisher(t)
	detector := New(store, titles, publisher, WithClock(func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}))

	return &consensusResources{
		detector:  detector,
		store:     store,
		titles:    titles,
		publisher: publisher,
		ctx:       context.Background(),
	}
}

func consensusRoom() model.Room {
	return model.Room{
		ID:          model.RoomID("room-1"),
		PublicCode:  "123456",
		Status:      model.StatusVotingInProgress,
		MemberCount: 3,
	}
}

func fullConsensusMutation() model.VoteMutation {
	return model.VoteMutation{
		RoomID:       model.RoomID("room-1"),
		CandidateID:  model.CandidateID(603),
		YesVoteCount: 3,
	}
}

func (s *UsecaseConsensusUnitSuite) TestPendingBelowMemberCount(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		room     model.Room
		mutation model.VoteMutation
	}{
		{
			name: "Count below members",
			room: consensusRoom(),
			mutation: model.VoteMutation{
				RoomID:       model.RoomID("room-1"),
				CandidateID:  model.CandidateID(603),
				YesVoteCount: 2,
			},
		},
		{
			name: "Zero members never match",
			room: model.Room{
				ID:          model.RoomID("room-1"),
				Status:      model.StatusVotingInProgress,
				MemberCount: 0,
			},
			mutation: fullConsensusMutation(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initConsensusResources(t)
			r.store.On("ByID", r.ctx, tc.mutation.RoomID).Return(tc.room, nil).Once()

			outcome, err := r.detector.OnVoteMutation(r.ctx, tc.mutation)

			assert.NoError(t, err)
			assert.True(t, outcome.Pending())
			r.store.AssertNotCalled(t, "ConditionalTransition")
		})
	}
}

func (s *UsecaseConsensusUnitSuite) TestWinnerTransitionsAndPublishesOnce(t provider.T) {
	t.Parallel()

	r := initConsensusResources(t)
	room := consensusRoom()
	mutation := fullConsensusMutation()

	r.store.On("ByID", r.ctx, mutation.RoomID).Return(room, nil).Once()
	r.store.On("ConditionalTransition", r.ctx, mutation.RoomID,
		[]model.RoomStatus{model.StatusWaitingForMembers, model.StatusVotingInProgress},
		model.StatusConsensusReached, mutation.CandidateID,
	).Return(true, nil).Once()
	r.titles.On("Title", r.ctx, mutation.RoomID, mutation.CandidateID).Return("The Matrix", nil).Once()
	r.store.On("Participants", r.ctx, mutation.RoomID).Return([]string{"a", "b", "c"}, nil).Once()
	r.publisher.On("PublishMatchFound", r.ctx, mock.AnythingOfType("model.MatchInfo")).Return(nil).Once()
	r.store.On("SetStatus", r.ctx, mutation.RoomID, model.StatusMatched).Return(nil).Once()

	outcome, err := r.detector.OnVoteMutation(r.ctx, mutation)

	assert.NoError(t, err)
	assert.True(t, outcome.Matched)
	assert.NotNil(t, outcome.Match)
	assert.Equal(t, mutation.CandidateID, outcome.Match.CandidateID)
	assert.Equal(t, "The Matrix", outcome.Match.Title)
	assert.Equal(t, []string{"a", "b", "c"}, outcome.Match.Participants)
	assert.False(t, outcome.Match.ReachedAt.IsZero())
}

func (s *UsecaseConsensusUnitSuite) TestWinnerDegradesOnMetadataFailure(t provider.T) {
	t.Parallel()

	r := initConsensusResources(t)
	room := consensusRoom()
	mutation := fullConsensusMutation()

	r.store.On("ByID", r.ctx, mutation.RoomID).Return(room, nil).Once()
	r.store.On("ConditionalTransition", r.ctx, mutation.RoomID,
		[]model.RoomStatus{model.StatusWaitingForMembers, model.StatusVotingInProgress},
		model.StatusConsensusReached, mutation.CandidateID,
	).Return(true, nil).Once()
	r.titles.On("Title", r.ctx, mutation.RoomID, mutation.CandidateID).Return("", errors.New("pool gone")).Once()
	r.store.On("Participants", r.ctx, mutation.RoomID).Return(nil, errors.New("pg down")).Once()
	r.publisher.On("PublishMatchFound", r.ctx, mock.AnythingOfType("model.MatchInfo")).Return(nil).Once()
	r.store.On("SetStatus", r.ctx, mutation.RoomID, model.StatusMatched).Return(nil).Once()

	outcome, err := r.detector.OnVoteMutation(r.ctx, mutation)

	// Metadata lookups run after the irreversible transition; their
	// failures thin the payload but never undo the match.
	assert.NoError(t, err)
	assert.True(t, outcome.Matched)
	assert.Empty(t, outcome.Match.Title)
	assert.Empty(t, outcome.Match.Participants)
}

func (s *UsecaseConsensusUnitSuite) TestLoserGetsExistingMatch(t provider.T) {
	t.Parallel()

	r := initConsensusResources(t)
	room := consensusRoom()
	mutation := fullConsensusMutation()
	winnerID := model.CandidateID(550)

	r.store.On("ByID", r.ctx, mutation.RoomID).Return(room, nil).Once()
	r.store.On("ConditionalTransition", r.ctx, mutation.RoomID,
		[]model.RoomStatus{model.StatusWaitingForMembers, model.StatusVotingInProgress},
		model.StatusConsensusReached, mutation.CandidateID,
	).Return(false, nil).Once()
	r.store.On("RecordedMatch", r.ctx, mutation.RoomID).Return(winnerID, nil).Once()
	r.titles.On("Title", r.ctx, mutation.RoomID, winnerID).Return("Fight Club", nil).Once()

	outcome, err := r.detector.OnVoteMutation(r.ctx, mutation)

	assert.NoError(t, err)
	assert.False(t, outcome.Matched)
	assert.NotNil(t, outcome.AlreadyMatched)
	assert.Equal(t, winnerID, outcome.AlreadyMatched.CandidateID)
	assert.Equal(t, "Fight Club", outcome.AlreadyMatched.Title)
	r.publisher.AssertNotCalled(t, "PublishMatchFound")
}

func (s *UsecaseConsensusUnitSuite) TestLoserWithoutRecordedMatchIsPending(t provider.T) {
	t.Parallel()

	r := initConsensusResources(t)
	room := consensusRoom()
	mutation := fullConsensusMutation()

	r.store.On("ByID", r.ctx, mutation.RoomID).Return(room, nil).Once()
	r.store.On("ConditionalTransition", r.ctx, mutation.RoomID,
		[]model.RoomStatus{model.StatusWaitingForMembers, model.StatusVotingInProgress},
		model.StatusConsensusReached, mutation.CandidateID,
	).Return(false, nil).Once()
	r.store.On("RecordedMatch", r.ctx, mutation.RoomID).Return(model.EmptyCandidateID, nil).Once()

	outcome, err := r.detector.OnVoteMutation(r.ctx, mutation)

	assert.NoError(t, err)
	assert.True(t, outcome.Pending())
}

func (s *UsecaseConsensusUnitSuite) TestTransitionFailureIsNeverRetried(t provider.T) {
	t.Parallel()

	r := initConsensusResources(t)
	room := consensusRoom()
	mutation := fullConsensusMutation()
	storeErr := errors.New("connection reset")

	r.store.On("ByID", r.ctx, mutation.RoomID).Return(room, nil).Once()
	r.store.On("ConditionalTransition", r.ctx, mutation.RoomID,
		[]model.RoomStatus{model.StatusWaitingForMembers, model.StatusVotingInProgress},
		model.StatusConsensusReached, mutation.CandidateID,
	).Return(false, storeErr).Once()

	outcome, err := r.detector.OnVoteMutation(r.ctx, mutation)

	assert.ErrorIs(t, err, storeErr)
	assert.True(t, outcome.Pending())
	r.store.AssertNumberOfCalls(t, "ConditionalTransition", 1)
	r.publisher.AssertNotCalled(t, "PublishMatchFound")
}

func (s *UsecaseConsensusUnitSuite) TestInvalidMutation(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mutation model.VoteMutation
	}{
		{
			name: "Missing room id",
			mutation: model.VoteMutation{
				CandidateID:  model.CandidateID(603),
				YesVoteCount: 3,
			},
		},
		{
			name: "Missing candidate id",
			mutation: model.VoteMutation{
				RoomID:       model.RoomID("room-1"),
				YesVoteCount: 3,
			},
		},
		{
			name: "Negative count",
			mutation: model.VoteMutation{
				RoomID:       model.RoomID("room-1"),
				CandidateID:  model.CandidateID(603),
				YesVoteCount: -1,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initConsensusResources(t)

			_, err := r.detector.OnVoteMutation(r.ctx, tc.mutation)

			assert.ErrorIs(t, err, ErrInvalidMutation)
			r.store.AssertNotCalled(t, "ByID")
		})
	}
}

// Concurrent duplicates of the winning count must yield exactly one winner
// and one published event; every other evaluation reads back the same match.
func (s *UsecaseConsensusUnitSuite) TestConcurrentEvaluationsExactlyOneWinner(t provider.T) {
	const evaluations = 16

	r := initConsensusResources(t)
	room := consensusRoom()
	mutation := fullConsensusMutation()

	var transitioned int32
	r.store.On("ByID", r.ctx, mutation.RoomID).Return(room, nil)
	r.store.On("ConditionalTransition", r.ctx, mutation.RoomID,
		[]model.RoomStatus{model.StatusWaitingForMembers, model.StatusVotingInProgress},
		model.StatusConsensusReached, mutation.CandidateID,
	).Return(func(context.Context, model.RoomID, []model.RoomStatus, model.RoomStatus, model.CandidateID) bool {
		return atomic.CompareAndSwapInt32(&transitioned, 0, 1)
	}, nil)
	r.store.On("RecordedMatch", r.ctx, mutation.RoomID).Return(mutation.CandidateID, nil)
	r.titles.On("Title", r.ctx, mutation.RoomID, mutation.CandidateID).Return("The Matrix", nil)
	r.store.On("Participants", r.ctx, mutation.RoomID).Return([]string{"a", "b", "c"}, nil).Once()
	r.publisher.On("PublishMatchFound", r.ctx, mock.AnythingOfType("model.MatchInfo")).Return(nil).Once()
	r.store.On("SetStatus", r.ctx, mutation.RoomID, model.StatusMatched).Return(nil).Once()

	var wg sync.WaitGroup
	outcomes := make([]model.ConsensusOutcome, evaluations)
	errs := make([]error, evaluations)

	for i := 0; i < evaluations; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i], errs[i] = r.detector.OnVoteMutation(r.ctx, mutation)
		}(i)
	}
	wg.Wait()

	winners := 0
	losers := 0
	for i := 0; i < evaluations; i++ {
		assert.NoError(t, errs[i])
		switch {
		case outcomes[i].Matched:
			winners++
			assert.Equal(t, mutation.CandidateID, outcomes[i].Match.CandidateID)
		case outcomes[i].AlreadyMatched != nil:
			losers++
			assert.Equal(t, mutation.CandidateID, outcomes[i].AlreadyMatched.CandidateID)
			assert.Equal(t, "The Matrix", outcomes[i].AlreadyMatched.Title)
		}
	}

	assert.Equal(t, 1, winners)
	assert.Equal(t, evaluations-1, losers)
	r.publisher.AssertNumberOfCalls(t, "PublishMatchFound", 1)
}

func TestConsensusUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseConsensusUnitSuite))
}
