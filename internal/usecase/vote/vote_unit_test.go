//go:build !integration

package usecase_vote

import (
	"context"
	"errors"
	"testing"

	"github.com/ibanezbetes/trinity/core/internal/model"
	counter_mocks "github.com/ibanezbetes/trinity/core/internal/usecase/vote/mocks/counter"
	exclusion_mocks "github.com/ibanezbetes/trinity/core/internal/usecase/vote/mocks/exclusions"
	publisher_mocks "github.com/ibanezbetes/trinity/core/internal/usecase/vote/mocks/publisher"
	room_mocks "github.com/ibanezbetes/trinity/core/internal/usecase/vote/mocks/rooms"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type UsecaseVoteUnitSuite struct {
	suite.Suite
}

type voteResources struct {
	usecase    *Usecase
	rooms      *room_mocks.RoomSource
	counter    *counter_mocks.VoteCounter
	exclusions *exclusion_mocks.ExclusionTracker
	publisher  *publisher_mocks.MutationPublisher
	ctx        context.Context
}

func initVoteResources(t provider.T) *voteResources {
	rooms := room_mocks.NewRoomSource(t)
	counter := counter_mocks.NewVoteCounter(t)
	exclusions := exclusion_mocks.NewExclusionTracker(t)
	publisher := publisher_mocks.NewMutationPublisher(t)
	usecase := New(rooms, counter, exclusions, publisher)

	return &voteResources{
		usecase:    usecase,
		rooms:      rooms,
		counter:    counter,
		exclusions: exclusions,
		publisher:  publisher,
		ctx:        context.Background(),
	}
}

func votingRoom() model.Room {
	return model.Room{
		ID:          model.RoomID("room-1"),
		PublicCode:  "123456",
		Status:      model.StatusVotingInProgress,
		MemberCount: 3,
	}
}

func (s *UsecaseVoteUnitSuite) TestLikePublishesPostIncrementCount(t provider.T) {
	t.Parallel()

	r := initVoteResources(t)
	room := votingRoom()
	candidateID := model.CandidateID(603)

	r.rooms.On("RoomByCode", r.ctx, room.PublicCode).Return(room, nil).Once()
	r.exclusions.On("TrackShown", r.ctx, room.ID, []model.CandidateID{candidateID}).Return(nil).Once()
	r.counter.On("IncrementYes", r.ctx, room.ID, candidateID).Return(2, nil).Once()
	r.publisher.On("PublishVoteMutation", r.ctx, model.VoteMutation{
		RoomID:       room.ID,
		CandidateID:  candidateID,
		YesVoteCount: 2,
	}).Return(nil).Once()

	err := r.usecase.Vote(r.ctx, room.PublicCode, candidateID, model.VoteLike)

	assert.NoError(t, err)
}

func (s *UsecaseVoteUnitSuite) TestNonLikeVotesOnlyMarkSeen(t provider.T) {
	t.Parallel()

	for _, voteType := range []model.VoteType{model.VoteDislike, model.VoteSkip} {
		t.Run(string(voteType), func(t provider.T) {
			t.Parallel()
			r := initVoteResources(t)
			room := votingRoom()
			candidateID := model.CandidateID(603)

			r.rooms.On("RoomByCode", r.ctx, room.PublicCode).Return(room, nil).Once()
			r.exclusions.On("TrackShown", r.ctx, room.ID, []model.CandidateID{candidateID}).Return(nil).Once()

			err := r.usecase.Vote(r.ctx, room.PublicCode, candidateID, voteType)

			assert.NoError(t, err)
			r.counter.AssertNotCalled(t, "IncrementYes")
			r.publisher.AssertNotCalled(t, "PublishVoteMutation")
		})
	}
}

func (s *UsecaseVoteUnitSuite) TestVoteValidation(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		candidateID model.CandidateID
		voteType    model.VoteType
	}{
		{
			name:        "Should reject empty candidate id",
			candidateID: model.EmptyCandidateID,
			voteType:    model.VoteLike,
		},
		{
			name:        "Should reject unknown vote type",
			candidateID: model.CandidateID(603),
			voteType:    model.VoteType("meh"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initVoteResources(t)

			err := r.usecase.Vote(r.ctx, "123456", tc.candidateID, tc.voteType)

			assert.ErrorIs(t, err, ErrInvalidInput)
			r.rooms.AssertNotCalled(t, "RoomByCode")
		})
	}
}

func (s *UsecaseVoteUnitSuite) TestVoteOutsideVotingStatus(t provider.T) {
	t.Parallel()

	r := initVoteResources(t)
	room := votingRoom()
	room.Status = model.StatusWaitingForMembers

	r.rooms.On("RoomByCode", r.ctx, room.PublicCode).Return(room, nil).Once()

	err := r.usecase.Vote(r.ctx, room.PublicCode, model.CandidateID(603), model.VoteLike)

	assert.ErrorIs(t, err, ErrWrongStatus)
	r.counter.AssertNotCalled(t, "IncrementYes")
}

func (s *UsecaseVoteUnitSuite) TestLikeSurvivesTrackingFailure(t provider.T) {
	t.Parallel()

	r := initVoteResources(t)
	room := votingRoom()
	candidateID := model.CandidateID(603)

	r.rooms.On("RoomByCode", r.ctx, room.PublicCode).Return(room, nil).Once()
	r.exclusions.On("TrackShown", r.ctx, room.ID, []model.CandidateID{candidateID}).
		Return(errors.New("redis down")).Once()
	r.counter.On("IncrementYes", r.ctx, room.ID, candidateID).Return(1, nil).Once()
	r.publisher.On("PublishVoteMutation", r.ctx, model.VoteMutation{
		RoomID:       room.ID,
		CandidateID:  candidateID,
		YesVoteCount: 1,
	}).Return(nil).Once()

	err := r.usecase.Vote(r.ctx, room.PublicCode, candidateID, model.VoteLike)

	assert.NoError(t, err)
}

func (s *UsecaseVoteUnitSuite) TestCounterFailure(t provider.T) {
	t.Parallel()

	r := initVoteResources(t)
	room := votingRoom()
	candidateID := model.CandidateID(603)

	r.rooms.On("RoomByCode", r.ctx, room.PublicCode).Return(room, nil).Once()
	r.exclusions.On("TrackShown", r.ctx, room.ID, []model.CandidateID{candidateID}).Return(nil).Once()
	r.counter.On("IncrementYes", r.ctx, room.ID, candidateID).Return(0, errors.New("incr failed")).Once()

	err := r.usecase.Vote(r.ctx, room.PublicCode, candidateID, model.VoteLike)

	assert.ErrorIs(t, err, ErrUnableToSaveVote)
	r.publisher.AssertNotCalled(t, "PublishVoteMutation")
}

func (s *UsecaseVoteUnitSuite) TestYesVotes(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		candidateID   model.CandidateID
		setupMocks    func(r *voteResources, room model.Room)
		expected      int
		expectError   bool
		expectedError error
	}{
		{
			name:        "Should return the current count",
			candidateID: model.CandidateID(603),
			setupMocks: func(r *voteResources, room model.Room) {
				r.rooms.On("RoomByCode", r.ctx, room.PublicCode).Return(room, nil).Once()
				r.counter.On("YesCount", r.ctx, room.ID, model.CandidateID(603)).Return(2, nil).Once()
			},
			expected: 2,
		},
		{
			name:        "Should read zero for an unvoted candidate",
			candidateID: model.CandidateID(604),
			setupMocks: func(r *voteResources, room model.Room) {
				r.rooms.On("RoomByCode", r.ctx, room.PublicCode).Return(room, nil).Once()
				r.counter.On("YesCount", r.ctx, room.ID, model.CandidateID(604)).Return(0, nil).Once()
			},
			expected: 0,
		},
		{
			name:          "Should reject empty candidate id",
			candidateID:   model.EmptyCandidateID,
			setupMocks:    func(r *voteResources, room model.Room) {},
			expectError:   true,
			expectedError: ErrInvalidInput,
		},
		{
			name:        "Should surface counter failure",
			candidateID: model.CandidateID(603),
			setupMocks: func(r *voteResources, room model.Room) {
				r.rooms.On("RoomByCode", r.ctx, room.PublicCode).Return(room, nil).Once()
				r.counter.On("YesCount", r.ctx, room.ID, model.CandidateID(603)).
					Return(0, errors.New("redis down")).Once()
			},
			expectError:   true,
			expectedError: ErrUnableToReadVotes,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initVoteResources(t)
			room := votingRoom()
			tc.setupMocks(r, room)

			count, err := r.usecase.YesVotes(r.ctx, room.PublicCode, tc.candidateID)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, count)
			}
			r.counter.AssertExpectations(t)
		})
	}
}

func TestVoteUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseVoteUnitSuite))
}
