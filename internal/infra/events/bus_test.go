//go:build !integration

package infra_events

import (
	"context"
	"testing"
	"time"

	"github.com/ibanezbetes/trinity/core/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVoteMutation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		payload     string
		expectError bool
		expected    model.VoteMutation
	}{
		{
			name:    "Valid payload",
			payload: `{"room_id": "room-1", "candidate_id": 603, "yes_vote_count": 3}`,
			expected: model.VoteMutation{
				RoomID:       model.RoomID("room-1"),
				CandidateID:  model.CandidateID(603),
				YesVoteCount: 3,
			},
		},
		{
			name:        "Malformed JSON",
			payload:     `{"room_id":`,
			expectError: true,
		},
		{
			name:        "Missing room id",
			payload:     `{"candidate_id": 603, "yes_vote_count": 3}`,
			expectError: true,
		},
		{
			name:        "Missing candidate id",
			payload:     `{"room_id": "room-1", "yes_vote_count": 3}`,
			expectError: true,
		},
		{
			name:        "Negative count",
			payload:     `{"room_id": "room-1", "candidate_id": 603, "yes_vote_count": -1}`,
			expectError: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mutation, err := ParseVoteMutation([]byte(tc.payload))

			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, mutation)
			}
		})
	}
}

func TestVoteMutationRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	bus := NewBus(nil)
	defer bus.Close()

	messages, err := bus.SubscribeVoteMutations(ctx)
	require.NoError(t, err)

	published := model.VoteMutation{
		RoomID:       model.RoomID("room-1"),
		CandidateID:  model.CandidateID(603),
		YesVoteCount: 2,
	}
	require.NoError(t, bus.PublishVoteMutation(ctx, published))

	select {
	case msg := <-messages:
		received, err := ParseVoteMutation(msg.Payload)
		require.NoError(t, err)
		assert.Equal(t, published, received)
		msg.Ack()
	case <-ctx.Done():
		t.Fatal("timed out waiting for vote mutation")
	}
}

func TestMatchFoundRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	bus := NewBus(nil)
	defer bus.Close()

	messages, err := bus.SubscribeMatchFound(ctx)
	require.NoError(t, err)

	match := model.MatchInfo{
		RoomID:       model.RoomID("room-1"),
		CandidateID:  model.CandidateID(603),
		Title:        "The Matrix",
		Participants: []string{"a", "b"},
		ReachedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, bus.PublishMatchFound(ctx, match))

	select {
	case msg := <-messages:
		assert.JSONEq(t, `{
			"room_id": "room-1",
			"candidate_id": 603,
			"title": "The Matrix",
			"participants": ["a", "b"],
			"reached_at": "2025-06-01T12:00:00Z"
		}`, string(msg.Payload))
		msg.Ack()
	case <-ctx.Done():
		t.Fatal("timed out waiting for match event")
	}
}
