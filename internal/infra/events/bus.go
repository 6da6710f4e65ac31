package infra_events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/ibanezbetes/trinity/core/internal/model"
)

const (
	TopicVoteMutations = "votes.mutations"
	TopicMatchFound    = "matches.found"
)

// VoteMutationPayload is the loosely-shaped wire record delivered by the
// change-notification source. It is validated into a model.VoteMutation
// before anything downstream sees it.
type VoteMutationPayload struct {
	RoomID       string `json:"room_id"`
	CandidateID  int64  `json:"candidate_id"`
	YesVoteCount int    `json:"yes_vote_count"`
}

type MatchFoundPayload struct {
	RoomID       string    `json:"room_id"`
	CandidateID  int64     `json:"candidate_id"`
	Title        string    `json:"title"`
	Participants []string  `json:"participants"`
	ReachedAt    time.Time `json:"reached_at"`
}

// Bus is the in-process pub/sub carrying vote mutations and match events.
// Delivery is at-least-once with no ordering guarantee, which the
// consensus handler is built to tolerate.
type Bus struct {
	pubsub *gochannel.GoChannel
}

func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}

	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: 64,
		}, watermill.NewSlogLogger(logger)),
	}
}

func (b *Bus) PublishVoteMutation(ctx context.Context, mutation model.VoteMutation) error {
	payload := VoteMutationPayload{
		RoomID:       string(mutation.RoomID),
		CandidateID:  int64(mutation.CandidateID),
		YesVoteCount: mutation.YesVoteCount,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal vote mutation: %w", err)
	}

	return b.pubsub.Publish(TopicVoteMutations, message.NewMessage(watermill.NewUUID(), data))
}

func (b *Bus) PublishMatchFound(ctx context.Context, match model.MatchInfo) error {
	payload := MatchFoundPayload{
		RoomID:       string(match.RoomID),
		CandidateID:  int64(match.CandidateID),
		Title:        match.Title,
		Participants: match.Participants,
		ReachedAt:    match.ReachedAt,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal match event: %w", err)
	}

	return b.pubsub.Publish(TopicMatchFound, message.NewMessage(watermill.NewUUID(), data))
}

func (b *Bus) SubscribeVoteMutations(ctx context.Context) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, TopicVoteMutations)
}

func (b *Bus) SubscribeMatchFound(ctx context.Context) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, TopicMatchFound)
}

func (b *Bus) Close() error {
	return b.pubsub.Close()
}

// ParseVoteMutation validates a raw payload into a typed mutation.
func ParseVoteMutation(data []byte) (model.VoteMutation, error) {
	var payload VoteMutationPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return model.VoteMutation{}, fmt.Errorf("malformed vote mutation payload: %w", err)
	}
	if payload.RoomID == "" {
		return model.VoteMutation{}, fmt.Errorf("vote mutation missing room id")
	}
	if payload.CandidateID <= 0 {
		return model.VoteMutation{}, fmt.Errorf("vote mutation missing candidate id")
	}
	if payload.YesVoteCount < 0 {
		return model.VoteMutation{}, fmt.Errorf("vote mutation has negative count")
	}

	return model.VoteMutation{
		RoomID:       model.RoomID(payload.RoomID),
		CandidateID:  model.CandidateID(payload.CandidateID),
		YesVoteCount: payload.YesVoteCount,
	}, nil
}
