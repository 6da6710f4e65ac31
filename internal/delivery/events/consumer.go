package delivery_events

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"

	infra_events "github.com/ibanezbetes/trinity/core/internal/infra/events"
	usecase_consensus "github.com/ibanezbetes/trinity/core/internal/usecase/consensus"
)

type MutationSource interface {
	SubscribeVoteMutations(ctx context.Context) (<-chan *message.Message, error)
}

// Consumer drains vote mutations from the bus and feeds them to the
// consensus detector. Malformed payloads are acked and dropped; store
// failures are nacked so redelivery re-triggers the evaluation.
type Consumer struct {
	source   MutationSource
	detector *usecase_consensus.Detector
	logger   *slog.Logger
}

type ConsumerOption func(*Consumer)

func WithLogger(logger *slog.Logger) ConsumerOption {
	return func(c *Consumer) {
		c.logger = logger
	}
}

func NewConsumer(source MutationSource, detector *usecase_consensus.Detector, opts ...ConsumerOption) *Consumer {
	c := &Consumer{
		source:   source,
		detector: detector,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run blocks until ctx is cancelled or the subscription closes.
func (c *Consumer) Run(ctx context.Context) error {
	messages, err := c.source.SubscribeVoteMutations(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			c.handle(ctx, msg)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg *message.Message) {
	mutation, err := infra_events.ParseVoteMutation(msg.Payload)
	if err != nil {
		c.logger.Warn("dropping malformed vote mutation",
			slog.String("message_id", msg.UUID),
			slog.String("error", err.Error()),
		)
		msg.Ack()
		return
	}

	outcome, err := c.detector.OnVoteMutation(ctx, mutation)
	if err != nil {
		c.logger.Error("consensus evaluation failed",
			slog.String("room_id", string(mutation.RoomID)),
			slog.String("error", err.Error()),
		)
		msg.Nack()
		return
	}

	if outcome.Matched {
		c.logger.Info("match recorded",
			slog.String("room_id", string(mutation.RoomID)),
			slog.Int64("candidate_id", int64(mutation.CandidateID)),
		)
	}
	msg.Ack()
}
