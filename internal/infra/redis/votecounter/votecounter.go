package infra_vote_counter

import (
	"context"
	"fmt"

	"github.com/go-redis/redis"
	"github.com/ibanezbetes/trinity/core/internal/model"
)

// Driver holds one atomic yes-vote counter per (room, candidate) pair.
// Concurrent submissions go through Redis INCR, so every mutation event
// carries an exact post-increment count.
type Driver struct {
	client *redis.Client
	prefix string
}

func New(client *redis.Client, prefix string) *Driver {
	return &Driver{
		client: client,
		prefix: prefix,
	}
}

// IncrementYes bumps the yes-vote counter and returns the new value.
func (d *Driver) IncrementYes(ctx context.Context, roomID model.RoomID, candidateID model.CandidateID) (int, error) {
	count, err := d.client.Incr(d.fullKey(roomID, candidateID)).Result()
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// YesCount reads the current counter, zero when absent.
func (d *Driver) YesCount(ctx context.Context, roomID model.RoomID, candidateID model.CandidateID) (int, error) {
	count, err := d.client.Get(d.fullKey(roomID, candidateID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (d *Driver) fullKey(roomID model.RoomID, candidateID model.CandidateID) string {
	key := fmt.Sprintf("%s:%d", roomID, candidateID)
	if d.prefix != "" {
		return d.prefix + ":" + key
	}
	return key
}
