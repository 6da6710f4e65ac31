package infra_exclusion_set

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/go-redis/redis"
	"github.com/ibanezbetes/trinity/core/internal/model"
)

// Driver keeps the per-room set of candidate ids that were already shown.
// The set only grows for the life of a room; a lost concurrent union
// degrades to an already-seen item reappearing, which is tolerated.
type Driver struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

type DriverOption func(*Driver)

func WithLogger(logger *slog.Logger) DriverOption {
	return func(d *Driver) {
		d.logger = logger
	}
}

func New(client *redis.Client, prefix string, opts ...DriverOption) *Driver {
	d := &Driver{
		client: client,
		prefix: prefix,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// TrackShown unions ids into the room's exclusion set. Re-tracking the
// same ids is a no-op.
func (d *Driver) TrackShown(ctx context.Context, roomID model.RoomID, ids []model.CandidateID) error {
	if len(ids) == 0 {
		return nil
	}

	members := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		members = append(members, strconv.FormatInt(int64(id), 10))
	}

	return d.client.SAdd(d.fullKey(roomID), members...).Err()
}

// Exclusions returns the room's current exclusion set. Any read failure
// defaults to the empty set: a refill then merely risks repeats.
func (d *Driver) Exclusions(ctx context.Context, roomID model.RoomID) map[model.CandidateID]struct{} {
	members, err := d.client.SMembers(d.fullKey(roomID)).Result()
	if err != nil && err != redis.Nil {
		d.logger.Warn("exclusion read failed, defaulting to empty",
			slog.String("room_id", string(roomID)),
			slog.String("error", err.Error()),
		)
		return map[model.CandidateID]struct{}{}
	}

	excluded := make(map[model.CandidateID]struct{}, len(members))
	for _, member := range members {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		excluded[model.CandidateID(id)] = struct{}{}
	}
	return excluded
}

// Clear drops the room's exclusion set, used when a room is freed.
func (d *Driver) Clear(ctx context.Context, roomID model.RoomID) error {
	return d.client.Del(d.fullKey(roomID)).Err()
}

func (d *Driver) fullKey(roomID model.RoomID) string {
	if d.prefix != "" {
		return d.prefix + ":" + string(roomID)
	}
	return string(roomID)
}
