package infra_room_pool

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis"
	"github.com/ibanezbetes/trinity/core/internal/model"
)

var ErrEntryNotFound = errors.New("pool entry not found")

// Driver persists each room's ordered pool. The order fixed at build time
// is what clients page through; it is never re-shuffled on read. The data
// is reconstructible through a refill, so plain last-writer-wins storage
// is enough.
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

func (d *Driver) SavePool(ctx context.Context, roomID model.RoomID, entries []model.PoolEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return d.client.Set(d.fullKey(roomID), raw, 0).Err()
}

func (d *Driver) LoadPool(ctx context.Context, roomID model.RoomID) ([]model.PoolEntry, error) {
	raw, err := d.client.Get(d.fullKey(roomID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []model.PoolEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Title resolves a candidate's title from the room's pool, used to build
// match metadata after consensus is confirmed.
func (d *Driver) Title(ctx context.Context, roomID model.RoomID, candidateID model.CandidateID) (string, error) {
	entries, err := d.LoadPool(ctx, roomID)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if e.Item.ID == candidateID {
			return e.Item.Title, nil
		}
	}
	return "", ErrEntryNotFound
}

func (d *Driver) Clear(ctx context.Context, roomID model.RoomID) error {
	return d.client.Del(d.fullKey(roomID)).Err()
}

func (d *Driver) fullKey(roomID model.RoomID) string {
	if d.prefix != "" {
		return d.prefix + ":" + string(roomID)
	}
	return string(roomID)
}
