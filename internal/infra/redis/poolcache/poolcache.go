package infra_pool_cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis"
	"github.com/ibanezbetes/trinity/core/internal/model"
)

// DefaultTTL is how long a fetched candidate set stays usable. Expiry is
// enforced by Redis itself, so a read past the deadline is just a miss.
const DefaultTTL = 24 * time.Hour

// Driver caches raw, not-yet-prioritized candidate sets per filter
// criteria. The cache is shared across rooms with identical criteria and
// is a pure optimization: every failure degrades to a miss or a no-op,
// never to a caller-visible error.
type Driver struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

type DriverOption func(*Driver)

func WithTTL(ttl time.Duration) DriverOption {
	return func(d *Driver) {
		d.ttl = ttl
	}
}

func WithLogger(logger *slog.Logger) DriverOption {
	return func(d *Driver) {
		d.logger = logger
	}
}

func New(client *redis.Client, prefix string, opts ...DriverOption) *Driver {
	d := &Driver{
		client: client,
		prefix: prefix,
		ttl:    DefaultTTL,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type cacheEntryDTO struct {
	Items          []model.CandidateItem `json:"items"`
	TotalAvailable int                   `json:"total_available"`
	CreatedAt      time.Time             `json:"created_at"`
}

// Key derives the cache key from the media type and the genre set.
// Genre order is irrelevant: any permutation of the same set yields the
// same key.
func Key(mediaType model.MediaType, genreIDs []int) string {
	sorted := append([]int(nil), genreIDs...)
	sort.Ints(sorted)

	parts := make([]string, 0, len(sorted))
	for _, id := range sorted {
		parts = append(parts, strconv.Itoa(id))
	}
	return fmt.Sprintf("%s:%s", mediaType, strings.Join(parts, ","))
}

// Get returns the cached candidate set for the criteria, or found=false
// on a miss, an expired entry, or any Redis failure.
func (d *Driver) Get(ctx context.Context, criteria model.FilterCriteria) ([]model.CandidateItem, bool) {
	raw, err := d.client.Get(d.fullKey(criteria)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		d.logger.Warn("pool cache read failed, treating as miss", slog.String("error", err.Error()))
		return nil, false
	}

	var entry cacheEntryDTO
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		d.logger.Warn("pool cache entry corrupt, treating as miss", slog.String("error", err.Error()))
		d.Invalidate(ctx, criteria)
		return nil, false
	}

	return entry.Items, true
}

// Set stores the raw fetched candidate set. Best effort: a write failure
// is logged and swallowed, the caller proceeds as if nothing was cached.
func (d *Driver) Set(ctx context.Context, criteria model.FilterCriteria, items []model.CandidateItem, totalAvailable int) {
	entry := cacheEntryDTO{
		Items:          items,
		TotalAvailable: totalAvailable,
		CreatedAt:      time.Now(),
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		d.logger.Warn("pool cache marshal failed, skipping write", slog.String("error", err.Error()))
		return
	}

	if err := d.client.Set(d.fullKey(criteria), raw, d.ttl).Err(); err != nil {
		d.logger.Warn("pool cache write failed, skipping", slog.String("error", err.Error()))
	}
}

func (d *Driver) Invalidate(ctx context.Context, criteria model.FilterCriteria) {
	if err := d.client.Del(d.fullKey(criteria)).Err(); err != nil {
		d.logger.Warn("pool cache invalidate failed", slog.String("error", err.Error()))
	}
}

func (d *Driver) fullKey(criteria model.FilterCriteria) string {
	key := Key(criteria.MediaType, criteria.GenreIDs)
	if d.prefix != "" {
		return d.prefix + ":" + key
	}
	return key
}
