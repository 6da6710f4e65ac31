package usecase_pool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ibanezbetes/trinity/core/internal/model"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInsufficientContent = errors.New("insufficient content after exclusion filtering")
	ErrContentUnavailable  = errors.New("content source unavailable")
)

const (
	// TargetPoolSize is how many candidates a fresh pool aims for.
	TargetPoolSize = 30
	// MinPoolSize is the threshold below which a refill reports
	// insufficient content instead of returning a short pool.
	MinPoolSize = 5
	// MaxFetchPages bounds how deep into the source's pagination one
	// build will go.
	MaxFetchPages = 5
)

//go:generate mockery --name=ContentSource --output=./mocks/source --filename=source.go
type ContentSource interface {
	Discover(ctx context.Context, mediaType model.MediaType, genreIDs []int, page int) ([]model.CandidateItem, int, error)
	Genres(ctx context.Context, mediaType model.MediaType) ([]model.Genre, error)
}

//go:generate mockery --name=CandidateCache --output=./mocks/cache --filename=cache.go
type CandidateCache interface {
	Get(ctx context.Context, criteria model.FilterCriteria) ([]model.CandidateItem, bool)
	Set(ctx context.Context, criteria model.FilterCriteria, items []model.CandidateItem, totalAvailable int)
}

//go:generate mockery --name=ExclusionStore --output=./mocks/exclusions --filename=exclusions.go
type ExclusionStore interface {
	TrackShown(ctx context.Context, roomID model.RoomID, ids []model.CandidateID) error
	Exclusions(ctx context.Context, roomID model.RoomID) map[model.CandidateID]struct{}
}

// Prioritizer is satisfied by ranking.Engine.
type Prioritizer interface {
	Prioritize(candidates []model.CandidateItem, criteria model.FilterCriteria) []model.PoolEntry
}

// Usecase builds and refills per-room candidate pools: cached or fetched
// raw candidates, minus the room's exclusions, ranked into tiers.
type Usecase struct {
	source     ContentSource
	cache      CandidateCache
	exclusions ExclusionStore
	ranker     Prioritizer
	logger     *slog.Logger

	targetSize int
	minSize    int
	maxPages   int
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func WithSizes(targetSize, minSize, maxPages int) Option {
	return func(u *Usecase) {
		if targetSize > 0 {
			u.targetSize = targetSize
		}
		if minSize > 0 {
			u.minSize = minSize
		}
		if maxPages > 0 {
			u.maxPages = maxPages
		}
	}
}

func New(
	source ContentSource,
	cache CandidateCache,
	exclusions ExclusionStore,
	ranker Prioritizer,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		source:     source,
		cache:      cache,
		exclusions: exclusions,
		ranker:     ranker,
		logger:     slog.Default(),
		targetSize: TargetPoolSize,
		minSize:    MinPoolSize,
		maxPages:   MaxFetchPages,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// BuildPool produces the initial ordered pool for the criteria and records
// the delivered ids in the room's exclusion set.
func (u *Usecase) BuildPool(ctx context.Context, criteria model.FilterCriteria) ([]model.PoolEntry, error) {
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}

	candidates, err := u.fetchCandidates(ctx, criteria)
	if err != nil {
		return nil, err
	}

	entries := u.ranker.Prioritize(candidates, criteria)
	u.trackDelivered(ctx, criteria.RoomID, entries)
	return entries, nil
}

// Refill rebuilds the pool, dropping everything in excludeIDs plus the
// room's persisted exclusion set. Fewer than the minimum threshold of
// surviving candidates is reported as insufficient content rather than
// silently returned short.
func (u *Usecase) Refill(ctx context.Context, criteria model.FilterCriteria, excludeIDs []model.CandidateID) ([]model.PoolEntry, error) {
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}

	excluded := u.exclusions.Exclusions(ctx, criteria.RoomID)
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	remaining, satisfied := u.cachedSurvivors(ctx, criteria, excluded)
	if !satisfied {
		// The shared cache entry is exhausted for this room; page deeper
		// into the source and refresh the cache with the wider raw set.
		var err error
		remaining, err = u.fetchUnexcluded(ctx, criteria, excluded)
		if err != nil {
			return nil, err
		}
	}

	if len(remaining) < u.minSize {
		u.logger.Info("refill below minimum threshold",
			slog.String("room_id", string(criteria.RoomID)),
			slog.Int("remaining", len(remaining)),
			slog.Int("min", u.minSize),
		)
		return nil, ErrInsufficientContent
	}

	entries := u.ranker.Prioritize(remaining, criteria)
	u.trackDelivered(ctx, criteria.RoomID, entries)
	return entries, nil
}

// AvailableGenres passes through to the content source, which already sits
// behind the retry and circuit breaker stack.
func (u *Usecase) AvailableGenres(ctx context.Context, mediaType model.MediaType) ([]model.Genre, error) {
	if !mediaType.Valid() {
		return nil, fmt.Errorf("%w: unknown media type %q", ErrInvalidInput, mediaType)
	}

	genres, err := u.source.Genres(ctx, mediaType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentUnavailable, err)
	}
	return genres, nil
}

// fetchCandidates serves the shared criteria cache when possible, and
// otherwise pages through the source until the target size is reached or
// pagination is exhausted, caching the raw result.
func (u *Usecase) fetchCandidates(ctx context.Context, criteria model.FilterCriteria) ([]model.CandidateItem, error) {
	if cached, ok := u.cache.Get(ctx, criteria); ok {
		return cached, nil
	}

	var fetched []model.CandidateItem
	totalPages := 1

	for page := 1; page <= u.maxPages && page <= totalPages; page++ {
		items, reportedTotal, err := u.source.Discover(ctx, criteria.MediaType, criteria.GenreIDs, page)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrContentUnavailable, err)
		}

		fetched = append(fetched, items...)
		totalPages = reportedTotal

		if len(fetched) >= u.targetSize {
			break
		}
	}

	u.cache.Set(ctx, criteria, fetched, totalPages)
	return fetched, nil
}

// cachedSurvivors filters the cached candidate set against the exclusion
// set. satisfied is false on a miss or when too few candidates survive,
// in which case the caller goes back to the source.
func (u *Usecase) cachedSurvivors(ctx context.Context, criteria model.FilterCriteria, excluded map[model.CandidateID]struct{}) ([]model.CandidateItem, bool) {
	cached, ok := u.cache.Get(ctx, criteria)
	if !ok {
		return nil, false
	}

	remaining := filterExcluded(cached, excluded)
	return remaining, len(remaining) >= u.minSize
}

// fetchUnexcluded pages through the source until enough unexcluded
// candidates accumulate or pagination runs out, refreshing the shared
// cache with everything fetched raw.
func (u *Usecase) fetchUnexcluded(ctx context.Context, criteria model.FilterCriteria, excluded map[model.CandidateID]struct{}) ([]model.CandidateItem, error) {
	var raw []model.CandidateItem
	var survivors []model.CandidateItem
	totalPages := 1

	for page := 1; page <= u.maxPages && page <= totalPages; page++ {
		items, reportedTotal, err := u.source.Discover(ctx, criteria.MediaType, criteria.GenreIDs, page)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrContentUnavailable, err)
		}

		raw = append(raw, items...)
		survivors = append(survivors, filterExcluded(items, excluded)...)
		totalPages = reportedTotal

		if len(survivors) >= u.targetSize {
			break
		}
	}

	u.cache.Set(ctx, criteria, raw, totalPages)
	return survivors, nil
}

func filterExcluded(items []model.CandidateItem, excluded map[model.CandidateID]struct{}) []model.CandidateItem {
	remaining := make([]model.CandidateItem, 0, len(items))
	for _, c := range items {
		if _, skip := excluded[c.ID]; skip {
			continue
		}
		remaining = append(remaining, c)
	}
	return remaining
}

// trackDelivered persists delivered ids so later refills skip them.
// A lost write only risks an already-seen item reappearing.
func (u *Usecase) trackDelivered(ctx context.Context, roomID model.RoomID, entries []model.PoolEntry) {
	if roomID == model.EmptyRoomID || len(entries) == 0 {
		return
	}

	ids := make([]model.CandidateID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.Item.ID)
	}
	if err := u.exclusions.TrackShown(ctx, roomID, ids); err != nil {
		u.logger.Warn("failed to track shown candidates",
			slog.String("room_id", string(roomID)),
			slog.String("error", err.Error()),
		)
	}
}

func validateCriteria(criteria model.FilterCriteria) error {
	if !criteria.MediaType.Valid() {
		return fmt.Errorf("%w: unknown media type %q", ErrInvalidInput, criteria.MediaType)
	}
	if len(criteria.GenreIDs) > model.MaxCriteriaGenres {
		return fmt.Errorf("%w: at most %d genres, got %d", ErrInvalidInput, model.MaxCriteriaGenres, len(criteria.GenreIDs))
	}
	return nil
}
