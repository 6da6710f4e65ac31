package ranking

import (
	"math/rand"
	"time"

	"github.com/ibanezbetes/trinity/core/internal/model"
)

// Engine assigns candidates to priority tiers against a room's filter
// criteria and shuffles within each tier. Tier assignment is deterministic;
// only the order inside a tier depends on the random source.
type Engine struct {
	rng *rand.Rand
	now func() time.Time
}

type EngineOption func(*Engine)

func WithRand(rng *rand.Rand) EngineOption {
	return func(e *Engine) {
		e.rng = rng
	}
}

func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

func New(opts ...EngineOption) *Engine {
	e := &Engine{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Prioritize returns a permutation of candidates ordered as the tier-1
// block, then tier-2, then tier-3. Shuffling never moves an item across
// a tier boundary. The order is fixed at build time and not re-shuffled
// on later reads of the pool.
func (e *Engine) Prioritize(candidates []model.CandidateItem, criteria model.FilterCriteria) []model.PoolEntry {
	var tier1, tier2, tier3 []model.CandidateItem

	for _, c := range candidates {
		switch Tier(c, criteria.GenreIDs) {
		case model.TierAllGenres:
			tier1 = append(tier1, c)
		case model.TierAnyGenre:
			tier2 = append(tier2, c)
		default:
			tier3 = append(tier3, c)
		}
	}

	e.shuffle(tier1)
	e.shuffle(tier2)
	e.shuffle(tier3)

	addedAt := e.now()
	entries := make([]model.PoolEntry, 0, len(candidates))
	entries = e.annotate(entries, tier1, model.TierAllGenres, addedAt)
	entries = e.annotate(entries, tier2, model.TierAnyGenre, addedAt)
	entries = e.annotate(entries, tier3, model.TierPopular, addedAt)

	return entries
}

// Tier classifies one candidate. With no required genres every candidate
// lands in the popularity fallback tier.
func Tier(item model.CandidateItem, requiredGenres []int) model.PriorityTier {
	if len(requiredGenres) == 0 {
		return model.TierPopular
	}

	matched := Score(item, requiredGenres)
	switch {
	case matched == len(requiredGenres):
		return model.TierAllGenres
	case matched > 0:
		return model.TierAnyGenre
	default:
		return model.TierPopular
	}
}

// Score counts how many of the required genres the item carries.
// It agrees with Tier: a full score means TierAllGenres, a partial one
// TierAnyGenre, zero TierPopular.
func Score(item model.CandidateItem, requiredGenres []int) int {
	score := 0
	for _, id := range requiredGenres {
		if item.HasGenre(id) {
			score++
		}
	}
	return score
}

func (e *Engine) shuffle(items []model.CandidateItem) {
	e.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

func (e *Engine) annotate(dst []model.PoolEntry, items []model.CandidateItem, tier model.PriorityTier, addedAt time.Time) []model.PoolEntry {
	for _, item := range items {
		dst = append(dst, model.PoolEntry{
			Item:    item,
			Tier:    tier,
			AddedAt: addedAt,
		})
	}
	return dst
}
