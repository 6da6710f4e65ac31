//go:build !integration
// +build !integration

package ranking

import (
	"math/rand"
	"testing"

	"github.com/ibanezbetes/trinity/core/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(id int64, genres ...int) model.CandidateItem {
	return model.CandidateItem{
		ID:       model.CandidateID(id),
		Title:    "candidate",
		GenreIDs: genres,
	}
}

func criteria(genres ...int) model.FilterCriteria {
	return model.FilterCriteria{
		RoomID:    "room-1",
		MediaType: model.MediaTypeMovie,
		GenreIDs:  genres,
	}
}

func seeded(seed int64) *Engine {
	return New(WithRand(rand.New(rand.NewSource(seed))))
}

func TestPrioritizeTierBlocks(t *testing.T) {
	t.Parallel()

	// 3 full matches, 4 partial, 3 with neither genre.
	candidates := []model.CandidateItem{
		candidate(1, 28, 12),
		candidate(2, 28, 12, 16),
		candidate(3, 12, 28),
		candidate(4, 28),
		candidate(5, 12),
		candidate(6, 12, 16),
		candidate(7, 28, 35),
		candidate(8, 16),
		candidate(9, 35),
		candidate(10),
	}

	entries := seeded(42).Prioritize(candidates, criteria(28, 12))
	require.Len(t, entries, len(candidates))

	tierOf := func(id model.CandidateID) model.PriorityTier {
		for _, e := range entries {
			if e.Item.ID == id {
				return e.Tier
			}
		}
		t.Fatalf("candidate %d missing from result", id)
		return 0
	}

	for _, id := range []model.CandidateID{1, 2, 3} {
		assert.Equal(t, model.TierAllGenres, tierOf(id))
	}
	for _, id := range []model.CandidateID{4, 5, 6, 7} {
		assert.Equal(t, model.TierAnyGenre, tierOf(id))
	}
	for _, id := range []model.CandidateID{8, 9, 10} {
		assert.Equal(t, model.TierPopular, tierOf(id))
	}

	// Blocks appear in tier order regardless of shuffle.
	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, entries[i-1].Tier, entries[i].Tier)
	}
	for _, e := range entries[:3] {
		assert.Equal(t, model.TierAllGenres, e.Tier)
	}
	for _, e := range entries[3:7] {
		assert.Equal(t, model.TierAnyGenre, e.Tier)
	}
	for _, e := range entries[7:] {
		assert.Equal(t, model.TierPopular, e.Tier)
	}
}

func TestPrioritizeIsPermutationOfInput(t *testing.T) {
	t.Parallel()

	candidates := []model.CandidateItem{
		candidate(1, 28), candidate(2, 12), candidate(3),
		candidate(4, 28, 12), candidate(5, 99),
	}

	entries := seeded(7).Prioritize(candidates, criteria(28, 12))
	require.Len(t, entries, len(candidates))

	seen := make(map[model.CandidateID]int)
	for _, e := range entries {
		seen[e.Item.ID]++
	}
	for _, c := range candidates {
		assert.Equal(t, 1, seen[c.ID], "candidate %d must appear exactly once", c.ID)
	}
}

func TestPrioritizeSeedNeverMovesAcrossTiers(t *testing.T) {
	t.Parallel()

	candidates := make([]model.CandidateItem, 0, 30)
	for i := int64(1); i <= 30; i++ {
		var genres []int
		switch i % 3 {
		case 0:
			genres = []int{28, 12}
		case 1:
			genres = []int{12}
		}
		candidates = append(candidates, candidate(i, genres...))
	}
	crit := criteria(28, 12)

	tiersBySeed := make([]map[model.CandidateID]model.PriorityTier, 0, 20)
	for seed := int64(0); seed < 20; seed++ {
		entries := seeded(seed).Prioritize(candidates, crit)
		require.Len(t, entries, len(candidates))

		tiers := make(map[model.CandidateID]model.PriorityTier, len(entries))
		for _, e := range entries {
			tiers[e.Item.ID] = e.Tier
		}
		tiersBySeed = append(tiersBySeed, tiers)
	}

	for _, tiers := range tiersBySeed[1:] {
		assert.Equal(t, tiersBySeed[0], tiers, "tier assignment must not depend on the seed")
	}
}

func TestPrioritizeEmptyCriteriaIsAllFallback(t *testing.T) {
	t.Parallel()

	candidates := []model.CandidateItem{
		candidate(1, 28), candidate(2, 12, 16), candidate(3),
	}

	entries := seeded(1).Prioritize(candidates, criteria())
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, model.TierPopular, e.Tier)
		assert.Equal(t, 0, Score(e.Item, nil))
	}
}

func TestScoreAgreesWithTier(t *testing.T) {
	t.Parallel()

	required := []int{28, 12, 35}
	testCases := []struct {
		name string
		item model.CandidateItem
		tier model.PriorityTier
	}{
		{name: "full match", item: candidate(1, 35, 12, 28, 16), tier: model.TierAllGenres},
		{name: "partial match", item: candidate(2, 28, 16), tier: model.TierAnyGenre},
		{name: "no match", item: candidate(3, 16, 99), tier: model.TierPopular},
		{name: "no genres at all", item: candidate(4), tier: model.TierPopular},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.tier, Tier(tc.item, required))

			score := Score(tc.item, required)
			switch tc.tier {
			case model.TierAllGenres:
				assert.Equal(t, len(required), score)
			case model.TierAnyGenre:
				assert.Greater(t, score, 0)
				assert.Less(t, score, len(required))
			case model.TierPopular:
				assert.Equal(t, 0, score)
			}
		})
	}
}
