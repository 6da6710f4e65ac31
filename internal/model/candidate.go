package model

import "time"

type CandidateID int64

const EmptyCandidateID CandidateID = 0

// CandidateItem is a raw item as returned by the content source.
// Never mutated after fetch.
type CandidateItem struct {
	ID         CandidateID
	Title      string
	Overview   string
	PosterPath string
	GenreIDs   []int
	Popularity float64
	ReleaseAt  string
}

// HasGenre reports whether the item carries the given genre id.
func (c CandidateItem) HasGenre(id int) bool {
	for _, g := range c.GenreIDs {
		if g == id {
			return true
		}
	}
	return false
}

type PriorityTier int

const (
	// TierAllGenres holds items matching every requested genre.
	TierAllGenres PriorityTier = 1
	// TierAnyGenre holds items matching at least one requested genre.
	TierAnyGenre PriorityTier = 2
	// TierPopular is the popularity-ranked fallback with no genre requirement.
	TierPopular PriorityTier = 3
)

// PoolEntry is a CandidateItem placed into a room's ordered pool.
type PoolEntry struct {
	Item    CandidateItem
	Tier    PriorityTier
	AddedAt time.Time
}

type Genre struct {
	ID   int
	Name string
}
