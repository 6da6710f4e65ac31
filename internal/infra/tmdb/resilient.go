package infra_tmdb

import (
	"context"

	"github.com/ibanezbetes/trinity/core/internal/model"
	"github.com/ibanezbetes/trinity/core/internal/resilience"
)

type discoverPage struct {
	items      []model.CandidateItem
	totalPages int
}

// ResilientClient decorates the content source with the retry and circuit
// breaker stack. The breaker is consulted inside each retry attempt, so an
// open circuit surfaces immediately instead of burning the retry budget.
type ResilientClient struct {
	client  *Client
	retrier *resilience.Retrier
	breaker *resilience.Breaker
}

func NewResilient(client *Client, retrier *resilience.Retrier, breaker *resilience.Breaker) *ResilientClient {
	return &ResilientClient{
		client:  client,
		retrier: retrier,
		breaker: breaker,
	}
}

func (r *ResilientClient) Discover(ctx context.Context, mediaType model.MediaType, genreIDs []int, page int) ([]model.CandidateItem, int, error) {
	result, err := resilience.DoValue(ctx, r.retrier, "tmdb.discover", func() (discoverPage, error) {
		return resilience.ExecuteValue(r.breaker, func() (discoverPage, error) {
			items, totalPages, err := r.client.Discover(ctx, mediaType, genreIDs, page)
			if err != nil {
				return discoverPage{}, err
			}
			return discoverPage{items: items, totalPages: totalPages}, nil
		})
	})
	if err != nil {
		return nil, 0, err
	}
	return result.items, result.totalPages, nil
}

func (r *ResilientClient) Genres(ctx context.Context, mediaType model.MediaType) ([]model.Genre, error) {
	return resilience.DoValue(ctx, r.retrier, "tmdb.genres", func() ([]model.Genre, error) {
		return resilience.ExecuteValue(r.breaker, func() ([]model.Genre, error) {
			return r.client.Genres(ctx, mediaType)
		})
	})
}
