package infra_tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ibanezbetes/trinity/core/internal/model"
	"github.com/ibanezbetes/trinity/core/internal/resilience"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// Client talks to the TMDB discover/genre API. It classifies every
// failure so the retrier can decide whether another attempt makes sense.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type discoverResponse struct {
	Page         int                 `json:"page"`
	TotalPages   int                 `json:"total_pages"`
	TotalResults int                 `json:"total_results"`
	Results      []discoverResultDTO `json:"results"`
}

type discoverResultDTO struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	GenreIDs     []int   `json:"genre_ids"`
	Popularity   float64 `json:"popularity"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
}

type genreListResponse struct {
	Genres []genreDTO `json:"genres"`
}

type genreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Discover fetches one page of candidates for the media type, optionally
// restricted to genres, sorted by popularity. Returns the page items and
// the total page count reported by the source.
func (c *Client) Discover(ctx context.Context, mediaType model.MediaType, genreIDs []int, page int) ([]model.CandidateItem, int, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("sort_by", "popularity.desc")
	params.Set("page", strconv.Itoa(page))
	if len(genreIDs) > 0 {
		params.Set("with_genres", joinGenreIDs(genreIDs))
	}

	endpoint := fmt.Sprintf("%s/discover/%s?%s", c.baseURL, mediaType, params.Encode())

	var resp discoverResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, 0, err
	}

	items := make([]model.CandidateItem, 0, len(resp.Results))
	for _, dto := range resp.Results {
		items = append(items, dto.toModel())
	}
	return items, resp.TotalPages, nil
}

// Genres lists the source's genre taxonomy for the media type.
func (c *Client) Genres(ctx context.Context, mediaType model.MediaType) ([]model.Genre, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)

	endpoint := fmt.Sprintf("%s/genre/%s/list?%s", c.baseURL, mediaType, params.Encode())

	var resp genreListResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	genres := make([]model.Genre, 0, len(resp.Genres))
	for _, dto := range resp.Genres {
		genres = append(genres, model.Genre{ID: dto.ID, Name: dto.Name})
	}
	return genres, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return resilience.NewExternalError(resilience.KindPermanent, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests:
		return resilience.NewExternalError(resilience.KindRateLimited, fmt.Errorf("content source rate limited: %s", resp.Status))
	case resp.StatusCode >= 500:
		return resilience.NewExternalError(resilience.KindServer, fmt.Errorf("content source server error: %s", resp.Status))
	default:
		return resilience.NewExternalError(resilience.KindPermanent, fmt.Errorf("content source rejected request: %s", resp.Status))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resilience.NewExternalError(resilience.KindServer, fmt.Errorf("decode content source response: %w", err))
	}
	return nil
}

func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return resilience.NewExternalError(resilience.KindTimeout, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return resilience.NewExternalError(resilience.KindTimeout, err)
	}
	return resilience.NewExternalError(resilience.KindNetwork, err)
}

func joinGenreIDs(genreIDs []int) string {
	sorted := append([]int(nil), genreIDs...)
	sort.Ints(sorted)

	parts := make([]string, 0, len(sorted))
	for _, id := range sorted {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ",")
}

func (dto discoverResultDTO) toModel() model.CandidateItem {
	title := dto.Title
	if title == "" {
		title = dto.Name
	}
	release := dto.ReleaseDate
	if release == "" {
		release = dto.FirstAirDate
	}

	return model.CandidateItem{
		ID:         model.CandidateID(dto.ID),
		Title:      title,
		Overview:   dto.Overview,
		PosterPath: dto.PosterPath,
		GenreIDs:   dto.GenreIDs,
		Popularity: dto.Popularity,
		ReleaseAt:  release,
	}
}
