package http_pool

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/ibanezbetes/trinity/core/internal/delivery/http/common"
	"github.com/ibanezbetes/trinity/core/internal/model"
	usecase_pool "github.com/ibanezbetes/trinity/core/internal/usecase/pool"
	usecase_room "github.com/ibanezbetes/trinity/core/internal/usecase/room"
)

type Controller struct {
	rooms  *usecase_room.Usecase
	pools  *usecase_pool.Usecase
	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(rooms *usecase_room.Usecase, pools *usecase_pool.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		rooms:  rooms,
		pools:  pools,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/rooms/:room_id/pool", c.pool)
	router.GET("/genres", c.genres)
}

type PoolEntryDTO struct {
	CandidateID int64  `json:"candidate_id"`
	Title       string `json:"title"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
	GenreIDs    []int  `json:"genre_ids"`
	Tier        int    `json:"tier"`
}

type PoolResponseDTO struct {
	Entries []PoolEntryDTO `json:"entries"`
}

func (c *Controller) pool(ctx *gin.Context) {
	code := ctx.Param("room_id")

	afterIndex := 0
	if raw := ctx.Query("after_index"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed after_index"})
			return
		}
		afterIndex = parsed
	}

	entries, err := c.rooms.Pool(ctx, code, afterIndex)
	if err != nil {
		c.logger.Error("failed to get pool", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_room.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
		case errors.Is(err, usecase_room.ErrWrongStatus):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{Message: err.Error()})
		case errors.Is(err, usecase_room.ErrPoolExhausted):
			ctx.JSON(http.StatusGone, http_common.ErrorResponse{Message: "no content left for this room"})
		case errors.Is(err, usecase_pool.ErrContentUnavailable):
			ctx.JSON(http.StatusBadGateway, http_common.ErrorResponse{Message: "content source unavailable"})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		}
		return
	}

	dto := PoolResponseDTO{Entries: make([]PoolEntryDTO, 0, len(entries))}
	for _, e := range entries {
		dto.Entries = append(dto.Entries, PoolEntryDTO{
			CandidateID: int64(e.Item.ID),
			Title:       e.Item.Title,
			Overview:    e.Item.Overview,
			PosterPath:  e.Item.PosterPath,
			GenreIDs:    e.Item.GenreIDs,
			Tier:        int(e.Tier),
		})
	}
	ctx.JSON(http.StatusOK, dto)
}

type GenreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (c *Controller) genres(ctx *gin.Context) {
	mediaType := model.MediaType(ctx.DefaultQuery("media_type", string(model.MediaTypeMovie)))

	genres, err := c.pools.AvailableGenres(ctx, mediaType)
	if err != nil {
		c.logger.Error("failed to list genres", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_pool.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: err.Error()})
		default:
			ctx.JSON(http.StatusBadGateway, http_common.ErrorResponse{Message: "content source unavailable"})
		}
		return
	}

	dto := make([]GenreDTO, 0, len(genres))
	for _, g := range genres {
		dto = append(dto, GenreDTO{ID: g.ID, Name: g.Name})
	}
	ctx.JSON(http.StatusOK, gin.H{"genres": dto})
}
