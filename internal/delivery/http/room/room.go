package http_room

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/ibanezbetes/trinity/core/internal/delivery/http/common"
	"github.com/ibanezbetes/trinity/core/internal/model"
	usecase_room "github.com/ibanezbetes/trinity/core/internal/usecase/room"
)

type Controller struct {
	usecase *usecase_room.Usecase
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_room.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/rooms")
	{
		rooms.POST("", c.book)
		rooms.GET("/:room_id/status", c.status)
		rooms.POST("/:room_id/participations", c.participate)
		rooms.PATCH("/:room_id/criteria", c.updateCriteria)
		rooms.POST("/:room_id/voting", c.startVoting)
		rooms.GET("/:room_id/match", c.match)
		rooms.DELETE("/:room_id", c.free)
	}
}

type CriteriaDTO struct {
	MediaType string `json:"media_type" example:"movie" enums:"movie,tv"`
	GenreIDs  []int  `json:"genre_ids" example:"28,12"`
}

type BookResponseDTO struct {
	RoomCode string `json:"room_code"`
}

func (c *Controller) book(ctx *gin.Context) {
	var req CriteriaDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed body"})
		return
	}

	roomCode, ownerToken, err := c.usecase.Book(ctx, model.MediaType(req.MediaType), req.GenreIDs)
	if err != nil {
		c.logger.Error("failed to book room", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_room.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: err.Error()})
		case errors.Is(err, usecase_room.ErrRoomsUnavailable):
			ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{Message: "unavailable"})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		}
		return
	}

	ctx.Header("X-user-token", ownerToken)
	ctx.JSON(http.StatusCreated, BookResponseDTO{RoomCode: roomCode})
}

type StatusResponseDTO struct {
	Status string `json:"status"`
}

func (c *Controller) status(ctx *gin.Context) {
	code := ctx.Param("room_id")

	status, err := c.usecase.Status(ctx, code)
	if err != nil {
		c.respondError(ctx, "failed to get status", err)
		return
	}

	ctx.JSON(http.StatusOK, StatusResponseDTO{Status: string(status)})
}

type ParticipateResponseDTO struct {
	UserID string `json:"user_id"`
}

func (c *Controller) participate(ctx *gin.Context) {
	code := ctx.Param("room_id")

	var userID *string
	if token := ctx.GetHeader("X-user-token"); token != "" {
		userID = &token
	}

	id, err := c.usecase.Join(ctx, code, userID)
	if err != nil {
		c.respondError(ctx, "failed to join room", err)
		return
	}

	ctx.JSON(http.StatusCreated, ParticipateResponseDTO{UserID: id})
}

func (c *Controller) updateCriteria(ctx *gin.Context) {
	code := ctx.Param("room_id")

	var req CriteriaDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed body"})
		return
	}

	err := c.usecase.UpdateCriteria(ctx, code, model.MediaType(req.MediaType), req.GenreIDs)
	if err != nil {
		if errors.Is(err, usecase_room.ErrCriteriaLocked) {
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{Message: "criteria are locked once voting starts"})
			return
		}
		c.respondError(ctx, "failed to update criteria", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Controller) startVoting(ctx *gin.Context) {
	code := ctx.Param("room_id")

	if err := c.usecase.StartVoting(ctx, code); err != nil {
		c.respondError(ctx, "failed to start voting", err)
		return
	}

	ctx.Status(http.StatusCreated)
}

type MatchResponseDTO struct {
	CandidateID  int64    `json:"candidate_id"`
	Title        string   `json:"title"`
	Participants []string `json:"participants"`
}

func (c *Controller) match(ctx *gin.Context) {
	code := ctx.Param("room_id")

	match, err := c.usecase.Match(ctx, code)
	if err != nil {
		c.respondError(ctx, "failed to get match", err)
		return
	}

	ctx.JSON(http.StatusOK, MatchResponseDTO{
		CandidateID:  int64(match.CandidateID),
		Title:        match.Title,
		Participants: match.Participants,
	})
}

func (c *Controller) free(ctx *gin.Context) {
	code := ctx.Param("room_id")

	if err := c.usecase.Free(ctx, code); err != nil {
		c.respondError(ctx, "failed to free room", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Controller) respondError(ctx *gin.Context, msg string, err error) {
	c.logger.Error(msg, slog.String("error", err.Error()))
	switch {
	case errors.Is(err, usecase_room.ErrResourceNotFound):
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
	case errors.Is(err, usecase_room.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: err.Error()})
	case errors.Is(err, usecase_room.ErrWrongStatus):
		ctx.JSON(http.StatusConflict, http_common.ErrorResponse{Message: err.Error()})
	case errors.Is(err, usecase_room.ErrPoolExhausted):
		ctx.JSON(http.StatusGone, http_common.ErrorResponse{Message: "no content left for this room"})
	default:
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
	}
}
