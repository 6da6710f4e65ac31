package http_voting

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/ibanezbetes/trinity/core/internal/delivery/http/common"
	"github.com/ibanezbetes/trinity/core/internal/model"
	usecase_room "github.com/ibanezbetes/trinity/core/internal/usecase/room"
	usecase_vote "github.com/ibanezbetes/trinity/core/internal/usecase/vote"
)

type Controller struct {
	usecase *usecase_vote.Usecase
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_vote.Usecase, opts ...ControllerOption) *Controller {
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
	voting := router.Group("/rooms/:room_id/voting")
	voting.POST("/votes", c.vote)
	voting.GET("/votes/:candidate_id", c.yesVotes)
}

type VoteRequestDTO struct {
	CandidateID int64  `json:"candidate_id" example:"603"`
	Vote        string `json:"vote" example:"like" enums:"like,dislike,skip"`
}

func (c *Controller) vote(ctx *gin.Context) {
	code := ctx.Param("room_id")

	var req VoteRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed body"})
		return
	}

	err := c.usecase.Vote(ctx, code, model.CandidateID(req.CandidateID), model.VoteType(req.Vote))
	if err != nil {
		c.logger.Error("failed to record vote", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_vote.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: err.Error()})
		case errors.Is(err, usecase_room.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
		case errors.Is(err, usecase_vote.ErrWrongStatus):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{Message: err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		}
		return
	}

	ctx.Status(http.StatusAccepted)
}

type YesVotesDTO struct {
	CandidateID int64 `json:"candidate_id" example:"603"`
	YesVotes    int   `json:"yes_votes" example:"2"`
}

func (c *Controller) yesVotes(ctx *gin.Context) {
	code := ctx.Param("room_id")

	candidateID, err := strconv.ParseInt(ctx.Param("candidate_id"), 10, 64)
	if err != nil || candidateID <= 0 {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed candidate id"})
		return
	}

	count, err := c.usecase.YesVotes(ctx, code, model.CandidateID(candidateID))
	if err != nil {
		c.logger.Error("failed to read vote count", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_vote.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: err.Error()})
		case errors.Is(err, usecase_room.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, YesVotesDTO{CandidateID: candidateID, YesVotes: count})
}
