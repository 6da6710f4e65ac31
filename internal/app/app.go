package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/ibanezbetes/trinity/core/internal/config"
	delivery_events "github.com/ibanezbetes/trinity/core/internal/delivery/events"
	http_init "github.com/ibanezbetes/trinity/core/internal/delivery/http/init"
	http_pool "github.com/ibanezbetes/trinity/core/internal/delivery/http/pool"
	http_room "github.com/ibanezbetes/trinity/core/internal/delivery/http/room"
	http_voting "github.com/ibanezbetes/trinity/core/internal/delivery/http/voting"
	ws_room "github.com/ibanezbetes/trinity/core/internal/delivery/ws/room"
	infra_events "github.com/ibanezbetes/trinity/core/internal/infra/events"
	infra_pg_init "github.com/ibanezbetes/trinity/core/internal/infra/postgres/init"
	infra_postgres_room "github.com/ibanezbetes/trinity/core/internal/infra/postgres/room"
	infra_exclusion_set "github.com/ibanezbetes/trinity/core/internal/infra/redis/exclusionset"
	infra_redis_init "github.com/ibanezbetes/trinity/core/internal/infra/redis/init"
	infra_pool_cache "github.com/ibanezbetes/trinity/core/internal/infra/redis/poolcache"
	infra_room_pool "github.com/ibanezbetes/trinity/core/internal/infra/redis/roompool"
	infra_vote_counter "github.com/ibanezbetes/trinity/core/internal/infra/redis/votecounter"
	infra_tmdb "github.com/ibanezbetes/trinity/core/internal/infra/tmdb"
	"github.com/ibanezbetes/trinity/core/internal/ranking"
	"github.com/ibanezbetes/trinity/core/internal/resilience"
	usecase_consensus "github.com/ibanezbetes/trinity/core/internal/usecase/consensus"
	usecase_pool "github.com/ibanezbetes/trinity/core/internal/usecase/pool"
	usecase_room "github.com/ibanezbetes/trinity/core/internal/usecase/room"
	usecase_vote "github.com/ibanezbetes/trinity/core/internal/usecase/vote"
)

func Go(cfg *config.Config) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	tmdbClient := infra_tmdb.New(cfg.TMDB.APIKey,
		infra_tmdb.WithBaseURL(cfg.TMDB.BaseURL),
		infra_tmdb.WithHTTPClient(&http.Client{Timeout: cfg.TMDB.Timeout}),
	)
	retryCfg := resilience.DefaultRetryConfig()
	retryCfg.MaxRetries = cfg.Resilience.MaxRetries
	retryCfg.BaseDelay = cfg.Resilience.BaseDelay
	retryCfg.MaxDelay = cfg.Resilience.MaxDelay
	breakerCfg := resilience.DefaultBreakerConfig("tmdb")
	breakerCfg.FailureThreshold = uint32(cfg.Resilience.FailureThreshold)
	breakerCfg.ResetTimeout = cfg.Resilience.ResetTimeout

	contentSource := infra_tmdb.NewResilient(
		tmdbClient,
		resilience.NewRetrier(retryCfg, resilience.WithRetrierLogger(logger)),
		resilience.NewBreaker(breakerCfg, resilience.WithBreakerLogger(logger)),
	)

	roomRepository := infra_postgres_room.New(pgConn)
	poolCache := infra_pool_cache.New(redisConn, "pool_cache")
	exclusions := infra_exclusion_set.New(redisConn, "exclusions")
	voteCounter := infra_vote_counter.New(redisConn, "votes")
	roomPool := infra_room_pool.New(redisConn, "room_pool")

	bus := infra_events.NewBus(logger)
	defer bus.Close()

	poolUC := usecase_pool.New(contentSource, poolCache, exclusions, ranking.New())
	roomUC := usecase_room.New(roomRepository, poolUC, roomPool)
	voteUC := usecase_vote.New(roomUC, voteCounter, exclusions, bus)
	detector := usecase_consensus.New(roomRepository, roomPool, bus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := delivery_events.NewConsumer(bus, detector, delivery_events.WithLogger(logger))
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("vote mutation consumer stopped", slog.String("error", err.Error()))
		}
	}()

	hub := ws_room.NewHub(logger)
	go func() {
		if err := hub.RelayMatches(ctx, bus); err != nil && ctx.Err() == nil {
			logger.Error("match relay stopped", slog.String("error", err.Error()))
		}
	}()

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_room.New(roomUC))
	controllerPool.Add(http_pool.New(roomUC, poolUC))
	controllerPool.Add(http_voting.New(voteUC))
	controllerPool.Add(ws_room.NewController(hub, roomUC, logger))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
