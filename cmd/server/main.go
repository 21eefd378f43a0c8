package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/valmiki/pkg/config"
	"github.com/dmitrymomot/valmiki/pkg/cookie"
	"github.com/dmitrymomot/valmiki/pkg/environment"
	"github.com/dmitrymomot/valmiki/pkg/httpserver"
	"github.com/dmitrymomot/valmiki/pkg/logger"
	"github.com/dmitrymomot/valmiki/pkg/redis"
	"github.com/dmitrymomot/valmiki/pkg/requestid"
	"github.com/dmitrymomot/valmiki/pkg/visitor"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var logCfg logger.Config
	config.MustLoad(&logCfg)

	log := logger.NewFromConfig(logCfg, logger.WithContextExtractors(
		requestid.LoggerExtractor(),
		visitor.LoggerExtractor(),
		environment.LoggerExtractor(),
	))
	logger.SetAsDefault(log)

	env := environment.Parse(logCfg.Env)
	ctx = environment.WithContext(ctx, env)

	if err := run(ctx, log, env); err != nil {
		log.ErrorContext(ctx, "server exited", logger.Error(err))
		os.Exit(1)
	}
}

// run loads the remaining configuration and the cookie keys, connects to
// Redis when configured and only then binds the listener.
func run(ctx context.Context, log *slog.Logger, env environment.Environment) error {
	var (
		cookieCfg  cookie.Config
		visitorCfg visitor.Config
		serverCfg  httpserver.Config
		redisCfg   redis.Config
	)
	if err := loadAll(&cookieCfg, &visitorCfg, &serverCfg, &redisCfg); err != nil {
		return err
	}

	codec, err := cookie.NewFromConfig(cookieCfg)
	if err != nil {
		return err
	}

	deps := routerDeps{
		log:        log,
		env:        env,
		codec:      codec,
		visitorCfg: visitorCfg,
	}

	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()

		deps.counter = redis.NewVisitCounter(client, redisCfg.VisitTTL)
		deps.readiness = append(deps.readiness, redis.Healthcheck(client))
		log.InfoContext(ctx, "redis connected", logger.Component("redis"))
	}

	handler, err := newRouter(deps)
	if err != nil {
		return err
	}

	return httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log)).Run(ctx, handler)
}

func loadAll(cookieCfg *cookie.Config, visitorCfg *visitor.Config, serverCfg *httpserver.Config, redisCfg *redis.Config) error {
	if err := config.Load(cookieCfg); err != nil {
		return err
	}
	if err := config.Load(visitorCfg); err != nil {
		return err
	}
	if err := config.Load(serverCfg); err != nil {
		return err
	}
	return config.Load(redisCfg)
}
