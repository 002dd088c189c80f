package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "casa_schuck/internal/adapters/http_server"
	"casa_schuck/internal/adapters/observability"
	redisad "casa_schuck/internal/adapters/redis"
	"casa_schuck/internal/app"
	"casa_schuck/internal/booking"
	"casa_schuck/internal/domain"
	"casa_schuck/internal/i18n"
	"casa_schuck/internal/shared"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// deps
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	dicts := app.NewDictionaryService(i18n.NewSource(), cache, cfg.CacheTTL)

	// Warm and validate every bundle before accepting traffic: a broken
	// translation is a deploy defect, caught here rather than mid-request.
	g, ctx := errgroup.WithContext(context.Background())
	for _, loc := range domain.Locales() {
		loc := loc
		g.Go(func() error {
			_, err := dicts.Get(ctx, loc)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("dictionary validation failed")
	}
	log.Info().Msg("dictionaries loaded")

	links := booking.NewBuilder(cfg.PropertyID)

	// http
	srv := server.New(cfg.RateRPS, cfg.RateBurst)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Dicts:    dicts,
		Links:    links,
		WhatsApp: booking.WhatsAppLink(cfg.WhatsAppNumber),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("web listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
