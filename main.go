package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"golang.org/x/time/rate"
)

func main() {
	_ = godotenv.Load()

	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	isProduction := os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production"
	log.Info().Bool("production", isProduction).Msg("starting tagvorto")

	words, err := loadWords(wordsFilePath())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	app := &App{
		Words:          words,
		Sessions:       newSessionManager(words),
		IsProduction:   isProduction,
		CookieMaxAge:   getEnvDuration("COOKIE_MAX_AGE", 48*time.Hour),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		LimiterMap:     make(map[string]*rate.Limiter),
		StartTime:      time.Now(),
	}

	router := app.setupRouter()

	pruneCtx, stopPrune := context.WithCancel(context.Background())
	var pruneWG sync.WaitGroup
	pruneWG.Add(1)
	go func() {
		defer pruneWG.Done()
		app.Sessions.PruneLoop(pruneCtx, getEnvDuration("PRUNE_INTERVAL", time.Hour))
	}()

	startServer(router)

	stopPrune()
	pruneWG.Wait()
}

// setupRouter wires middleware and routes onto a Gin engine.
func (app *App) setupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(requestIDMiddleware())
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(corsMiddleware())

	// Game state is per-session and changes on every guess; never cache it.
	router.Use(cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	}))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		log.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	router.GET(RouteStatus, app.statusHandler)
	router.POST(RouteGuess, app.rateLimitMiddleware(), app.guessHandler)
	router.GET(RouteHealth, app.healthzHandler)

	return router
}

// startServer runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully. All session state dies with the process.
func startServer(router *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		log.Info().Msg("shutdown signal received, shutting down gracefully")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("HTTP server shutdown")
		}
		close(idleConnsClosed)
	}()

	log.Info().Str("port", port).Msg("server starting")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed to start")
	}
	<-idleConnsClosed
	log.Info().Msg("server shutdown complete")
}

// getEnv returns the value of key or fallback if unset.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
