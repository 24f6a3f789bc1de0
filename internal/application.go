package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/rocketscienceinc/tabletop-backend/internal/config"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
	"github.com/rocketscienceinc/tabletop-backend/internal/repository"
	"github.com/rocketscienceinc/tabletop-backend/internal/repository/storage"
	"github.com/rocketscienceinc/tabletop-backend/internal/usecase"
	"github.com/rocketscienceinc/tabletop-backend/transport/rest"
	"github.com/rocketscienceinc/tabletop-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	difficulty := entity.Difficulty(conf.DefaultDifficulty)
	if !difficulty.IsValid() {
		return fmt.Errorf("%w in config: %q", apperror.ErrInvalidDifficulty, conf.DefaultDifficulty)
	}

	sessionRepo, closeRepo, err := newSessionRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	sessionManager := usecase.NewSessionManager(logger, sessionRepo, difficulty)

	wsServer := websocket.New(logger, sessionManager)
	restServer := rest.New(logger, sessionManager, wsServer)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage)
	if err = rest.Start(ctx, conf.HTTPPort, restServer.Router(wsServer.HandleWS)); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// newSessionRepository - the configured session store and a function that releases it.
func newSessionRepository(
	ctx context.Context,
	log *slog.Logger,
	conf *config.Config,
) (repository.SessionRepository, func(), error) {
	if conf.Storage == config.StorageMemory {
		return repository.NewMemorySessionRepository(conf.SessionTTL), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewSessionRepository(redisStorage.Connection, conf.SessionTTL), closeStorage, nil
}
