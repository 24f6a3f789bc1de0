package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type uSession interface {
	Games() []entity.Manifest
	Create(ctx context.Context, game string, opts entity.Options) (*entity.Snapshot, error)
	Get(ctx context.Context, id string) (*entity.Snapshot, error)
	Dispatch(ctx context.Context, id string, raw json.RawMessage) (*entity.Snapshot, error)
	Reset(ctx context.Context, id string) (*entity.Snapshot, error)
	Undo(ctx context.Context, id string) (*entity.Snapshot, error)
	Redo(ctx context.Context, id string) (*entity.Snapshot, error)
	SetHints(ctx context.Context, id string, enabled bool) (*entity.Snapshot, error)
	Select(ctx context.Context, id string, pos *entity.Position) (*entity.Snapshot, error)
	StateAt(ctx context.Context, id string, index int) (any, error)
	Delete(ctx context.Context, id string) error
}

// Broadcaster - pushes snapshots to live subscribers of a session.
type Broadcaster interface {
	Broadcast(sessionID string, snapshot *entity.Snapshot)
}

type Server struct {
	logger      *slog.Logger
	uSession    uSession
	broadcaster Broadcaster
}

func New(logger *slog.Logger, uSession uSession, broadcaster Broadcaster) *Server {
	return &Server{
		logger:      logger.With("component", "rest"),
		uSession:    uSession,
		broadcaster: broadcaster,
	}
}

// Router - every HTTP route. wsHandler is mounted on /ws when given.
func (that *Server) Router(wsHandler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), that.requestLogger())

	router.GET("/ping", NewPingHandler().PingHandler)
	router.GET("/games", that.listGames)

	sessions := router.Group("/sessions")
	sessions.POST("", that.createSession)
	sessions.GET("/:id", that.getSession)
	sessions.DELETE("/:id", that.deleteSession)
	sessions.POST("/:id/actions", that.dispatch)
	sessions.POST("/:id/reset", that.reset)
	sessions.POST("/:id/undo", that.undo)
	sessions.POST("/:id/redo", that.redo)
	sessions.PUT("/:id/hints", that.setHints)
	sessions.PUT("/:id/selection", that.selectCell)
	sessions.GET("/:id/history/:index", that.history)

	if wsHandler != nil {
		router.GET("/ws", wsHandler)
	}

	return router
}

// Start - serves until ctx is canceled, then shuts down gracefully.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}

		return nil
	}
}

func (that *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		that.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
