package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

const writeTimeout = 10 * time.Second

type uSession interface {
	Get(ctx context.Context, id string) (*entity.Snapshot, error)
	Dispatch(ctx context.Context, id string, raw json.RawMessage) (*entity.Snapshot, error)
	Reset(ctx context.Context, id string) (*entity.Snapshot, error)
	Undo(ctx context.Context, id string) (*entity.Snapshot, error)
	Redo(ctx context.Context, id string) (*entity.Snapshot, error)
	SetHints(ctx context.Context, id string, enabled bool) (*entity.Snapshot, error)
	Select(ctx context.Context, id string, pos *entity.Position) (*entity.Snapshot, error)
}

type handler func(ctx context.Context, sessionID string, payload json.RawMessage) (*entity.Snapshot, error)

// client - one connection. gorilla allows a single concurrent writer, so writes go through mu.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (that *client) send(response Response) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	return that.conn.WriteJSON(response)
}

// Server - keeps the subscribers of every session and applies the actions they send.
type Server struct {
	logger   *slog.Logger
	uSession uSession
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	sessions map[string]map[*client]struct{}

	handlers map[string]handler
}

func New(logger *slog.Logger, uSession uSession) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		uSession: uSession,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		sessions: make(map[string]map[*client]struct{}),
		handlers: make(map[string]handler),
	}

	server.handlers[ActionState] = server.handleState
	server.handlers[ActionDispatch] = server.handleDispatch
	server.handlers[ActionUndo] = server.handleUndo
	server.handlers[ActionRedo] = server.handleRedo
	server.handlers[ActionReset] = server.handleReset
	server.handlers[ActionHints] = server.handleHints
	server.handlers[ActionSelect] = server.handleSelect

	return server
}

// HandleWS - upgrades GET /ws?session=<id>, sends the current snapshot and serves messages until the client leaves.
func (that *Server) HandleWS(c *gin.Context) {
	log := that.logger.With("method", "HandleWS")

	sessionID := c.Query("session")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session"})
		return
	}

	snapshot, err := that.uSession.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	conn, err := that.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	cl := &client{conn: conn}
	that.subscribe(sessionID, cl)
	defer that.unsubscribe(sessionID, cl)

	log.Info("WebSocket connection established", "session", sessionID)

	if err = cl.send(Response{Action: ActionState, Payload: snapshot}); err != nil {
		log.Error("failed to send snapshot", "error", err)
		return
	}

	that.handleMessages(c.Request.Context(), sessionID, cl)
}

// Broadcast - sends the snapshot to every subscriber of the session.
func (that *Server) Broadcast(sessionID string, snapshot *entity.Snapshot) {
	that.mu.RLock()
	clients := make([]*client, 0, len(that.sessions[sessionID]))
	for cl := range that.sessions[sessionID] {
		clients = append(clients, cl)
	}
	that.mu.RUnlock()

	for _, cl := range clients {
		if err := cl.send(Response{Action: ActionState, Payload: snapshot}); err != nil {
			that.logger.Warn("failed to send snapshot", "session", sessionID, "error", err)
			that.unsubscribe(sessionID, cl)
		}
	}
}

// Subscribers - number of live connections of the session.
func (that *Server) Subscribers(sessionID string) int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.sessions[sessionID])
}

func (that *Server) handleMessages(ctx context.Context, sessionID string, cl *client) {
	log := that.logger.With("method", "handleMessages", "session", sessionID)

	for {
		var message Message
		if err := cl.conn.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		handle, ok := that.handlers[message.Action]
		if !ok {
			that.replyError(cl, message.Action, fmt.Errorf("%w: %q", apperror.ErrUnknownAction, message.Action))
			continue
		}

		snapshot, err := handle(ctx, sessionID, message.Payload)
		if err != nil {
			log.Debug("message rejected", "action", message.Action, "error", err)
			that.replyError(cl, message.Action, err)
			continue
		}

		if message.Action == ActionState {
			if err = cl.send(Response{Action: ActionState, Payload: snapshot}); err != nil {
				log.Error("failed to send snapshot", "error", err)
				return
			}
			continue
		}

		that.Broadcast(sessionID, snapshot)
	}
}

func (that *Server) replyError(cl *client, action string, err error) {
	if sendErr := cl.send(Response{Action: ActionError, Payload: action, Error: err.Error()}); sendErr != nil {
		that.logger.Error("failed to send error", "error", sendErr)
	}
}

func (that *Server) subscribe(sessionID string, cl *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[sessionID]; !ok {
		that.sessions[sessionID] = make(map[*client]struct{})
	}
	that.sessions[sessionID][cl] = struct{}{}
}

func (that *Server) unsubscribe(sessionID string, cl *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	clients, ok := that.sessions[sessionID]
	if !ok {
		return
	}

	if _, ok = clients[cl]; !ok {
		return
	}

	delete(clients, cl)
	if len(clients) == 0 {
		delete(that.sessions, sessionID)
	}

	_ = cl.conn.Close()
}
