package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

type createSessionRequest struct {
	Game       string            `json:"game" binding:"required"`
	Difficulty entity.Difficulty `json:"difficulty"`
	Seed       int64             `json:"seed"`
}

type hintsRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type historyResponse struct {
	Index int `json:"index"`
	State any `json:"state"`
}

func (that *Server) listGames(c *gin.Context) {
	c.JSON(http.StatusOK, that.uSession.Games())
}

func (that *Server) createSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	snapshot, err := that.uSession.Create(c.Request.Context(), req.Game, entity.Options{
		Difficulty: req.Difficulty,
		Seed:       req.Seed,
	})
	if err != nil {
		that.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, snapshot)
}

func (that *Server) getSession(c *gin.Context) {
	snapshot, err := that.uSession.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (that *Server) deleteSession(c *gin.Context) {
	if err := that.uSession.Delete(c.Request.Context(), c.Param("id")); err != nil {
		that.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (that *Server) dispatch(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil || !json.Valid(raw) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: apperror.ErrMalformedAction.Error()})
		return
	}

	that.mutate(c, func(ctx context.Context, id string) (*entity.Snapshot, error) {
		return that.uSession.Dispatch(ctx, id, raw)
	})
}

func (that *Server) reset(c *gin.Context) {
	that.mutate(c, that.uSession.Reset)
}

func (that *Server) undo(c *gin.Context) {
	that.mutate(c, that.uSession.Undo)
}

func (that *Server) redo(c *gin.Context) {
	that.mutate(c, that.uSession.Redo)
}

func (that *Server) setHints(c *gin.Context) {
	var req hintsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	that.mutate(c, func(ctx context.Context, id string) (*entity.Snapshot, error) {
		return that.uSession.SetHints(ctx, id, *req.Enabled)
	})
}

// selectCell - body is a position or null to clear the selection.
func (that *Server) selectCell(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var pos *entity.Position
	if err = json.Unmarshal(raw, &pos); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	that.mutate(c, func(ctx context.Context, id string) (*entity.Snapshot, error) {
		return that.uSession.Select(ctx, id, pos)
	})
}

func (that *Server) history(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "index must be a number"})
		return
	}

	state, err := that.uSession.StateAt(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		that.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, historyResponse{Index: index, State: state})
}

// mutate - runs a change on the session and pushes the new snapshot to its subscribers.
func (that *Server) mutate(c *gin.Context, change func(ctx context.Context, id string) (*entity.Snapshot, error)) {
	id := c.Param("id")

	snapshot, err := change(c.Request.Context(), id)
	if err != nil {
		that.fail(c, err)
		return
	}

	if that.broadcaster != nil {
		that.broadcaster.Broadcast(id, snapshot)
	}

	c.JSON(http.StatusOK, snapshot)
}
