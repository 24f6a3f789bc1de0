package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/rocketscienceinc/tabletop-backend/internal/engine"
	"github.com/rocketscienceinc/tabletop-backend/internal/hasami"
	"github.com/rocketscienceinc/tabletop-backend/internal/sticktaking"
	"github.com/rocketscienceinc/tabletop-backend/internal/tictactoe"
)

type errorResponse struct {
	Error string `json:"error"`
}

var (
	notFound = []error{apperror.ErrSessionNotFound, apperror.ErrUnknownGame}

	badRequest = []error{
		apperror.ErrMalformedAction,
		apperror.ErrUnknownAction,
		apperror.ErrInvalidDifficulty,
		engine.ErrInvalidIndex,
	}

	unprocessable = []error{
		apperror.ErrIllegalMove,
		apperror.ErrOutOfBounds,
		apperror.ErrGameFinished,
		tictactoe.ErrInvalidCell,
		tictactoe.ErrCellOccupied,
		hasami.ErrUnknownWinCondition,
		sticktaking.ErrStickTaken,
		sticktaking.ErrEmptySelection,
	}
)

// StatusOf - HTTP status for an error coming out of the session manager.
func StatusOf(err error) int {
	switch {
	case isAny(err, notFound):
		return http.StatusNotFound
	case isAny(err, badRequest):
		return http.StatusBadRequest
	case isAny(err, unprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

func (that *Server) fail(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(status, errorResponse{Error: http.StatusText(status)})
		return
	}

	c.JSON(status, errorResponse{Error: err.Error()})
}
