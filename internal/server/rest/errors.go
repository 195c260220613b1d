package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/eduhub/eduhub/internal/common"
	"github.com/gin-gonic/gin"
)

var internalError = gin.H{"error": "Internal server error."}

// fail maps a service error to a response. Anything unrecognised is logged
// and answered with the generic 500 body.
func (s *Server) fail(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, common.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists."})
	case errors.Is(err, common.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Request conflicts with existing data."})
	default:
		s.logger.Error(c.Request.Context(), "request failed",
			"error", err, "method", c.Request.Method, "path", c.Request.URL.Path, requestIDKey, c.GetString(requestIDKey))
		c.JSON(http.StatusInternalServerError, internalError)
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// pathIDs parses the named path parameters as integers. On failure it writes
// a 400 with msg and returns false.
func pathIDs(c *gin.Context, msg string, names ...string) ([]int64, bool) {
	ids := make([]int64, len(names))
	for i, name := range names {
		id, err := strconv.ParseInt(c.Param(name), 10, 64)
		if err != nil {
			badRequest(c, msg)
			return nil, false
		}
		ids[i] = id
	}
	return ids, true
}

func pathID(c *gin.Context, msg string) (int64, bool) {
	ids, ok := pathIDs(c, msg, "id")
	if !ok {
		return 0, false
	}
	return ids[0], true
}
