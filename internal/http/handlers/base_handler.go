// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skyfare/internal/modules/booking"
	"skyfare/internal/modules/route"
)

type errorResponse struct {
	Error string `json:"error"`
}

// isValidCode ensures airport codes are exactly three uppercase letters.
func isValidCode(v string) bool {
	if len(v) != 3 {
		return false
	}
	for _, c := range v {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeRouteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, route.ErrNoRoute):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, route.ErrUnknownAlgorithm):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeBookingError(c *gin.Context, err error) {
	switch err {
	case booking.ErrBadRequest:
		writeError(c, http.StatusBadRequest, err.Error())
	case booking.ErrNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	case booking.ErrInvalidState, booking.ErrConflict:
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
