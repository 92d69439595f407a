// README: Airport catalogue and admin connection handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyfare/internal/modules/airport"
	"skyfare/internal/modules/route"
)

type AirportHandler struct {
	airports   *airport.Store
	routeCache *route.Store
}

func NewAirportHandler(airports *airport.Store, routeCache *route.Store) *AirportHandler {
	return &AirportHandler{airports: airports, routeCache: routeCache}
}

func (h *AirportHandler) List(c *gin.Context) {
	if h.airports == nil {
		writeJSON(c, http.StatusOK, gin.H{"airports": airport.SeedAirports()})
		return
	}
	airports, err := h.airports.ListAirports(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"airports": airports})
}

type setActiveReq struct {
	Active bool `json:"active"`
}

// SetConnectionActive toggles a link and drops cached routes, since any
// cached result may now traverse a dead edge.
func (h *AirportHandler) SetConnectionActive(c *gin.Context) {
	from, to := c.Param("from"), c.Param("to")
	if !isValidCode(from) || !isValidCode(to) {
		writeError(c, http.StatusBadRequest, "airport codes must be 3 uppercase letters")
		return
	}
	var req setActiveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if h.airports == nil {
		writeError(c, http.StatusServiceUnavailable, "catalogue store not configured")
		return
	}
	ok, err := h.airports.SetConnectionActive(c.Request.Context(), from, to, req.Active)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		writeError(c, http.StatusNotFound, "connection not found")
		return
	}
	if h.routeCache != nil {
		_ = h.routeCache.Invalidate(c.Request.Context())
	}
	writeJSON(c, http.StatusOK, gin.H{"from": from, "to": to, "active": req.Active})
}
