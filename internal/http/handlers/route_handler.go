// README: Route search handler.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"skyfare/internal/modules/airport"
	"skyfare/internal/modules/route"
)

type RouteHandler struct {
	airports *airport.Store
	routes   *route.Service
}

func NewRouteHandler(airports *airport.Store, routes *route.Service) *RouteHandler {
	return &RouteHandler{airports: airports, routes: routes}
}

type searchRouteReq struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Algorithm string `json:"algorithm"`
}

func (h *RouteHandler) Search(c *gin.Context) {
	var req searchRouteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !isValidCode(req.From) || !isValidCode(req.To) {
		writeError(c, http.StatusBadRequest, "airport codes must be 3 uppercase letters")
		return
	}
	algo := route.AlgorithmDijkstra
	if req.Algorithm != "" {
		var err error
		if algo, err = route.ParseAlgorithm(req.Algorithm); err != nil {
			writeRouteError(c, err)
			return
		}
	}

	airports, conns, err := h.loadNetwork(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	res, err := h.routes.ComputeRoute(c.Request.Context(), airports, conns, req.From, req.To, algo)
	if err != nil {
		writeRouteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"algorithm": algo, "route": res})
}

// loadNetwork pulls the catalogue from the store; without a database it
// serves the built-in seed network.
func (h *RouteHandler) loadNetwork(ctx context.Context) ([]airport.Airport, []airport.Connection, error) {
	if h.airports == nil {
		return airport.SeedAirports(), airport.SeedConnections(), nil
	}
	airports, err := h.airports.ListAirports(ctx)
	if err != nil {
		return nil, nil, err
	}
	conns, err := h.airports.ListConnections(ctx)
	if err != nil {
		return nil, nil, err
	}
	return airports, conns, nil
}
