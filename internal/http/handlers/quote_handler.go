// README: Quote handler; computes a route and prices the three fare classes.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"skyfare/internal/config"
	"skyfare/internal/modules/pricing"
	"skyfare/internal/modules/route"
)

type QuoteHandler struct {
	routeHandler *RouteHandler
	pricing      *pricing.Service
	pricingStore *pricing.Store
	defaults     config.PricingDefaults
}

func NewQuoteHandler(routeHandler *RouteHandler, svc *pricing.Service, store *pricing.Store, defaults config.PricingDefaults) *QuoteHandler {
	return &QuoteHandler{routeHandler: routeHandler, pricing: svc, pricingStore: store, defaults: defaults}
}

type quoteReq struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Algorithm  string `json:"algorithm"`
	Passengers int    `json:"passengers"`
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !isValidCode(req.From) || !isValidCode(req.To) {
		writeError(c, http.StatusBadRequest, "airport codes must be 3 uppercase letters")
		return
	}
	if req.Passengers < 1 {
		writeError(c, http.StatusBadRequest, "passengers must be at least 1")
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

	ctx := c.Request.Context()
	airports, conns, err := h.routeHandler.loadNetwork(ctx)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	res, err := h.routeHandler.routes.ComputeRoute(ctx, airports, conns, req.From, req.To, algo)
	if err != nil {
		writeRouteError(c, err)
		return
	}

	offers := h.pricing.GenerateQuote(ctx, res.Path, res.TotalDistanceKm, req.Passengers, h.priceConfig(ctx))
	writeJSON(c, http.StatusOK, gin.H{
		"route":  res,
		"offers": offers,
	})
}

// priceConfig prefers the active database row and falls back to the env
// defaults, so quoting works without a configured admin console.
func (h *QuoteHandler) priceConfig(ctx context.Context) pricing.PriceConfig {
	if h.pricingStore != nil {
		if cfg, err := h.pricingStore.GetActiveConfig(ctx); err == nil {
			return cfg
		}
	}
	return pricing.PriceConfig{
		FuelPricePerLitre: h.defaults.FuelPricePerLitre,
		DefaultBurnLPerKm: h.defaults.DefaultBurnLPerKm,
		TaxRate:           h.defaults.TaxRate,
		FeeRate:           h.defaults.FeeRate,
		BaseFare:          h.defaults.BaseFare,
		Currency:          h.defaults.Currency,
	}
}
