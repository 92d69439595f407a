// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyfare/internal/config"
	"skyfare/internal/http/handlers"
	"skyfare/internal/http/middleware"
	"skyfare/internal/modules/airport"
	"skyfare/internal/modules/booking"
	"skyfare/internal/modules/pricing"
	"skyfare/internal/modules/route"
)

type ServerDeps struct {
	Airports     *airport.Store
	Routes       *route.Service
	RouteCache   *route.Store
	Pricing      *pricing.Service
	PricingStore *pricing.Store
	Booking      *booking.Service
	Defaults     config.PricingDefaults
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	routeHandler := handlers.NewRouteHandler(s.deps.Airports, s.deps.Routes)
	r.POST("/api/routes/search", routeHandler.Search)

	quoteHandler := handlers.NewQuoteHandler(routeHandler, s.deps.Pricing, s.deps.PricingStore, s.deps.Defaults)
	r.POST("/api/quotes", quoteHandler.Create)

	if s.deps.Booking != nil {
		bookingHandler := handlers.NewBookingHandler(s.deps.Booking)
		r.POST("/api/bookings", bookingHandler.Create)
		r.GET("/api/bookings/:id", bookingHandler.Get)
		r.POST("/api/bookings/:id/confirm", bookingHandler.Confirm)
		r.POST("/api/bookings/:id/ticket", bookingHandler.Ticket)
		r.POST("/api/bookings/:id/cancel", bookingHandler.Cancel)
	}

	airportHandler := handlers.NewAirportHandler(s.deps.Airports, s.deps.RouteCache)
	r.GET("/api/airports", airportHandler.List)
	r.POST("/api/admin/connections/:from/:to/active", airportHandler.SetConnectionActive)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
